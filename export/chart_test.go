package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/mcsim/gbm"
)

func TestRenderChartPNG(t *testing.T) {
	p := testParams()
	p.Steps = 10
	p.Paths = 30

	ens, err := gbm.RunSeeded(p, 17)
	require.NoError(t, err)

	png, err := RenderChartPNG(p, ens)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes.
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderChartPNGEmptyEnsemble(t *testing.T) {
	_, err := RenderChartPNG(testParams(), gbm.Ensemble{})
	assert.Error(t, err)
}
