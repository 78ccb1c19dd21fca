package export

import (
	"fmt"
	"strconv"

	"github.com/vicanso/go-charts/v2"

	"github.com/rustyeddy/mcsim/gbm"
)

// RenderChartPNG renders up to 20 paths as a PNG line chart for headless use
// (no browser needed, unlike the HTML report).
func RenderChartPNG(p gbm.Params, ens gbm.Ensemble) ([]byte, error) {
	if len(ens) == 0 {
		return nil, fmt.Errorf("render chart: empty ensemble")
	}

	show := len(ens)
	if show > maxChartPaths {
		show = maxChartPaths
	}

	values := make([][]float64, show)
	yMin, yMax := ens[0][0], ens[0][0]
	for i := 0; i < show; i++ {
		values[i] = ens[i]
		for _, v := range ens[i] {
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}

	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	labels := make([]string, p.Steps+1)
	for i, t := range p.TimePoints() {
		labels[i] = strconv.FormatFloat(t, 'f', 2, 64)
	}

	title := fmt.Sprintf("GBM S0=%g mu=%g sigma=%g T=%gy", p.InitialPrice, p.Drift, p.Volatility, p.Horizon)

	painter, err := charts.LineRender(values,
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
