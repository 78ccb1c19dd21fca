// Package export formats simulation output for files, consoles, and charts.
// It only reads the ensemble; all numeric work happens upstream.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rustyeddy/mcsim/gbm"
)

// WritePathsCSV writes the full ensemble as one CSV table: a header row with
// a "path" column followed by the time points t_i = i*Horizon/Steps, then one
// row per path with its 1-based path number and prices.
func WritePathsCSV(w io.Writer, p gbm.Params, ens gbm.Ensemble) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, p.Steps+2)
	header = append(header, "path")
	for _, t := range p.TimePoints() {
		header = append(header, f(t))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, p.Steps+2)
	for i, path := range ens {
		row[0] = strconv.Itoa(i + 1)
		for j, v := range path {
			row[j+1] = f(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTimePointsCSV writes one time value per line, matching the paths CSV
// header. Plotting tools that want the x-axis alone read this file.
func WriteTimePointsCSV(w io.Writer, p gbm.Params) error {
	cw := csv.NewWriter(w)
	for _, t := range p.TimePoints() {
		if err := cw.Write([]string{f(t)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
