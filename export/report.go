package export

import (
	"fmt"
	"io"

	"github.com/rustyeddy/mcsim/stats"
)

// ConsoleReport prints the terminal price statistics block: two decimal
// places, dollar-prefixed.
func ConsoleReport(w io.Writer, s stats.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Simulation Statistics (Final Price):")
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "Mean: $%.2f\n", s.Mean)
	fmt.Fprintf(w, "Standard Deviation: $%.2f\n", s.StdDev)
	fmt.Fprintf(w, "Minimum: $%.2f\n", s.Min)
	fmt.Fprintf(w, "Maximum: $%.2f\n", s.Max)
	fmt.Fprintf(w, "5th Percentile: $%.2f\n", s.P5)
	fmt.Fprintf(w, "95th Percentile: $%.2f\n", s.P95)
}
