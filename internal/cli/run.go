package cli

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/mcsim/config"
	"github.com/rustyeddy/mcsim/export"
	"github.com/rustyeddy/mcsim/gbm"
	"github.com/rustyeddy/mcsim/internal/id"
	"github.com/rustyeddy/mcsim/journal"
	"github.com/rustyeddy/mcsim/stats"
)

func newRunCmd(rc *rootConfig) *cobra.Command {
	var (
		p         gbm.Params
		seed      int64
		workers   int
		outDir    string
		chartFile string
		noJournal bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate price paths and export the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if rc.ConfigPath != "" {
				var err error
				cfg, err = config.LoadFromFile(rc.ConfigPath)
				if err != nil {
					return err
				}
			}

			// Flags the user set win over the config file.
			if cmd.Flags().Changed("price") {
				cfg.Simulation.InitialPrice = p.InitialPrice
			}
			if cmd.Flags().Changed("drift") {
				cfg.Simulation.Drift = p.Drift
			}
			if cmd.Flags().Changed("vol") {
				cfg.Simulation.Volatility = p.Volatility
			}
			if cmd.Flags().Changed("horizon") {
				cfg.Simulation.Horizon = p.Horizon
			}
			if cmd.Flags().Changed("steps") {
				cfg.Simulation.Steps = p.Steps
			}
			if cmd.Flags().Changed("paths") {
				cfg.Simulation.Paths = p.Paths
			}
			if cmd.Flags().Changed("out") {
				cfg.Output.Dir = outDir
			}
			if cmd.Flags().Changed("chart") {
				cfg.Output.ChartFile = chartFile
			}
			if rc.DBPath != "" {
				cfg.Journal.DBPath = rc.DBPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = entropySeed()
			}

			return runSimulation(cfg, seed, workers, noJournal)
		},
	}

	cmd.Flags().Float64Var(&p.InitialPrice, "price", 100, "Initial asset price")
	cmd.Flags().Float64Var(&p.Drift, "drift", 0.08, "Expected annual return (e.g. 0.08 for 8%)")
	cmd.Flags().Float64Var(&p.Volatility, "vol", 0.20, "Annual volatility (e.g. 0.20 for 20%)")
	cmd.Flags().Float64Var(&p.Horizon, "horizon", 1, "Time period in years")
	cmd.Flags().IntVar(&p.Steps, "steps", 252, "Number of time steps")
	cmd.Flags().IntVar(&p.Paths, "paths", 1000, "Number of simulation paths")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default: system entropy)")
	cmd.Flags().IntVar(&workers, "workers", 1, "Parallel path-generation workers")
	cmd.Flags().StringVar(&outDir, "out", ".", "Output directory for exports")
	cmd.Flags().StringVar(&chartFile, "chart", "", "Also render a PNG chart to this file")
	cmd.Flags().BoolVar(&noJournal, "no-journal", false, "Skip recording the run in the journal")

	return cmd
}

func runSimulation(cfg *config.Config, seed int64, workers int, noJournal bool) error {
	p := cfg.Simulation

	fmt.Println("Running Monte Carlo simulation...")

	start := time.Now()
	var (
		ens gbm.Ensemble
		err error
	)
	if workers > 1 {
		ens, err = gbm.RunParallel(p, seed, workers)
	} else {
		ens, err = gbm.RunSeeded(p, seed)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Simulation completed in %s.\n", elapsed)

	summary, err := stats.Compute(ens)
	if err != nil {
		return err
	}
	export.ConsoleReport(os.Stdout, summary)

	if err := writeExports(cfg, p, ens); err != nil {
		return err
	}

	if cfg.Journal.Enabled && !noJournal {
		j, err := journal.NewSQLite(cfg.Journal.DBPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()

		rec := journal.RunRecord{
			RunID:     id.New(),
			CreatedAt: time.Now().UTC(),
			Seed:      seed,
			Workers:   workers,
			Elapsed:   elapsed,
			Params:    p,
			Summary:   summary,
		}
		if err := j.Record(rec); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		fmt.Printf("\nRun recorded as %s\n", rec.RunID)
	}

	return nil
}

func writeExports(cfg *config.Config, p gbm.Params, ens gbm.Ensemble) error {
	out := cfg.Output

	writeFile := func(name string, write func(f *os.File) error) error {
		path := filepath.Join(out.Dir, name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := write(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	if out.PathsFile != "" {
		err := writeFile(out.PathsFile, func(f *os.File) error {
			return export.WritePathsCSV(f, p, ens)
		})
		if err != nil {
			return err
		}
	}
	if out.TimesFile != "" {
		err := writeFile(out.TimesFile, func(f *os.File) error {
			return export.WriteTimePointsCSV(f, p)
		})
		if err != nil {
			return err
		}
	}
	if out.HTMLFile != "" {
		csvName := out.PathsFile
		if csvName == "" {
			csvName = "price_paths.csv"
		}
		err := writeFile(out.HTMLFile, func(f *os.File) error {
			return export.WriteHTMLReport(f, p, csvName)
		})
		if err != nil {
			return err
		}
	}
	if out.ChartFile != "" {
		png, err := export.RenderChartPNG(p, ens)
		if err != nil {
			return err
		}
		path := filepath.Join(out.Dir, out.ChartFile)
		if err := os.WriteFile(path, png, 0644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
	}

	return nil
}

// entropySeed draws a seed from the OS entropy pool, matching the default
// non-reproducible behavior. Pass --seed for reproducible runs.
func entropySeed() int64 {
	var seed int64
	_ = binary.Read(cryptorand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return seed
}
