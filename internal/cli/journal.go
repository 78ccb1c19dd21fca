package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/mcsim/journal"
)

func newJournalCmd(rc *rootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect recorded simulation runs",
	}

	cmd.AddCommand(
		newJournalListCmd(rc),
		newJournalShowCmd(rc),
	)

	return cmd
}

func openJournal(rc *rootConfig) (*journal.SQLite, error) {
	path := rc.DBPath
	if path == "" {
		path = "./mcsim.sqlite"
	}
	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	return j, nil
}

func newJournalListCmd(rc *rootConfig) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := openJournal(rc)
			if err != nil {
				return err
			}
			defer j.Close()

			recs, err := j.List(limit)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println("no runs recorded")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RUN ID\tCREATED\tS0\tDRIFT\tVOL\tPATHS\tMEAN\tSTDDEV")
			for _, r := range recs {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.4f\t%.4f\t%d\t%.2f\t%.2f\n",
					r.RunID, r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.Params.InitialPrice, r.Params.Drift, r.Params.Volatility,
					r.Params.Paths, r.Summary.Mean, r.Summary.StdDev)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list (0 = all)")

	return cmd
}

func newJournalShowCmd(rc *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := openJournal(rc)
			if err != nil {
				return err
			}
			defer j.Close()

			r, err := j.Get(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Run:        %s\n", r.RunID)
			fmt.Printf("Created:    %s\n", r.CreatedAt.Format("2006-01-02 15:04:05 MST"))
			fmt.Printf("Seed:       %d\n", r.Seed)
			fmt.Printf("Workers:    %d\n", r.Workers)
			fmt.Printf("Elapsed:    %s\n", r.Elapsed)
			fmt.Printf("Parameters: S0=%g mu=%g sigma=%g T=%gy steps=%d paths=%d\n",
				r.Params.InitialPrice, r.Params.Drift, r.Params.Volatility,
				r.Params.Horizon, r.Params.Steps, r.Params.Paths)
			fmt.Printf("Mean:       $%.2f\n", r.Summary.Mean)
			fmt.Printf("StdDev:     $%.2f\n", r.Summary.StdDev)
			fmt.Printf("Min:        $%.2f\n", r.Summary.Min)
			fmt.Printf("Max:        $%.2f\n", r.Summary.Max)
			fmt.Printf("P5:         $%.2f\n", r.Summary.P5)
			fmt.Printf("P95:        $%.2f\n", r.Summary.P95)
			return nil
		},
	}
}
