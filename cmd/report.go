package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/landersim/datarecording"
	"github.com/sarchlab/landersim/recording"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the runs recorded in an attempt database.",
	Long: `report reads a database written by run or serve and prints ` +
		`every recorded run with its attempts, newest first. ` +
		`The database is named with --db or LANDERSIM_DB.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if cfg.Recording.OutputFile == "" {
			return errors.New("no database given, use --db")
		}

		filename := cfg.Recording.OutputFile + ".sqlite3"
		if _, err := os.Stat(filename); err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		reader, err := datarecording.NewReader(filename)
		if err != nil {
			return err
		}
		defer reader.Close()

		limit, _ := cmd.Flags().GetInt("limit")

		runs, total, err := recording.ReadRuns(
			context.Background(), reader, limit)
		if err != nil {
			return err
		}

		printReport(cmd.OutOrStdout(), runs, total)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().Int("limit", 10, "number of runs to print, 0 for all")
}

func printReport(w io.Writer, runs []recording.RunReport, total int) {
	fmt.Fprintf(w, "Runs: %d of %d\n", len(runs), total)

	for _, r := range runs {
		fmt.Fprintf(w, "\n%s  %-9s  attempts %d/%d  successes %d  at %.2fs\n",
			r.RunID, r.Outcome, r.AttemptsRun, r.MaxAttempts, r.Successes,
			r.EndTime)

		for _, a := range r.Attempts {
			fmt.Fprintf(w,
				"  #%-3d %-8s  gravity %.3f  speed %.2f  impact %6.2f  "+
					"%.2fs-%.2fs\n",
				a.Attempt, a.Outcome, a.Gravity, a.InitialSpeed,
				a.ImpactVelocity, a.StartTime, a.EndTime)
		}
	}
}
