package recording

import (
	"context"
	"fmt"

	"github.com/sarchlab/landersim/datarecording"
)

// RunReport is a recorded run together with its attempts.
type RunReport struct {
	RunEntry

	Attempts []AttemptEntry
}

// ReadRuns reads the runs an AttemptRecorder wrote, newest first. A limit of
// zero reads every run. It also returns the number of runs in the database.
func ReadRuns(
	ctx context.Context,
	reader datarecording.DataReader,
	limit int,
) ([]RunReport, int, error) {
	reader.MapTable(RunTableName, RunEntry{})
	reader.MapTable(AttemptTableName, AttemptEntry{})

	runs, total, err := reader.Query(ctx, RunTableName,
		datarecording.QueryParams{
			OrderBy: "rowid DESC",
			Limit:   limit,
		})
	if err != nil {
		return nil, 0, fmt.Errorf("reading runs: %w", err)
	}

	reports := make([]RunReport, 0, len(runs))

	for _, r := range runs {
		report := RunReport{RunEntry: *r.(*RunEntry)}

		attempts, _, err := reader.Query(ctx, AttemptTableName,
			datarecording.QueryParams{
				Where:   "RunID = ?",
				Args:    []any{report.RunID},
				OrderBy: "Attempt",
			})
		if err != nil {
			return nil, 0, fmt.Errorf("reading attempts of %s: %w",
				report.RunID, err)
		}

		for _, a := range attempts {
			report.Attempts = append(report.Attempts, *a.(*AttemptEntry))
		}

		reports = append(reports, report)
	}

	return reports, total, nil
}
