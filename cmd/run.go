package cmd

import (
	"github.com/sarchlab/landersim/lander"
	"github.com/sarchlab/landersim/recording"
	"github.com/sarchlab/landersim/simulation"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one set of attempts to the end and print a summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		s := simulation.MakeBuilder().
			WithConfig(cfg).
			WithoutMonitoring().
			Build()
		defer s.Terminate()

		trace := recording.NewImpactTrace()
		s.GetController().AcceptHook(trace)

		snapshot, err := s.RunOnce()
		if err != nil {
			return err
		}

		printSummary(s, snapshot)

		if plot, _ := cmd.Flags().GetBool("plot"); plot {
			printf("\n%s\n", trace.Plot(cfg.Physics.LandingThreshold))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("plot", false,
		"plot the impact velocity of every attempt")
}

func printSummary(s *simulation.Simulation, snapshot lander.Snapshot) {
	printf("Seed:          %d\n", s.Seed())
	printf("Outcome:       %s\n", snapshot.State)
	printf("Attempts:      %d/%d\n",
		snapshot.Limits.AttemptsRun, snapshot.Limits.MaxAttempts)
	printf("Successes:     %d\n", snapshot.Limits.Successes)
	printf("Velocity:      %.2f\n", snapshot.CurrentVelocity())
	printf("Initial speed: %.2f\n", snapshot.Params.InitialSpeed)
	printf("Gravity:       %.3f\n", snapshot.Params.Gravity)
	printf("Virtual time:  %.2fs\n", float64(s.GetEngine().CurrentTime()))

	if s.OutputPath() != "" {
		printf("Database:      %s\n", s.OutputPath())
	}
}
