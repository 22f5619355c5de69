package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sarchlab/landersim/simulation"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an HTTP API that sets up and starts runs.",
	Long: `serve keeps a lander controller alive behind an HTTP API. ` +
		`POST /api/setup draws a new run and POST /api/start starts it. ` +
		`GET /api/state reports the attempt counters and the live lander.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("real-time") && cfg.RealTime == 0 {
			cfg.RealTime = 1
		}

		s := simulation.MakeBuilder().
			WithConfig(cfg).
			Build()
		defer s.Terminate()

		ctx, stop := signal.NotifyContext(context.Background(),
			os.Interrupt, syscall.SIGTERM)
		defer stop()

		return s.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("port", 0, "port of the HTTP server, 0 for random")
	serveCmd.Flags().Bool("open-browser", false,
		"open the state endpoint in the default browser")
}
