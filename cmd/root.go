// Package cmd provides the command-line interface for landersim.
package cmd

import (
	"fmt"
	"os"

	"github.com/sarchlab/landersim/config"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "landersim",
	Short: "landersim drops a lander until it lands or runs out of attempts.",
	Long: `landersim drops a lander from a fixed height. Every crash makes ` +
		`gravity and the initial speed gentler and the lander tries again, ` +
		`until it lands softly or the attempt budget is used up.`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "YAML file with the run configuration")
	flags.StringSlice("env-file", []string{".env"},
		".env files loaded before reading LANDERSIM_* variables")
	flags.Int64("seed", 0, "seed of the parameter draws, 0 for a random seed")
	flags.String("db", "", "name of the attempt database, without extension")
	flags.Bool("no-record", false, "do not record attempts into a database")
	flags.Float64("gravity", 0, "force the gravity of the first attempt")
	flags.Float64("initial-speed", 0,
		"force the initial speed of the first attempt")
	flags.Int("max-attempts", 0, "force the attempt budget")
	flags.Float64("real-time", 0,
		"pace the run against the wall clock at this speed, 0 to disable")
	flags.Bool("log-events", false, "print every event handled by the engine")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

// loadConfig merges the defaults, the config file, the environment and the
// flags, in increasing priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	envFiles, _ := flags.GetStringSlice("env-file")
	if err := config.LoadEnvFiles(envFiles...); err != nil {
		return config.Config{}, err
	}

	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}

	if flags.Changed("db") {
		cfg.Recording.OutputFile, _ = flags.GetString("db")
	}

	if noRecord, _ := flags.GetBool("no-record"); noRecord {
		cfg.Recording.Enabled = false
	}

	if flags.Changed("gravity") {
		cfg.Override.Gravity, _ = flags.GetFloat64("gravity")
	}

	if flags.Changed("initial-speed") {
		cfg.Override.InitialSpeed, _ = flags.GetFloat64("initial-speed")
	}

	if flags.Changed("max-attempts") {
		cfg.Override.MaxAttempts, _ = flags.GetInt("max-attempts")
	}

	if flags.Changed("real-time") {
		cfg.RealTime, _ = flags.GetFloat64("real-time")
	}

	if flags.Changed("log-events") {
		cfg.LogEvents, _ = flags.GetBool("log-events")
	}

	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Monitor.Port, _ = flags.GetInt("port")
	}

	if flags.Lookup("open-browser") != nil && flags.Changed("open-browser") {
		cfg.Monitor.OpenBrowser, _ = flags.GetBool("open-browser")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}
