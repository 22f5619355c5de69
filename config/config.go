// Package config loads the settings of a landersim run from YAML files,
// .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every setting of a run.
type Config struct {
	// Seed seeds the parameter draws. Zero picks a time-based seed.
	Seed int64 `yaml:"seed" env:"SEED"`

	Physics   Physics   `yaml:"physics"`
	Override  Override  `yaml:"override"`
	Recording Recording `yaml:"recording"`
	Monitor   Monitor   `yaml:"monitor"`

	// RealTime paces the engine against the wall clock at the given speed.
	// Zero runs as fast as possible.
	RealTime  float64 `yaml:"real_time" env:"REAL_TIME"`
	LogEvents bool    `yaml:"log_events" env:"LOG_EVENTS"`
}

// Physics describes the world the lander falls in.
type Physics struct {
	TickInterval     time.Duration `yaml:"tick_interval" env:"TICK_INTERVAL"`
	RetryDelay       time.Duration `yaml:"retry_delay" env:"RETRY_DELAY"`
	LandingThreshold float64       `yaml:"landing_threshold" env:"LANDING_THRESHOLD"`
	ViewportWidth    float64       `yaml:"viewport_width" env:"VIEWPORT_WIDTH"`
	ViewportHeight   float64       `yaml:"viewport_height" env:"VIEWPORT_HEIGHT"`
	GroundOffset     float64       `yaml:"ground_offset" env:"GROUND_OFFSET"`
	StartHeight      float64       `yaml:"start_height" env:"START_HEIGHT"`
}

// Override forces values that are otherwise drawn at setup. Zero values are
// not forced.
type Override struct {
	MaxAttempts  int     `yaml:"max_attempts" env:"MAX_ATTEMPTS"`
	Gravity      float64 `yaml:"gravity" env:"GRAVITY"`
	InitialSpeed float64 `yaml:"initial_speed" env:"INITIAL_SPEED"`
}

// Recording configures the SQLite attempt log.
type Recording struct {
	Enabled    bool   `yaml:"enabled" env:"RECORD"`
	OutputFile string `yaml:"output_file" env:"DB"`
}

// Monitor configures the HTTP control server.
type Monitor struct {
	Port        int  `yaml:"port" env:"MONITOR_PORT"`
	OpenBrowser bool `yaml:"open_browser" env:"OPEN_BROWSER"`
}

// Default returns the configuration that reproduces the classic setup.
func Default() Config {
	return Config{
		Physics: Physics{
			TickInterval:     50 * time.Millisecond,
			RetryDelay:       800 * time.Millisecond,
			LandingThreshold: 4.0,
			ViewportWidth:    800,
			ViewportHeight:   500,
			GroundOffset:     100,
			StartHeight:      50,
		},
		Recording: Recording{
			Enabled: true,
		},
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// GroundY returns the height of the ground.
func (p Physics) GroundY() float64 {
	return p.ViewportHeight - p.GroundOffset
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	var errs []error

	if c.Physics.TickInterval <= 0 {
		errs = append(errs, errors.New("tick interval must be positive"))
	}

	if c.Physics.RetryDelay < 0 {
		errs = append(errs, errors.New("retry delay cannot be negative"))
	}

	if c.Physics.StartHeight >= c.Physics.GroundY() {
		errs = append(errs, fmt.Errorf(
			"start height %.1f must be above the ground at %.1f",
			c.Physics.StartHeight, c.Physics.GroundY()))
	}

	if c.Override.MaxAttempts < 0 {
		errs = append(errs, errors.New("max attempts cannot be negative"))
	}

	if c.Override.Gravity < 0 || c.Override.InitialSpeed < 0 {
		errs = append(errs, errors.New("forced parameters cannot be negative"))
	}

	if c.RealTime < 0 {
		errs = append(errs, errors.New("real-time speed cannot be negative"))
	}

	if c.Monitor.Port < 0 || c.Monitor.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid monitor port %d", c.Monitor.Port))
	}

	return errors.Join(errs...)
}
