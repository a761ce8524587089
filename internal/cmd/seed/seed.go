// Package seed parses seed command flags and runs the demo-data seeder.
package seed

import (
	"context"
	"flag"

	entrypoint "github.com/simplemapping/simplemapping/internal/platform/cmd"
	"github.com/simplemapping/simplemapping/internal/seed"
)

// Config holds seed command configuration.
type Config struct {
	DBPath  string `env:"SIMPLE_MAPPING_DB_PATH"`
	Owner   string `env:"SIMPLE_MAPPING_SEED_OWNER"`
	Verbose bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	defaults := seed.DefaultConfig()
	if cfg.DBPath == "" {
		cfg.DBPath = defaults.DBPath
	}
	if cfg.Owner == "" {
		cfg.Owner = defaults.Owner
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the mapping database")
	fs.StringVar(&cfg.Owner, "owner", cfg.Owner, "user id that owns the seeded projects")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the seeder with telemetry configured.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
		return seed.Run(ctx, seed.Config{
			DBPath:  cfg.DBPath,
			Owner:   cfg.Owner,
			Verbose: cfg.Verbose,
		})
	})
}
