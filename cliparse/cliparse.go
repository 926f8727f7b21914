// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/schooldb/db"
)

// DefaultSQLiteURL is used when DatabaseType is sqlite and no URL is given
const DefaultSQLiteURL = "school.db"

type Config struct {
	DatabaseURL  string
	DatabaseType string
	Reset        bool
	SkipSeed     bool
	Describe     bool
	ReportCourse string
	ReportLimit  int
}

// LoadEnvFile loads a .env file into the environment if it exists.
// Variables already set are not overwritten.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// ParseFlags validates flags and fills gaps from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("schooldb", flag.ContinueOnError)

	// Connection (can be CLI args or env)
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Load behaviour
	reset := fs.Bool("reset", false, "Drop all tables before creating the schema")
	skipSeed := fs.Bool("skip-seed", false, "Create the schema without loading seed rows")

	// Reports
	fs.BoolVar(&cfg.Describe, "describe", false, "Print the tables and their columns")
	fs.StringVar(&cfg.ReportCourse, "top", "", "Rank students in courses matching this name")
	fs.IntVar(&cfg.ReportLimit, "limit", 10, "Maximum rows for -top")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = string(db.SQLite)
		}
	}
	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}
	cfg.DatabaseType = string(dialect)

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if dialect != db.SQLite {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}

	if cfg.Reset, err = boolFlagOrEnv(fs, "reset", *reset, "SCHOOLDB_RESET"); err != nil {
		return Config{}, err
	}
	if cfg.SkipSeed, err = boolFlagOrEnv(fs, "skip-seed", *skipSeed, "SCHOOLDB_SKIP_SEED"); err != nil {
		return Config{}, err
	}

	if cfg.ReportLimit <= 0 {
		return Config{}, errors.New("limit must be positive")
	}

	return cfg, nil
}

// boolFlagOrEnv prefers an explicitly set flag, then the env variable
func boolFlagOrEnv(fs *flag.FlagSet, name string, value bool, env string) (bool, error) {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if set {
		return value, nil
	}

	raw := os.Getenv(env)
	if raw == "" {
		return value, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New("invalid " + env + " env variable")
	}
	return v, nil
}
