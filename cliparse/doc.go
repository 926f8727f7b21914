// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - DatabaseURL: connection string (default for sqlite: school.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - Reset: drop all tables before creating the schema
  - SkipSeed: create the schema without seed rows
  - Describe: log the tables and columns after loading
  - ReportCourse: rank students in courses matching this name
  - ReportLimit: maximum ranked rows (default: 10)

# CLI Flags

	-d          Database URL
	-t          Database type
	-reset      Drop tables first
	-skip-seed  Do not load seed rows
	-describe   Describe the schema
	-top        Course name pattern to rank
	-limit      Rows to rank

# Environment Variables

Flags fall back to environment variables:

	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	SCHOOLDB_RESET     → -reset
	SCHOOLDB_SKIP_SEED → -skip-seed

CLI flags take precedence over environment variables. LoadEnvFile reads a
.env file into the environment first; a missing file is not an error.

# Validation

ParseFlags returns an error if:

  - DatabaseType is not sqlite or postgres
  - postgres is selected without a URL
  - the limit is not positive
*/
package cliparse
