// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the schooldb loader.

schooldb creates the school records schema (Students, Teachers, Courses,
Course_Assignments, Enrollments) and loads its seed rows.

# Running

With no configuration it uses a local SQLite file:

	go run .

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -t postgres -d "postgres://..." -reset

# Configuration

  - DATABASE_URL (-d): connection string (sqlite default: school.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SCHOOLDB_RESET (-reset): drop tables first
  - SCHOOLDB_SKIP_SEED (-skip-seed): schema only

A .env file in the working directory is read first.

# Reports

	go run . -describe
	go run . -top Math -limit 5

# Architecture

  - db: Engine access, schema creation, seed loading, error classification
  - store: Typed queries per table (sqlx)
  - models: Row and report types
  - cliparse: Configuration parsing
  - testutil: In-memory test database and fixtures

See package documentation for each component.
*/
package main
