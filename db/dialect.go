// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect names a supported engine. Values match the database/sql driver names.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

var (
	ErrUnknownDialect      = errors.New("unknown database type")
	ErrForeignKeysDisabled = errors.New("sqlite foreign key enforcement could not be enabled")
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know by default
	sqlx.BindDriver(string(SQLite), sqlx.QUESTION)
}

// ParseDialect validates a database type name
func ParseDialect(name string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(name))); d {
	case Postgres, SQLite:
		return d, nil
	case "postgresql":
		return Postgres, nil
	case "sqlite3":
		return SQLite, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDialect, name)
}

// Open opens a connection pool for the dialect.
// SQLite connections always run with foreign_keys enabled and share a single
// connection, so cascades work and in-memory databases survive between calls.
func Open(dialect Dialect, url string) (*sql.DB, error) {
	switch dialect {
	case Postgres:
	case SQLite:
		url = withForeignKeys(url)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	conn, err := sql.Open(string(dialect), url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect, err)
	}

	if dialect == SQLite {
		conn.SetMaxOpenConns(1)

		var enabled int
		if err := conn.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to read foreign_keys pragma: %w", err)
		}
		if enabled != 1 {
			conn.Close()
			return nil, ErrForeignKeysDisabled
		}
	}

	return conn, nil
}

// Rebind converts a query written with ? placeholders to the dialect's bind style
func Rebind(dialect Dialect, query string) string {
	return sqlx.Rebind(sqlx.BindType(string(dialect)), query)
}

// withForeignKeys appends the pragma unconditionally.
// Pragmas run in order, so it overrides any foreign_keys value already in url.
func withForeignKeys(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)"
}
