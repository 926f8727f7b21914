// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrNotNullViolation    = errors.New("not null violation")
)

// ConstraintError reports a write rejected by the engine.
// errors.Is matches both the kind sentinel and the driver error.
type ConstraintError struct {
	Kind   error
	Detail string
	Err    error
}

func (e *ConstraintError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Classify maps driver errors onto the package sentinels.
// Errors it does not recognize are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var ce *ConstraintError
	if errors.As(err, &ce) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		kind := postgresKind(pqErr.Code)
		if kind == nil {
			return err
		}
		detail := pqErr.Constraint
		if detail == "" {
			detail = pqErr.Message
		}
		return &ConstraintError{Kind: kind, Detail: detail, Err: err}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		if kind := sqliteKind(liteErr.Code()); kind != nil {
			return &ConstraintError{Kind: kind, Detail: liteErr.Error(), Err: err}
		}
	}

	// Fall back to the message when extended result codes are unavailable
	if kind := messageKind(err.Error()); kind != nil {
		return &ConstraintError{Kind: kind, Detail: err.Error(), Err: err}
	}

	return err
}

func postgresKind(code pq.ErrorCode) error {
	switch code {
	case "23505":
		return ErrUniqueViolation
	case "23503":
		return ErrForeignKeyViolation
	case "23502":
		return ErrNotNullViolation
	}
	return nil
}

func sqliteKind(code int) error {
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return ErrUniqueViolation
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ErrForeignKeyViolation
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return ErrNotNullViolation
	}
	return nil
}

func messageKind(msg string) error {
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrUniqueViolation
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrForeignKeyViolation
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return ErrNotNullViolation
	}
	return nil
}
