// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/schooldb/db"
	"github.com/danielhkuo/schooldb/models"
)

// Store wraps the connection pool with typed queries for every table.
// Queries are written with ? placeholders and rebound for the dialect.
type Store struct {
	db      *sqlx.DB
	dialect db.Dialect
}

func New(conn *sql.DB, dialect db.Dialect) *Store {
	return &Store{db: sqlx.NewDb(conn, string(dialect)), dialect: dialect}
}

// insert runs an INSERT ... RETURNING and yields the new key
func (s *Store) insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	if err := s.db.QueryRowxContext(ctx, s.db.Rebind(query), args...).Scan(&id); err != nil {
		return 0, db.Classify(err)
	}
	return id, nil
}

func (s *Store) get(ctx context.Context, dest any, query string, args ...any) error {
	return db.Classify(s.db.GetContext(ctx, dest, s.db.Rebind(query), args...))
}

func (s *Store) list(ctx context.Context, dest any, query string, args ...any) error {
	return db.Classify(s.db.SelectContext(ctx, dest, s.db.Rebind(query), args...))
}

// deleteByID removes one row; cascades are left to the engine
func (s *Store) deleteByID(ctx context.Context, table, column string, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, column)
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), id)
	if err != nil {
		return db.Classify(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return db.ErrNotFound
	}
	return nil
}

// Counts returns the number of rows in each table
func (s *Store) Counts(ctx context.Context) (models.TableCounts, error) {
	var counts models.TableCounts
	targets := map[string]*int{
		"Students":           &counts.Students,
		"Teachers":           &counts.Teachers,
		"Courses":            &counts.Courses,
		"Course_Assignments": &counts.CourseAssignments,
		"Enrollments":        &counts.Enrollments,
	}

	for _, table := range db.Tables {
		if err := s.db.GetContext(ctx, targets[table], "SELECT COUNT(*) FROM "+table); err != nil {
			return models.TableCounts{}, fmt.Errorf("failed to count %s: %w", table, err)
		}
	}

	return counts, nil
}
