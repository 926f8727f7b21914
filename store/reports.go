// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielhkuo/schooldb/db"
	"github.com/danielhkuo/schooldb/models"
)

// DefaultReportLimit caps TopPerformers when no limit is given
const DefaultReportLimit = 10

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// TopPerformers ranks students by score in courses whose name matches pattern.
// A pattern containing % is used as a LIKE pattern with \ as the escape
// character. Any other pattern matches literally as a substring.
// Enrollments without a score are left out.
func (s *Store) TopPerformers(ctx context.Context, pattern string, limit int) ([]models.Performer, error) {
	if limit <= 0 {
		limit = DefaultReportLimit
	}
	if !strings.Contains(pattern, "%") {
		pattern = "%" + likeEscaper.Replace(pattern) + "%"
	}

	var performers []models.Performer
	err := s.list(ctx, &performers, `
		SELECT s.student_id, s.first_name, s.last_name, s.email, c.course_name, e.score
		FROM Students s
		JOIN Enrollments e ON s.student_id = e.student_id
		JOIN Courses c ON e.course_id = c.course_id
		WHERE c.course_name LIKE ? ESCAPE '\' AND e.score IS NOT NULL
		ORDER BY e.score DESC, s.student_id
		LIMIT ?
	`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank students: %w", err)
	}

	return performers, nil
}

// DescribeSchema lists every table with its columns in declaration order
func (s *Store) DescribeSchema(ctx context.Context) ([]models.TableInfo, error) {
	query := `
		SELECT name, type, "notnull" AS not_null, pk > 0 AS primary_key
		FROM pragma_table_info(?)
		ORDER BY cid
	`
	if s.dialect == db.Postgres {
		query = `
			SELECT c.column_name AS name, c.data_type AS type, c.is_nullable = 'NO' AS not_null,
				EXISTS (
					SELECT 1
					FROM information_schema.table_constraints tc
					JOIN information_schema.key_column_usage k
						ON tc.constraint_name = k.constraint_name AND tc.table_schema = k.table_schema
					WHERE tc.constraint_type = 'PRIMARY KEY'
						AND tc.table_schema = c.table_schema
						AND tc.table_name = c.table_name
						AND k.column_name = c.column_name
				) AS primary_key
			FROM information_schema.columns c
			WHERE c.table_schema = current_schema() AND c.table_name = lower(?)
			ORDER BY c.ordinal_position
		`
	}

	tables := make([]models.TableInfo, 0, len(db.Tables))
	for _, table := range db.Tables {
		var columns []models.ColumnInfo
		if err := s.list(ctx, &columns, query, table); err != nil {
			return nil, fmt.Errorf("failed to describe %s: %w", table, err)
		}
		if len(columns) == 0 {
			return nil, fmt.Errorf("failed to describe %s: %w", table, db.ErrNotFound)
		}
		tables = append(tables, models.TableInfo{Name: table, Columns: columns})
	}

	return tables, nil
}
