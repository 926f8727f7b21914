// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Tables lists every table in dependency order: parents first.
var Tables = []string{
	"Students",
	"Teachers",
	"Courses",
	"Course_Assignments",
	"Enrollments",
}

var primaryKey = map[Dialect]string{
	Postgres: "SERIAL PRIMARY KEY",
	SQLite:   "INTEGER PRIMARY KEY AUTOINCREMENT",
}

// CreateSchema creates all tables needed for the school records.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	pk, ok := primaryKey[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	if err := execStatements(db, fmt.Sprintf(schema, pk)); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropSchema removes all tables, children first.
func DropSchema(db *sql.DB) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + Tables[i]); err != nil {
			return fmt.Errorf("failed to drop %s: %w", Tables[i], err)
		}
	}

	return nil
}

// execStatements runs a script one statement at a time.
// Statements are split on every ";", so the script must not contain one
// inside a string literal or a comment.
func execStatements(db *sql.DB, script string) error {
	for _, stmt := range strings.Split(script, ";") {
		if isBlank(stmt) {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func isBlank(stmt string) bool {
	for _, line := range strings.Split(stmt, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "--") {
			return false
		}
	}
	return true
}

const schema = `
-- Students
CREATE TABLE IF NOT EXISTS Students (
    student_id %[1]s,
    first_name VARCHAR(50) NOT NULL,
    last_name VARCHAR(50) NOT NULL,
    email VARCHAR(100) UNIQUE,
    enrollment_date DATE NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_students_last_name ON Students(last_name);

-- Teachers
CREATE TABLE IF NOT EXISTS Teachers (
    teacher_id %[1]s,
    first_name VARCHAR(50) NOT NULL,
    last_name VARCHAR(50) NOT NULL,
    email VARCHAR(100) UNIQUE,
    department VARCHAR(100),
    hire_date DATE NOT NULL
);

-- Courses
CREATE TABLE IF NOT EXISTS Courses (
    course_id %[1]s,
    course_name VARCHAR(100) NOT NULL,
    course_code VARCHAR(20) NOT NULL UNIQUE,
    credits INTEGER NOT NULL,
    department VARCHAR(100)
);

-- Course Assignments
CREATE TABLE IF NOT EXISTS Course_Assignments (
    assignment_id %[1]s,
    course_id INTEGER NOT NULL REFERENCES Courses(course_id) ON DELETE CASCADE,
    teacher_id INTEGER NOT NULL REFERENCES Teachers(teacher_id) ON DELETE CASCADE,
    academic_year INTEGER NOT NULL,
    semester VARCHAR(20) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_course_assignments_course_id ON Course_Assignments(course_id);
CREATE INDEX IF NOT EXISTS idx_course_assignments_teacher_id ON Course_Assignments(teacher_id);

-- Enrollments
CREATE TABLE IF NOT EXISTS Enrollments (
    enrollment_id %[1]s,
    student_id INTEGER NOT NULL REFERENCES Students(student_id) ON DELETE CASCADE,
    course_id INTEGER NOT NULL REFERENCES Courses(course_id) ON DELETE CASCADE,
    enrollment_date DATE NOT NULL,
    score DECIMAL(5,2),
    grade VARCHAR(2),
    UNIQUE (student_id, course_id)
);

CREATE INDEX IF NOT EXISTS idx_enrollments_course_id ON Enrollments(course_id);
`
