// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/danielhkuo/schooldb/cliparse"
	"github.com/danielhkuo/schooldb/db"
)

// TestDBURL is an in-memory SQLite database, private to each connection pool
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// PostgresURLEnv names the variable holding a disposable PostgreSQL database
// for integration tests. Tests using it are skipped when it is unset.
const PostgresURLEnv = "SCHOOLDB_TEST_POSTGRES_URL"

// SetupPostgresDB resets the schema in the database named by PostgresURLEnv.
// The tables are dropped again when the test ends.
func SetupPostgresDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(PostgresURLEnv)
	if url == "" {
		t.Skipf("%s not set", PostgresURLEnv)
	}

	conn, err := db.Open(db.Postgres, url)
	if err != nil {
		t.Fatalf("Failed to open postgres database: %v", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		t.Fatalf("Failed to reach postgres database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.DropSchema(conn); err != nil {
			t.Errorf("Failed to drop schema: %v", err)
		}
		conn.Close()
	})

	if err := db.DropSchema(conn); err != nil {
		t.Fatalf("Failed to drop schema: %v", err)
	}
	if err := db.CreateSchema(conn, db.Postgres); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupSeededDB creates a fresh database and loads the seed rows
func SetupSeededDB(t *testing.T) *sql.DB {
	t.Helper()

	conn := SetupTestDB(t)
	if _, err := db.Seed(context.Background(), conn, db.SQLite); err != nil {
		t.Fatalf("Failed to seed database: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		DatabaseURL:  TestDBURL,
		DatabaseType: string(db.SQLite),
		ReportLimit:  10,
	}
}

// CreateTestStudent inserts a student and returns its ID
func CreateTestStudent(t *testing.T, conn *sql.DB, firstName, email string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO Students (first_name, last_name, email, enrollment_date)
		VALUES (?, 'Tester', ?, ?)
		RETURNING student_id
	`, firstName, nullable(email), time.Now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}

	return id
}

// CreateTestTeacher inserts a teacher and returns its ID
func CreateTestTeacher(t *testing.T, conn *sql.DB, firstName, email string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO Teachers (first_name, last_name, email, department, hire_date)
		VALUES (?, 'Tester', ?, 'Testing', ?)
		RETURNING teacher_id
	`, firstName, nullable(email), time.Now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test teacher: %v", err)
	}

	return id
}

// CreateTestCourse inserts a course and returns its ID
func CreateTestCourse(t *testing.T, conn *sql.DB, name, code string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO Courses (course_name, course_code, credits)
		VALUES (?, ?, 3)
		RETURNING course_id
	`, name, code).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test course: %v", err)
	}

	return id
}

// CreateTestAssignment assigns a teacher to a course and returns its ID
func CreateTestAssignment(t *testing.T, conn *sql.DB, courseID, teacherID int64) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO Course_Assignments (course_id, teacher_id, academic_year, semester)
		VALUES (?, ?, 2024, 'Fall')
		RETURNING assignment_id
	`, courseID, teacherID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test assignment: %v", err)
	}

	return id
}

// CreateTestEnrollment enrolls a student in a course with a score and returns its ID
func CreateTestEnrollment(t *testing.T, conn *sql.DB, studentID, courseID int64, score float64) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO Enrollments (student_id, course_id, enrollment_date, score)
		VALUES (?, ?, ?, ?)
		RETURNING enrollment_id
	`, studentID, courseID, time.Now(), score).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test enrollment: %v", err)
	}

	return id
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}

	return n
}

// AssertErrorIs checks that err matches target
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("Expected error %v, got %v", target, err)
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
