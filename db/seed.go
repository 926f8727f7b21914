// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/schooldb/models"
)

// SeedReport describes the outcome of Seed
type SeedReport struct {
	Skipped bool
	Counts  models.TableCounts
}

// Seed loads the fixed seed rows in one transaction.
// Parents are inserted first and children link through the returned keys.
// Does nothing if Students already has rows.
func Seed(ctx context.Context, conn *sql.DB, dialect Dialect) (SeedReport, error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return SeedReport{}, fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback()

	var existing int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM Students").Scan(&existing); err != nil {
		return SeedReport{}, fmt.Errorf("failed to count students: %w", err)
	}
	if existing > 0 {
		slog.Info("seed skipped, data present", "students", existing)
		return SeedReport{Skipped: true}, nil
	}

	insert := func(query string, args ...any) (int64, error) {
		var id int64
		err := tx.QueryRowContext(ctx, Rebind(dialect, query), args...).Scan(&id)
		return id, Classify(err)
	}

	var report SeedReport

	studentIDs := make([]int64, len(seedStudents))
	for i, s := range seedStudents {
		studentIDs[i], err = insert(`
			INSERT INTO Students (first_name, last_name, email, enrollment_date)
			VALUES (?, ?, ?, ?)
			RETURNING student_id
		`, s.FirstName, s.LastName, s.Email, s.EnrollmentDate)
		if err != nil {
			return SeedReport{}, fmt.Errorf("failed to seed student %s %s: %w", s.FirstName, s.LastName, err)
		}
		report.Counts.Students++
	}

	teacherIDs := make([]int64, len(seedTeachers))
	for i, t := range seedTeachers {
		teacherIDs[i], err = insert(`
			INSERT INTO Teachers (first_name, last_name, email, department, hire_date)
			VALUES (?, ?, ?, ?, ?)
			RETURNING teacher_id
		`, t.FirstName, t.LastName, t.Email, t.Department, t.HireDate)
		if err != nil {
			return SeedReport{}, fmt.Errorf("failed to seed teacher %s %s: %w", t.FirstName, t.LastName, err)
		}
		report.Counts.Teachers++
	}

	courseIDs := make([]int64, len(seedCourses))
	for i, c := range seedCourses {
		courseIDs[i], err = insert(`
			INSERT INTO Courses (course_name, course_code, credits, department)
			VALUES (?, ?, ?, ?)
			RETURNING course_id
		`, c.Name, c.Code, c.Credits, c.Department)
		if err != nil {
			return SeedReport{}, fmt.Errorf("failed to seed course %s: %w", c.Code, err)
		}
		report.Counts.Courses++
	}

	for _, a := range seedAssignments {
		_, err = insert(`
			INSERT INTO Course_Assignments (course_id, teacher_id, academic_year, semester)
			VALUES (?, ?, ?, ?)
			RETURNING assignment_id
		`, courseIDs[a.course-1], teacherIDs[a.teacher-1], a.year, a.semester)
		if err != nil {
			return SeedReport{}, fmt.Errorf("failed to seed course assignment: %w", err)
		}
		report.Counts.CourseAssignments++
	}

	for _, e := range seedEnrollments {
		_, err = insert(`
			INSERT INTO Enrollments (student_id, course_id, enrollment_date, score)
			VALUES (?, ?, ?, ?)
			RETURNING enrollment_id
		`, studentIDs[e.student-1], courseIDs[e.course-1], e.date, e.score)
		if err != nil {
			return SeedReport{}, fmt.Errorf("failed to seed enrollment: %w", err)
		}
		report.Counts.Enrollments++
	}

	if err := tx.Commit(); err != nil {
		return SeedReport{}, fmt.Errorf("failed to commit seed: %w", err)
	}

	slog.Info("seed loaded",
		"students", report.Counts.Students,
		"teachers", report.Counts.Teachers,
		"courses", report.Counts.Courses,
		"course_assignments", report.Counts.CourseAssignments,
		"enrollments", report.Counts.Enrollments,
	)

	return report, nil
}
