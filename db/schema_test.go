// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"testing"
	"time"

	"github.com/danielhkuo/schooldb/db"
	"github.com/danielhkuo/schooldb/testutil"
)

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	// Second call must not fail
	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("second CreateSchema failed: %v", err)
	}

	for _, table := range db.Tables {
		if n := testutil.CountRows(t, conn, table); n != 0 {
			t.Errorf("expected empty %s, got %d rows", table, n)
		}
	}
}

func TestCreateSchema_UnknownDialect(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	if err := db.CreateSchema(conn, "oracle"); err == nil {
		t.Error("expected error for unknown dialect")
	}
}

func TestDropSchema(t *testing.T) {
	conn := testutil.SetupSeededDB(t)

	if err := db.DropSchema(conn); err != nil {
		t.Fatalf("DropSchema failed: %v", err)
	}

	if _, err := conn.Exec("SELECT COUNT(*) FROM Students"); err == nil {
		t.Error("expected Students to be gone")
	}

	// Recreate from scratch
	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		t.Fatalf("CreateSchema after drop failed: %v", err)
	}
	if n := testutil.CountRows(t, conn, "Enrollments"); n != 0 {
		t.Errorf("expected empty Enrollments, got %d", n)
	}
}

func TestForeignKeysRejectMissingParents(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	studentID := testutil.CreateTestStudent(t, conn, "Ada", "ada@test.edu")
	teacherID := testutil.CreateTestTeacher(t, conn, "Alan", "alan@test.edu")
	courseID := testutil.CreateTestCourse(t, conn, "Logic", "LOG100")

	tests := []struct {
		name  string
		query string
		args  []any
	}{
		{
			name:  "assignment with missing course",
			query: "INSERT INTO Course_Assignments (course_id, teacher_id, academic_year, semester) VALUES (?, ?, 2024, 'Fall')",
			args:  []any{courseID + 100, teacherID},
		},
		{
			name:  "assignment with missing teacher",
			query: "INSERT INTO Course_Assignments (course_id, teacher_id, academic_year, semester) VALUES (?, ?, 2024, 'Fall')",
			args:  []any{courseID, teacherID + 100},
		},
		{
			name:  "enrollment with missing student",
			query: "INSERT INTO Enrollments (student_id, course_id, enrollment_date) VALUES (?, ?, ?)",
			args:  []any{studentID + 100, courseID, time.Now()},
		},
		{
			name:  "enrollment with missing course",
			query: "INSERT INTO Enrollments (student_id, course_id, enrollment_date) VALUES (?, ?, ?)",
			args:  []any{studentID, courseID + 100, time.Now()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conn.Exec(tt.query, tt.args...)
			testutil.AssertErrorIs(t, db.Classify(err), db.ErrForeignKeyViolation)
		})
	}
}

func TestUniqueConstraints(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	studentID := testutil.CreateTestStudent(t, conn, "Ada", "ada@test.edu")
	testutil.CreateTestTeacher(t, conn, "Alan", "alan@test.edu")
	courseID := testutil.CreateTestCourse(t, conn, "Logic", "LOG100")
	testutil.CreateTestEnrollment(t, conn, studentID, courseID, 90)

	tests := []struct {
		name  string
		query string
		args  []any
	}{
		{
			name:  "duplicate student email",
			query: "INSERT INTO Students (first_name, last_name, email, enrollment_date) VALUES ('Eve', 'X', ?, ?)",
			args:  []any{"ada@test.edu", time.Now()},
		},
		{
			name:  "duplicate teacher email",
			query: "INSERT INTO Teachers (first_name, last_name, email, hire_date) VALUES ('Eve', 'X', ?, ?)",
			args:  []any{"alan@test.edu", time.Now()},
		},
		{
			name:  "duplicate course code",
			query: "INSERT INTO Courses (course_name, course_code, credits) VALUES ('Logic II', ?, 3)",
			args:  []any{"LOG100"},
		},
		{
			name:  "duplicate enrollment",
			query: "INSERT INTO Enrollments (student_id, course_id, enrollment_date) VALUES (?, ?, ?)",
			args:  []any{studentID, courseID, time.Now()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conn.Exec(tt.query, tt.args...)
			testutil.AssertErrorIs(t, db.Classify(err), db.ErrUniqueViolation)
		})
	}
}

func TestEmailUniquenessIsPerTable(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	testutil.CreateTestStudent(t, conn, "Sam", "sam@test.edu")
	// Same address on a teacher is allowed
	testutil.CreateTestTeacher(t, conn, "Sam", "sam@test.edu")

	// Email is optional, and NULLs never collide
	testutil.CreateTestStudent(t, conn, "NoMail1", "")
	testutil.CreateTestStudent(t, conn, "NoMail2", "")

	if n := testutil.CountRows(t, conn, "Students"); n != 3 {
		t.Errorf("expected 3 students, got %d", n)
	}
}

func TestNotNullConstraints(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	tests := []struct {
		name  string
		query string
	}{
		{"student first name", "INSERT INTO Students (first_name, last_name, enrollment_date) VALUES (NULL, 'X', '2024-01-01')"},
		{"student enrollment date", "INSERT INTO Students (first_name, last_name) VALUES ('A', 'X')"},
		{"teacher hire date", "INSERT INTO Teachers (first_name, last_name) VALUES ('A', 'X')"},
		{"course code", "INSERT INTO Courses (course_name, credits) VALUES ('Logic', 3)"},
		{"assignment semester", "INSERT INTO Course_Assignments (course_id, teacher_id, academic_year) VALUES (1, 1, 2024)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conn.Exec(tt.query)
			testutil.AssertErrorIs(t, db.Classify(err), db.ErrNotNullViolation)
		})
	}
}

func TestDeleteCourseCascades(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	studentID := testutil.CreateTestStudent(t, conn, "Ada", "ada@test.edu")
	teacherID := testutil.CreateTestTeacher(t, conn, "Alan", "alan@test.edu")
	logic := testutil.CreateTestCourse(t, conn, "Logic", "LOG100")
	art := testutil.CreateTestCourse(t, conn, "Art", "ART100")

	testutil.CreateTestAssignment(t, conn, logic, teacherID)
	testutil.CreateTestAssignment(t, conn, art, teacherID)
	testutil.CreateTestEnrollment(t, conn, studentID, logic, 80)
	testutil.CreateTestEnrollment(t, conn, studentID, art, 70)

	if _, err := conn.Exec("DELETE FROM Courses WHERE course_id = ?", logic); err != nil {
		t.Fatalf("delete course failed: %v", err)
	}

	var n int
	conn.QueryRow("SELECT COUNT(*) FROM Enrollments WHERE course_id = ?", logic).Scan(&n)
	if n != 0 {
		t.Errorf("expected enrollments of deleted course to be gone, got %d", n)
	}
	conn.QueryRow("SELECT COUNT(*) FROM Course_Assignments WHERE course_id = ?", logic).Scan(&n)
	if n != 0 {
		t.Errorf("expected assignments of deleted course to be gone, got %d", n)
	}

	// Rows of the other course stay
	if got := testutil.CountRows(t, conn, "Enrollments"); got != 1 {
		t.Errorf("expected 1 enrollment left, got %d", got)
	}
	if got := testutil.CountRows(t, conn, "Course_Assignments"); got != 1 {
		t.Errorf("expected 1 assignment left, got %d", got)
	}
	if got := testutil.CountRows(t, conn, "Students"); got != 1 {
		t.Errorf("student should not be deleted, got %d", got)
	}
}

func TestDeleteTeacherCascades(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	alan := testutil.CreateTestTeacher(t, conn, "Alan", "alan@test.edu")
	grace := testutil.CreateTestTeacher(t, conn, "Grace", "grace@test.edu")
	courseID := testutil.CreateTestCourse(t, conn, "Logic", "LOG100")

	testutil.CreateTestAssignment(t, conn, courseID, alan)
	testutil.CreateTestAssignment(t, conn, courseID, alan)
	testutil.CreateTestAssignment(t, conn, courseID, grace)

	if _, err := conn.Exec("DELETE FROM Teachers WHERE teacher_id = ?", alan); err != nil {
		t.Fatalf("delete teacher failed: %v", err)
	}

	if got := testutil.CountRows(t, conn, "Course_Assignments"); got != 1 {
		t.Errorf("expected 1 assignment left, got %d", got)
	}
	if got := testutil.CountRows(t, conn, "Courses"); got != 1 {
		t.Errorf("course should not be deleted, got %d", got)
	}
}

func TestDeleteStudentCascades(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	ada := testutil.CreateTestStudent(t, conn, "Ada", "ada@test.edu")
	bob := testutil.CreateTestStudent(t, conn, "Bob", "bob@test.edu")
	courseID := testutil.CreateTestCourse(t, conn, "Logic", "LOG100")

	testutil.CreateTestEnrollment(t, conn, ada, courseID, 90)
	testutil.CreateTestEnrollment(t, conn, bob, courseID, 60)

	if _, err := conn.Exec("DELETE FROM Students WHERE student_id = ?", ada); err != nil {
		t.Fatalf("delete student failed: %v", err)
	}

	if got := testutil.CountRows(t, conn, "Enrollments"); got != 1 {
		t.Errorf("expected 1 enrollment left, got %d", got)
	}
}

func TestIdentifiersAreNotReused(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	first := testutil.CreateTestStudent(t, conn, "Ada", "ada@test.edu")
	second := testutil.CreateTestStudent(t, conn, "Bob", "bob@test.edu")
	if second <= first {
		t.Fatalf("expected increasing IDs, got %d then %d", first, second)
	}

	if _, err := conn.Exec("DELETE FROM Students WHERE student_id = ?", second); err != nil {
		t.Fatal(err)
	}

	third := testutil.CreateTestStudent(t, conn, "Cy", "cy@test.edu")
	if third <= second {
		t.Errorf("expected ID above %d after delete, got %d", second, third)
	}
}
