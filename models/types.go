// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Semester labels used by the seed data
const (
	SemesterFall   = "Fall"
	SemesterSpring = "Spring"
)

// Row types

type Student struct {
	ID             int64     `json:"student_id" db:"student_id"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Email          *string   `json:"email,omitempty" db:"email"`
	EnrollmentDate time.Time `json:"enrollment_date" db:"enrollment_date"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type Teacher struct {
	ID         int64     `json:"teacher_id" db:"teacher_id"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	Email      *string   `json:"email,omitempty" db:"email"`
	Department *string   `json:"department,omitempty" db:"department"`
	HireDate   time.Time `json:"hire_date" db:"hire_date"`
}

type Course struct {
	ID         int64   `json:"course_id" db:"course_id"`
	Name       string  `json:"course_name" db:"course_name"`
	Code       string  `json:"course_code" db:"course_code"`
	Credits    int     `json:"credits" db:"credits"`
	Department *string `json:"department,omitempty" db:"department"`
}

// CourseAssignment records that a teacher taught a course in a term
type CourseAssignment struct {
	ID           int64  `json:"assignment_id" db:"assignment_id"`
	CourseID     int64  `json:"course_id" db:"course_id"`
	TeacherID    int64  `json:"teacher_id" db:"teacher_id"`
	AcademicYear int    `json:"academic_year" db:"academic_year"`
	Semester     string `json:"semester" db:"semester"`
}

// Enrollment is unique per (student, course)
type Enrollment struct {
	ID             int64     `json:"enrollment_id" db:"enrollment_id"`
	StudentID      int64     `json:"student_id" db:"student_id"`
	CourseID       int64     `json:"course_id" db:"course_id"`
	EnrollmentDate time.Time `json:"enrollment_date" db:"enrollment_date"`
	Score          *float64  `json:"score,omitempty" db:"score"`
	Grade          *string   `json:"grade,omitempty" db:"grade"`
}

// Report types

// Performer is one row of a course ranking
type Performer struct {
	StudentID  int64   `json:"student_id" db:"student_id"`
	FirstName  string  `json:"first_name" db:"first_name"`
	LastName   string  `json:"last_name" db:"last_name"`
	Email      *string `json:"email,omitempty" db:"email"`
	CourseName string  `json:"course_name" db:"course_name"`
	Score      float64 `json:"score" db:"score"`
}

type ColumnInfo struct {
	Name       string `json:"name" db:"name"`
	Type       string `json:"type" db:"type"`
	NotNull    bool   `json:"not_null" db:"not_null"`
	PrimaryKey bool   `json:"primary_key" db:"primary_key"`
}

type TableInfo struct {
	Name    string       `json:"name"`
	Columns []ColumnInfo `json:"columns"`
}

type TableCounts struct {
	Students          int `json:"students"`
	Teachers          int `json:"teachers"`
	Courses           int `json:"courses"`
	CourseAssignments int `json:"course_assignments"`
	Enrollments       int `json:"enrollments"`
}
