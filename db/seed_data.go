// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"time"

	"github.com/danielhkuo/schooldb/models"
)

// Seed rows. Assignments and enrollments refer to parents by 1-based position.

var seedStudents = []models.Student{
	{FirstName: "John", LastName: "Smith", Email: ptr("john.smith@school.edu"), EnrollmentDate: day(2023, 9, 1)},
	{FirstName: "Emma", LastName: "Johnson", Email: ptr("emma.johnson@school.edu"), EnrollmentDate: day(2023, 9, 1)},
	{FirstName: "Michael", LastName: "Brown", Email: ptr("michael.brown@school.edu"), EnrollmentDate: day(2023, 9, 2)},
	{FirstName: "Sophia", LastName: "Davis", Email: ptr("sophia.davis@school.edu"), EnrollmentDate: day(2023, 9, 2)},
	{FirstName: "William", LastName: "Wilson", Email: ptr("william.wilson@school.edu"), EnrollmentDate: day(2023, 9, 3)},
}

var seedTeachers = []models.Teacher{
	{FirstName: "Robert", LastName: "Anderson", Email: ptr("r.anderson@school.edu"), Department: ptr("Mathematics"), HireDate: day(2015, 8, 15)},
	{FirstName: "Linda", LastName: "Martinez", Email: ptr("l.martinez@school.edu"), Department: ptr("Physics"), HireDate: day(2017, 1, 10)},
	{FirstName: "James", LastName: "Taylor", Email: ptr("j.taylor@school.edu"), Department: ptr("Computer Science"), HireDate: day(2018, 8, 20)},
	{FirstName: "Patricia", LastName: "Thomas", Email: ptr("p.thomas@school.edu"), Department: ptr("English"), HireDate: day(2012, 8, 25)},
	{FirstName: "David", LastName: "Moore", Email: ptr("d.moore@school.edu"), Department: ptr("Mathematics"), HireDate: day(2020, 1, 5)},
}

var seedCourses = []models.Course{
	{Name: "Calculus I", Code: "MATH101", Credits: 4, Department: ptr("Mathematics")},
	{Name: "Physics I", Code: "PHYS101", Credits: 4, Department: ptr("Physics")},
	{Name: "Introduction to Programming", Code: "CS101", Credits: 3, Department: ptr("Computer Science")},
	{Name: "English Composition", Code: "ENG101", Credits: 3, Department: ptr("English")},
	{Name: "Discrete Mathematics", Code: "MATH201", Credits: 3, Department: ptr("Mathematics")},
}

type seedAssignment struct {
	course, teacher int
	year            int
	semester        string
}

var seedAssignments = []seedAssignment{
	{course: 1, teacher: 1, year: 2024, semester: models.SemesterFall},
	{course: 2, teacher: 2, year: 2024, semester: models.SemesterFall},
	{course: 3, teacher: 3, year: 2024, semester: models.SemesterFall},
	{course: 4, teacher: 4, year: 2024, semester: models.SemesterSpring},
	{course: 5, teacher: 5, year: 2024, semester: models.SemesterSpring},
}

type seedEnrollment struct {
	student, course int
	date            time.Time
	score           float64
}

var seedEnrollments = []seedEnrollment{
	{student: 1, course: 1, date: day(2023, 9, 5), score: 92.50},
	{student: 1, course: 3, date: day(2023, 9, 5), score: 88.00},
	{student: 2, course: 1, date: day(2023, 9, 5), score: 95.00},
	{student: 2, course: 2, date: day(2023, 9, 6), score: 81.50},
	{student: 3, course: 1, date: day(2023, 9, 6), score: 78.00},
	{student: 3, course: 4, date: day(2023, 9, 6), score: 85.50},
	{student: 4, course: 5, date: day(2023, 9, 7), score: 90.00},
	{student: 4, course: 2, date: day(2023, 9, 7), score: 73.50},
	{student: 5, course: 3, date: day(2023, 9, 8), score: 89.00},
	{student: 5, course: 5, date: day(2023, 9, 8), score: 67.50},
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}
