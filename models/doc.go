// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines row and report types for the school records.

# Row Types

One struct per table, tagged for sqlx (db) and JSON:

  - Student: Students row
  - Teacher: Teachers row
  - Course: Courses row
  - CourseAssignment: Course_Assignments row (teacher taught course in a term)
  - Enrollment: Enrollments row (unique per student and course)

Optional columns are pointers and scan NULL as nil:

  - Student.Email, Teacher.Email
  - Teacher.Department, Course.Department
  - Enrollment.Score, Enrollment.Grade

# Report Types

  - Performer: student, course name and score from a course ranking
  - TableInfo, ColumnInfo: schema description
  - TableCounts: row count per table
*/
package models
