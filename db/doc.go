// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles engine access, schema creation, and seed loading.

# Opening a Database

Two engines are supported. The Dialect is also the database/sql driver name:

	conn, err := db.Open(db.SQLite, "school.db")
	conn, err := db.Open(db.Postgres, "postgres://...")

SQLite connections run with PRAGMA foreign_keys enabled. Without it SQLite
ignores REFERENCES clauses and nothing cascades.

# Schema Creation

CreateSchema initializes all tables in dependency order:

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
DropSchema removes the tables children first.

# Tables

	Students            student_id, first_name, last_name, email, enrollment_date, created_at
	Teachers            teacher_id, first_name, last_name, email, department, hire_date
	Courses             course_id, course_name, course_code, credits, department
	Course_Assignments  assignment_id, course_id, teacher_id, academic_year, semester
	Enrollments         enrollment_id, student_id, course_id, enrollment_date, score, grade

# Relationships

	Courses 1──* Course_Assignments *──1 Teachers
	Students 1──* Enrollments *──1 Courses

All foreign keys use ON DELETE CASCADE.

# Constraints

  - Students.email and Teachers.email are unique (each table on its own)
  - Courses.course_code is unique
  - Enrollments.(student_id, course_id) is unique
  - Primary keys are never reused (SERIAL, or AUTOINCREMENT on SQLite)

# Seeding

Seed loads 5 students, 5 teachers, 5 courses, 5 course assignments, and
10 enrollments in one transaction:

	report, err := db.Seed(ctx, conn, db.SQLite)

It is skipped when Students already has rows.

# Errors

Classify turns driver errors into sentinels usable with errors.Is:

	err = db.Classify(err)
	if errors.Is(err, db.ErrUniqueViolation) {
		// duplicate email, course code, or enrollment
	}

Recognized kinds: ErrUniqueViolation, ErrForeignKeyViolation,
ErrNotNullViolation. sql.ErrNoRows becomes ErrNotFound.
*/
package db
