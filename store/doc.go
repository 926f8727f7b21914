// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides typed access to the school records tables.

# Creating a Store

	conn, _ := db.Open(db.SQLite, "school.db")
	s := store.New(conn, db.SQLite)

Store uses sqlx for struct scanning. Queries are written with ? and rebound
to $1, $2, ... on PostgreSQL.

# Operations

Each table has Create, Get, List and Delete:

	id, err := s.CreateStudent(ctx, models.Student{...})
	st, err := s.GetStudent(ctx, id)
	err = s.DeleteStudent(ctx, id) // enrollments go with it

Keys are assigned by the database and returned from Create.

# Errors

Errors wrap the db sentinels:

	_, err := s.CreateEnrollment(ctx, e)
	switch {
	case errors.Is(err, db.ErrUniqueViolation):
		// already enrolled
	case errors.Is(err, db.ErrForeignKeyViolation):
		// unknown student or course
	}

Get and Delete return db.ErrNotFound for missing rows.

# Reports

TopPerformers ranks students by score in matching courses:

	top, err := s.TopPerformers(ctx, "Math", 10)

DescribeSchema lists the tables and their columns. Counts returns the
number of rows per table.
*/
package store
