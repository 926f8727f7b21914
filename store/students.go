// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/schooldb/models"
)

const studentColumns = "student_id, first_name, last_name, email, enrollment_date, created_at"

// CreateStudent inserts a student and returns the assigned student_id.
// created_at is filled in by the database.
func (s *Store) CreateStudent(ctx context.Context, st models.Student) (int64, error) {
	id, err := s.insert(ctx, `
		INSERT INTO Students (first_name, last_name, email, enrollment_date)
		VALUES (?, ?, ?, ?)
		RETURNING student_id
	`, st.FirstName, st.LastName, st.Email, st.EnrollmentDate)
	if err != nil {
		return 0, fmt.Errorf("failed to insert student: %w", err)
	}
	return id, nil
}

func (s *Store) GetStudent(ctx context.Context, id int64) (models.Student, error) {
	var st models.Student
	err := s.get(ctx, &st, "SELECT "+studentColumns+" FROM Students WHERE student_id = ?", id)
	if err != nil {
		return models.Student{}, fmt.Errorf("failed to get student %d: %w", id, err)
	}
	return st, nil
}

func (s *Store) ListStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := s.list(ctx, &students, "SELECT "+studentColumns+" FROM Students ORDER BY student_id"); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// DeleteStudent removes a student together with their enrollments
func (s *Store) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.deleteByID(ctx, "Students", "student_id", id); err != nil {
		return fmt.Errorf("failed to delete student %d: %w", id, err)
	}
	return nil
}
