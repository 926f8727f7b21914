// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/schooldb/models"
)

const teacherColumns = "teacher_id, first_name, last_name, email, department, hire_date"

func (s *Store) CreateTeacher(ctx context.Context, t models.Teacher) (int64, error) {
	id, err := s.insert(ctx, `
		INSERT INTO Teachers (first_name, last_name, email, department, hire_date)
		VALUES (?, ?, ?, ?, ?)
		RETURNING teacher_id
	`, t.FirstName, t.LastName, t.Email, t.Department, t.HireDate)
	if err != nil {
		return 0, fmt.Errorf("failed to insert teacher: %w", err)
	}
	return id, nil
}

func (s *Store) GetTeacher(ctx context.Context, id int64) (models.Teacher, error) {
	var t models.Teacher
	err := s.get(ctx, &t, "SELECT "+teacherColumns+" FROM Teachers WHERE teacher_id = ?", id)
	if err != nil {
		return models.Teacher{}, fmt.Errorf("failed to get teacher %d: %w", id, err)
	}
	return t, nil
}

func (s *Store) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := s.list(ctx, &teachers, "SELECT "+teacherColumns+" FROM Teachers ORDER BY teacher_id"); err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	return teachers, nil
}

// DeleteTeacher removes a teacher and every course assignment they hold
func (s *Store) DeleteTeacher(ctx context.Context, id int64) error {
	if err := s.deleteByID(ctx, "Teachers", "teacher_id", id); err != nil {
		return fmt.Errorf("failed to delete teacher %d: %w", id, err)
	}
	return nil
}
