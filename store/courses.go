// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/schooldb/models"
)

const courseColumns = "course_id, course_name, course_code, credits, department"

func (s *Store) CreateCourse(ctx context.Context, c models.Course) (int64, error) {
	id, err := s.insert(ctx, `
		INSERT INTO Courses (course_name, course_code, credits, department)
		VALUES (?, ?, ?, ?)
		RETURNING course_id
	`, c.Name, c.Code, c.Credits, c.Department)
	if err != nil {
		return 0, fmt.Errorf("failed to insert course: %w", err)
	}
	return id, nil
}

func (s *Store) GetCourse(ctx context.Context, id int64) (models.Course, error) {
	var c models.Course
	err := s.get(ctx, &c, "SELECT "+courseColumns+" FROM Courses WHERE course_id = ?", id)
	if err != nil {
		return models.Course{}, fmt.Errorf("failed to get course %d: %w", id, err)
	}
	return c, nil
}

// GetCourseByCode looks a course up by its unique code
func (s *Store) GetCourseByCode(ctx context.Context, code string) (models.Course, error) {
	var c models.Course
	err := s.get(ctx, &c, "SELECT "+courseColumns+" FROM Courses WHERE course_code = ?", code)
	if err != nil {
		return models.Course{}, fmt.Errorf("failed to get course %s: %w", code, err)
	}
	return c, nil
}

func (s *Store) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := s.list(ctx, &courses, "SELECT "+courseColumns+" FROM Courses ORDER BY course_id"); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// DeleteCourse removes a course with its enrollments and assignments
func (s *Store) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.deleteByID(ctx, "Courses", "course_id", id); err != nil {
		return fmt.Errorf("failed to delete course %d: %w", id, err)
	}
	return nil
}
