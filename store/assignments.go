// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/schooldb/models"
)

const assignmentColumns = "assignment_id, course_id, teacher_id, academic_year, semester"

// CreateCourseAssignment records that a teacher taught a course in a term.
// Both the course and the teacher must exist.
func (s *Store) CreateCourseAssignment(ctx context.Context, a models.CourseAssignment) (int64, error) {
	id, err := s.insert(ctx, `
		INSERT INTO Course_Assignments (course_id, teacher_id, academic_year, semester)
		VALUES (?, ?, ?, ?)
		RETURNING assignment_id
	`, a.CourseID, a.TeacherID, a.AcademicYear, a.Semester)
	if err != nil {
		return 0, fmt.Errorf("failed to insert course assignment: %w", err)
	}
	return id, nil
}

func (s *Store) GetCourseAssignment(ctx context.Context, id int64) (models.CourseAssignment, error) {
	var a models.CourseAssignment
	err := s.get(ctx, &a, "SELECT "+assignmentColumns+" FROM Course_Assignments WHERE assignment_id = ?", id)
	if err != nil {
		return models.CourseAssignment{}, fmt.Errorf("failed to get course assignment %d: %w", id, err)
	}
	return a, nil
}

func (s *Store) ListCourseAssignments(ctx context.Context) ([]models.CourseAssignment, error) {
	var assignments []models.CourseAssignment
	err := s.list(ctx, &assignments, "SELECT "+assignmentColumns+" FROM Course_Assignments ORDER BY assignment_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list course assignments: %w", err)
	}
	return assignments, nil
}

func (s *Store) ListAssignmentsForTeacher(ctx context.Context, teacherID int64) ([]models.CourseAssignment, error) {
	var assignments []models.CourseAssignment
	err := s.list(ctx, &assignments, `
		SELECT `+assignmentColumns+`
		FROM Course_Assignments
		WHERE teacher_id = ?
		ORDER BY academic_year, assignment_id
	`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for teacher %d: %w", teacherID, err)
	}
	return assignments, nil
}

func (s *Store) DeleteCourseAssignment(ctx context.Context, id int64) error {
	if err := s.deleteByID(ctx, "Course_Assignments", "assignment_id", id); err != nil {
		return fmt.Errorf("failed to delete course assignment %d: %w", id, err)
	}
	return nil
}
