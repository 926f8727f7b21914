// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/schooldb/models"
)

const enrollmentColumns = "enrollment_id, student_id, course_id, enrollment_date, score, grade"

// CreateEnrollment enrolls a student in a course.
// Fails with db.ErrUniqueViolation if the pair is already enrolled.
func (s *Store) CreateEnrollment(ctx context.Context, e models.Enrollment) (int64, error) {
	id, err := s.insert(ctx, `
		INSERT INTO Enrollments (student_id, course_id, enrollment_date, score, grade)
		VALUES (?, ?, ?, ?, ?)
		RETURNING enrollment_id
	`, e.StudentID, e.CourseID, e.EnrollmentDate, e.Score, e.Grade)
	if err != nil {
		return 0, fmt.Errorf("failed to insert enrollment: %w", err)
	}
	return id, nil
}

func (s *Store) GetEnrollment(ctx context.Context, id int64) (models.Enrollment, error) {
	var e models.Enrollment
	err := s.get(ctx, &e, "SELECT "+enrollmentColumns+" FROM Enrollments WHERE enrollment_id = ?", id)
	if err != nil {
		return models.Enrollment{}, fmt.Errorf("failed to get enrollment %d: %w", id, err)
	}
	return e, nil
}

func (s *Store) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.list(ctx, &enrollments, "SELECT "+enrollmentColumns+" FROM Enrollments ORDER BY enrollment_id"); err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}

func (s *Store) ListEnrollmentsForStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.list(ctx, &enrollments, `
		SELECT `+enrollmentColumns+`
		FROM Enrollments
		WHERE student_id = ?
		ORDER BY enrollment_id
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments for student %d: %w", studentID, err)
	}
	return enrollments, nil
}

func (s *Store) DeleteEnrollment(ctx context.Context, id int64) error {
	if err := s.deleteByID(ctx, "Enrollments", "enrollment_id", id); err != nil {
		return fmt.Errorf("failed to delete enrollment %d: %w", id, err)
	}
	return nil
}
