package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"LearningHubBackend/models"
)

func (s *Store) CreateMaterial(ctx context.Context, courseID int64, title, filePath string) (*models.Material, error) {
	m := models.Material{CourseID: courseID, Title: title, FilePath: filePath}
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO course_materials (course_id, title, file_path)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`, courseID, title, filePath,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("CreateMaterial query failed: %w", err)
	}
	return &m, nil
}

func (s *Store) CourseMaterials(ctx context.Context, courseID int64) ([]models.Material, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, course_id, title, file_path, created_at
		FROM course_materials
		WHERE course_id = $1
		ORDER BY created_at`, courseID)
	if err != nil {
		return nil, fmt.Errorf("CourseMaterials query failed: %w", err)
	}
	defer rows.Close()

	out := []models.Material{}
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.ID, &m.CourseID, &m.Title, &m.FilePath, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("CourseMaterials scan failed: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) MaterialCourse(ctx context.Context, id int64) (int64, error) {
	var courseID int64
	err := s.DB.QueryRowContext(ctx, `SELECT course_id FROM course_materials WHERE id = $1`, id).Scan(&courseID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("MaterialCourse query failed: %w", err)
	}
	return courseID, nil
}

func (s *Store) DeleteMaterial(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM course_materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteMaterial query failed: %w", err)
	}
	return expectOne(res)
}

func (s *Store) CreateTaskSubmission(ctx context.Context, t *models.TaskSubmission) error {
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO task_submissions (activity_id, user_id, student_name, student_email, file_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, submitted_at`,
		t.ActivityID, t.UserID, t.StudentName, t.StudentEmail, t.FilePath,
	).Scan(&t.ID, &t.SubmittedAt)
	if err != nil {
		return fmt.Errorf("CreateTaskSubmission query failed: %w", err)
	}
	return nil
}

func (s *Store) TaskSubmissions(ctx context.Context, activityID int64) ([]models.TaskSubmission, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, activity_id, user_id, COALESCE(student_name, ''), COALESCE(student_email, ''), file_path, submitted_at
		FROM task_submissions
		WHERE activity_id = $1
		ORDER BY submitted_at DESC`, activityID)
	if err != nil {
		return nil, fmt.Errorf("TaskSubmissions query failed: %w", err)
	}
	defer rows.Close()

	out := []models.TaskSubmission{}
	for rows.Next() {
		var t models.TaskSubmission
		if err := rows.Scan(&t.ID, &t.ActivityID, &t.UserID, &t.StudentName, &t.StudentEmail, &t.FilePath, &t.SubmittedAt); err != nil {
			return nil, fmt.Errorf("TaskSubmissions scan failed: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
