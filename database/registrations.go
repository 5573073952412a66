package database

import (
	"context"
	"fmt"

	"LearningHubBackend/models"
)

func (s *Store) InsertRegistration(ctx context.Context, reg models.Registration) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO registrations (activity_id, user_id, student_name, student_email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (activity_id, user_id) DO NOTHING`,
		reg.ActivityID, reg.UserID, reg.StudentName, reg.StudentEmail)
	if err != nil {
		return fmt.Errorf("InsertRegistration query failed: %w", err)
	}
	return nil
}

func (s *Store) RegistrationExists(ctx context.Context, activityID int64, userID string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM registrations WHERE activity_id = $1 AND user_id = $2)`,
		activityID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("RegistrationExists query failed: %w", err)
	}
	return exists, nil
}

func (s *Store) ListRegistrations(ctx context.Context, activityID int64) ([]models.Registration, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, activity_id, user_id, COALESCE(student_name, ''), COALESCE(student_email, ''), created_at
		FROM registrations
		WHERE activity_id = $1
		ORDER BY created_at`, activityID)
	if err != nil {
		return nil, fmt.Errorf("ListRegistrations query failed: %w", err)
	}
	defer rows.Close()

	out := []models.Registration{}
	for rows.Next() {
		var r models.Registration
		if err := rows.Scan(&r.ID, &r.ActivityID, &r.UserID, &r.StudentName, &r.StudentEmail, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListRegistrations scan failed: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
