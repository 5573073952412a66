package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"LearningHubBackend/models"
)

const activityColumns = `id, title, COALESCE(description, ''), type, COALESCE(instructor, ''),
	COALESCE(committee_id, ''), COALESCE(file_path, ''), COALESCE(video_link, ''),
	event_date, COALESCE(created_by, ''), created_at, updated_at`

func scanActivity(row interface{ Scan(...any) error }) (*models.Activity, error) {
	var a models.Activity
	var eventDate sql.NullTime
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Type, &a.Instructor, &a.CommitteeID,
		&a.FilePath, &a.VideoLink, &eventDate, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if eventDate.Valid {
		a.EventDate = &eventDate.Time
	}
	return &a, nil
}

func (s *Store) CreateActivity(ctx context.Context, in models.ActivityInput, filePath, createdBy string) (int64, error) {
	var id int64
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO activities (title, description, type, instructor, committee_id, file_path, video_link, event_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		in.Title, nullString(in.Description), in.Type, nullString(in.Instructor), nullString(in.CommitteeID),
		nullString(filePath), nullString(in.VideoLink), in.EventDate, createdBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("CreateActivity query failed: %w", err)
	}
	return id, nil
}

func (s *Store) ListActivities(ctx context.Context) ([]models.Activity, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+activityColumns+` FROM activities ORDER BY event_date DESC NULLS LAST, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListActivities query failed: %w", err)
	}
	defer rows.Close()

	out := []models.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("ListActivities scan failed: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *Store) GetActivity(ctx context.Context, id int64) (*models.Activity, error) {
	a, err := scanActivity(s.DB.QueryRowContext(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetActivity query failed: %w", err)
	}
	return a, nil
}

// UpdateActivity keeps the stored file when filePath is empty.
func (s *Store) UpdateActivity(ctx context.Context, id int64, in models.ActivityInput, filePath string) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE activities SET
			title = $2, description = $3, type = $4, instructor = $5, committee_id = $6,
			video_link = $7, event_date = $8,
			file_path = COALESCE($9, file_path),
			updated_at = NOW()
		WHERE id = $1`,
		id, in.Title, nullString(in.Description), in.Type, nullString(in.Instructor), nullString(in.CommitteeID),
		nullString(in.VideoLink), in.EventDate, nullString(filePath))
	if err != nil {
		return fmt.Errorf("UpdateActivity query failed: %w", err)
	}
	return expectOne(res)
}

// DeleteActivity removes the activity row and then its course content.
// Dependents are cleaned up in separate statements; a failure there leaves
// orphans behind and is reported after the activity itself is gone.
func (s *Store) DeleteActivity(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteActivity query failed: %w", err)
	}
	if err := expectOne(res); err != nil {
		return err
	}

	var errs []error
	for _, q := range []string{
		`DELETE FROM video_progress WHERE video_id IN (SELECT id FROM course_videos WHERE course_id = $1)`,
		`DELETE FROM course_videos WHERE course_id = $1`,
		`DELETE FROM quiz_questions WHERE course_id = $1`,
		`DELETE FROM course_materials WHERE course_id = $1`,
		`DELETE FROM registrations WHERE activity_id = $1`,
		`DELETE FROM task_submissions WHERE activity_id = $1`,
	} {
		if _, err := s.DB.ExecContext(ctx, q, id); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("DeleteActivity cleanup incomplete: %w", errors.Join(errs...))
	}
	return nil
}

func (s *Store) CountStudents(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM users WHERE role = 'student'`)
}

func (s *Store) CountActivities(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM activities`)
}

func (s *Store) CountWorkshops(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM activities WHERE type = 'workshop'`)
}

func (s *Store) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}
	return n, nil
}
