package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"LearningHubBackend/learning"
	"LearningHubBackend/models"
)

func (s *Store) CreateVideo(ctx context.Context, courseID int64, in models.VideoInput) (*models.Video, error) {
	v := models.Video{CourseID: courseID, Title: in.Title, VideoLink: in.VideoLink, ReleaseDate: in.ReleaseDate}
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO course_videos (course_id, title, video_link, release_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		courseID, in.Title, in.VideoLink, in.ReleaseDate,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("CreateVideo query failed: %w", err)
	}
	return &v, nil
}

func (s *Store) CourseVideos(ctx context.Context, courseID int64) ([]models.Video, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, course_id, title, video_link, release_date, created_at
		FROM course_videos
		WHERE course_id = $1
		ORDER BY id`, courseID)
	if err != nil {
		return nil, fmt.Errorf("CourseVideos query failed: %w", err)
	}
	defer rows.Close()

	videos := []models.Video{}
	for rows.Next() {
		var v models.Video
		var release sql.NullTime
		if err := rows.Scan(&v.ID, &v.CourseID, &v.Title, &v.VideoLink, &release, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("CourseVideos scan failed: %w", err)
		}
		if release.Valid {
			v.ReleaseDate = &release.Time
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (s *Store) VideoCourse(ctx context.Context, videoID int64) (int64, error) {
	var courseID int64
	err := s.DB.QueryRowContext(ctx, `SELECT course_id FROM course_videos WHERE id = $1`, videoID).Scan(&courseID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("VideoCourse query failed: %w", err)
	}
	return courseID, nil
}

func (s *Store) DeleteVideo(ctx context.Context, videoID int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM course_videos WHERE id = $1`, videoID)
	if err != nil {
		return fmt.Errorf("DeleteVideo query failed: %w", err)
	}
	if err := expectOne(res); err != nil {
		return err
	}
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM video_progress WHERE video_id = $1`, videoID); err != nil {
		return fmt.Errorf("DeleteVideo progress cleanup failed: %w", err)
	}
	return nil
}

func (s *Store) CountCourseVideos(ctx context.Context, courseID int64) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM course_videos WHERE course_id = $1`, courseID)
}

func (s *Store) CountWatchedVideos(ctx context.Context, courseID int64, email string) (int, error) {
	return s.count(ctx, `
		SELECT COUNT(DISTINCT vp.video_id)
		FROM video_progress vp
		JOIN course_videos v ON v.id = vp.video_id
		WHERE v.course_id = $1 AND LOWER(vp.user_email) = LOWER($2) AND vp.completed = true`,
		courseID, email)
}

// MarkVideoWatched relies on UNIQUE(user_email, video_id) for idempotence.
// Only existing videos can be marked.
func (s *Store) MarkVideoWatched(ctx context.Context, email string, videoID int64) error {
	res, err := s.DB.ExecContext(ctx, `
		INSERT INTO video_progress (user_email, video_id, completed)
		SELECT LOWER($1), v.id, true FROM course_videos v WHERE v.id = $2
		ON CONFLICT (user_email, video_id) DO NOTHING`, email, videoID)
	if err != nil {
		return fmt.Errorf("MarkVideoWatched query failed: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	var exists bool
	if err := s.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM course_videos WHERE id = $1)`, videoID).Scan(&exists); err != nil {
		return fmt.Errorf("MarkVideoWatched lookup failed: %w", err)
	}
	if !exists {
		return learning.ErrUnknownVideo
	}
	return nil
}

func (s *Store) WatchedVideoIDs(ctx context.Context, courseID int64, email string) ([]int64, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT vp.video_id
		FROM video_progress vp
		JOIN course_videos v ON v.id = vp.video_id
		WHERE v.course_id = $1 AND LOWER(vp.user_email) = LOWER($2) AND vp.completed = true
		ORDER BY vp.video_id`, courseID, email)
	if err != nil {
		return nil, fmt.Errorf("WatchedVideoIDs query failed: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("WatchedVideoIDs scan failed: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
