package models

import "time"

type Video struct {
	ID          int64      `json:"id"`
	CourseID    int64      `json:"course_id"`
	Title       string     `json:"title"`
	VideoLink   string     `json:"video_link"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Released reports whether the video is visible to learners at now.
func (v Video) Released(now time.Time) bool {
	return v.ReleaseDate == nil || !v.ReleaseDate.After(now)
}

type VideoInput struct {
	Title       string     `json:"title" validate:"required,max=200"`
	VideoLink   string     `json:"video_link" validate:"required,url"`
	ReleaseDate *time.Time `json:"release_date"`
}

type WatchRequest struct {
	VideoID int64 `json:"video_id" validate:"required,gt=0,lte=2147483647"`
}

type Progress struct {
	Percent int `json:"percent"`
}

type Material struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"course_id"`
	Title     string    `json:"title"`
	FilePath  string    `json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}
