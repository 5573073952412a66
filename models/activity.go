package models

import "time"

type ActivityType string

const (
	ActivityCourse   ActivityType = "course"
	ActivityWorkshop ActivityType = "workshop"
	ActivityEvent    ActivityType = "event"
)

type Activity struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        ActivityType `json:"type"`
	Instructor  string       `json:"instructor"`
	CommitteeID string       `json:"committee_id,omitempty"`
	FilePath    string       `json:"file_path,omitempty"`
	VideoLink   string       `json:"video_link,omitempty"`
	EventDate   *time.Time   `json:"event_date,omitempty"`
	CreatedBy   string       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ActivityInput carries the editable fields of an activity, as sent in a
// multipart form or JSON body.
type ActivityInput struct {
	Title       string       `json:"title" validate:"required,max=200"`
	Description string       `json:"description"`
	Type        ActivityType `json:"type" validate:"required,oneof=course workshop event"`
	Instructor  string       `json:"instructor"`
	CommitteeID string       `json:"committee_id"`
	VideoLink   string       `json:"video_link" validate:"omitempty,url"`
	EventDate   *time.Time   `json:"event_date"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalStudents   int `json:"total_students"`
	TotalActivities int `json:"total_activities"`
	TotalWorkshops  int `json:"total_workshops"`
}
