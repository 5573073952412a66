package models

import "time"

type Registration struct {
	ID           int64     `json:"id"`
	ActivityID   int64     `json:"activity_id"`
	UserID       string    `json:"user_id"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	CreatedAt    time.Time `json:"created_at"`
}

type Subscription struct {
	IsSubscribed bool `json:"isSubscribed"`
}

type TaskSubmission struct {
	ID           int64     `json:"id"`
	ActivityID   int64     `json:"activity_id"`
	UserID       string    `json:"user_id"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	FilePath     string    `json:"file_path"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type SponsorKind string

const (
	KindSponsor SponsorKind = "sponsor"
	KindPartner SponsorKind = "partner"
)

type Sponsor struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Kind      SponsorKind `json:"kind"`
	LogoPath  string      `json:"logo_path"`
	Website   string      `json:"website,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
