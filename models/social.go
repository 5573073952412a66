package models

import "time"

type Post struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	AuthorPic  string    `json:"author_pic"`
	Content    string    `json:"content"`
	ImagePath  string    `json:"image_path,omitempty"`
	Reactions  int       `json:"reactions"`
	Comments   int       `json:"comments"`
	CreatedAt  time.Time `json:"created_at"`
}

type PostInput struct {
	Content string `json:"content" validate:"required,max=5000"`
}

type Comment struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"post_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	AuthorPic  string    `json:"author_pic"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type CommentInput struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type ReactionInput struct {
	Type string `json:"type" validate:"required,oneof=like love celebrate insightful"`
}

// ReactionOutcome describes what a reaction toggle did to the stored row.
type ReactionOutcome string

const (
	ReactionAdded   ReactionOutcome = "added"
	ReactionUpdated ReactionOutcome = "updated"
	ReactionRemoved ReactionOutcome = "removed"
)
