package models

import "time"

type NotificationKind string

const (
	NotificationReaction NotificationKind = "reaction"
	NotificationComment  NotificationKind = "comment"
)

// Notification copies the sender's name and avatar at emit time.
type Notification struct {
	ID          int64            `json:"id"`
	RecipientID string           `json:"recipient_id"`
	SenderName  string           `json:"sender_name"`
	SenderPic   string           `json:"sender_pic"`
	Message     string           `json:"message"`
	Type        NotificationKind `json:"type"`
	IsRead      bool             `json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}
