package model

import "time"

// NotificationEntity represents the notifications table entity.
type NotificationEntity struct {
	ID        uint64    `db:"id" json:"id"`
	UserID    uint64    `db:"user_id" json:"user_id"`
	Message   string    `db:"message" json:"message"`
	IsRead    bool      `db:"is_read" json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateNotificationRequest struct {
	Message string `json:"message" validate:"required"`
}
