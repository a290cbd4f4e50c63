package model

import "time"

type Notification struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	UserID         string     `gorm:"not null;index" json:"user_id"`
	TaskInstanceID *string    `gorm:"size:36" json:"task_instance_id,omitempty"`
	Message        string     `gorm:"not null" json:"message"`
	Priority       int        `gorm:"not null" json:"priority"`
	ScheduledFor   time.Time  `gorm:"not null" json:"scheduled_for"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	ViewedAt       *time.Time `json:"viewed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
