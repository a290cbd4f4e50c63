package model

import "time"

// ProgressEvent is an append-only audit record. Rows are never updated or
// deleted once written.
type ProgressEvent struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         string    `gorm:"not null;index" json:"user_id"`
	EventType      string    `gorm:"not null" json:"event_type"`
	Data           string    `json:"data,omitempty"`
	TaskInstanceID *string   `gorm:"size:36" json:"task_instance_id,omitempty"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}
