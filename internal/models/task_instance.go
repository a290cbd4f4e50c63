package model

import (
	"time"

	"recruit-timeline.com/recruit-timeline/internal/constants"
)

// TaskInstance is a materialized, per-user occurrence of a catalog
// definition. The composite unique index keeps the engine from ever holding
// two instances of the same definition on one timeline, including under
// concurrent regeneration.
type TaskInstance struct {
	ID            string                  `gorm:"primaryKey;size:36" json:"id"`
	TimelineID    string                  `gorm:"not null;uniqueIndex:idx_timeline_task" json:"timeline_id"`
	TaskKey       string                  `gorm:"not null;uniqueIndex:idx_timeline_task" json:"task_key"`
	Status        constants.TaskStatus    `gorm:"type:varchar(20);not null" json:"status"`
	Priority      constants.PriorityLevel `gorm:"type:varchar(20);not null" json:"priority"`
	OrderIndex    int                     `gorm:"not null" json:"order_index"`
	TriggerKind   string                  `gorm:"not null" json:"trigger_kind"`
	TriggerDetail string                  `json:"trigger_detail"`
	BlocksSharing bool                    `gorm:"not null;default:false" json:"blocks_sharing"`
	IsPinned      bool                    `gorm:"not null;default:false" json:"is_pinned"`
	IsVisible     bool                    `gorm:"not null;default:true" json:"is_visible"`
	CreatedAt     time.Time               `json:"created_at"`
	StartedAt     *time.Time              `json:"started_at,omitempty"`
	CompletedAt   *time.Time              `json:"completed_at,omitempty"`
}
