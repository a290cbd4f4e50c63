package model

import (
	"time"

	"recruit-timeline.com/recruit-timeline/internal/constants"
)

type UserTimeline struct {
	ID                   string                  `gorm:"primaryKey;size:36" json:"id"`
	UserID               string                  `gorm:"not null;index" json:"user_id"`
	CurrentPhase         constants.TimelinePhase `gorm:"type:varchar(20);not null" json:"current_phase"`
	Sport                string                  `gorm:"not null" json:"sport"`
	CompletionPercentage float64                 `gorm:"not null;default:0" json:"completion_percentage"`
	LastActivityAt       time.Time               `json:"last_activity_at"`
	HasBlockingTasks     bool                    `gorm:"not null;default:false" json:"has_blocking_tasks"`
	IsActive             bool                    `gorm:"not null;default:true;index" json:"is_active"`
	GenerationVersion    uint                    `gorm:"not null;default:0" json:"generation_version"`
	CreatedAt            time.Time               `json:"created_at"`
	UpdatedAt            time.Time               `json:"updated_at"`
}
