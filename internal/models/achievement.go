package model

import "time"

const (
	AchievementFirstTaskComplete = "first_task_complete"
	AchievementTaskStreak5       = "task_streak_5"
)

// Achievement is a one-time award. The unique (user_id, key) index backs the
// insert-if-absent semantics.
type Achievement struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	Key       string    `gorm:"not null;uniqueIndex:idx_user_achievement" json:"key"`
	AwardedAt time.Time `json:"awarded_at"`
}
