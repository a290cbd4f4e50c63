package model

import "time"

// UserProfile is the row the facts provider reads. It is written by the
// profile subsystem; the timeline engine only ever consumes it.
type UserProfile struct {
	UserID                  string    `gorm:"primaryKey;size:36" json:"user_id"`
	Sport                   string    `gorm:"not null" json:"sport"`
	Role                    string    `gorm:"not null" json:"role"`
	GraduationYear          int       `json:"graduation_year"`
	CompletionPercent       int       `gorm:"not null;default:0" json:"completion_percent"`
	HasProfileImage         bool      `gorm:"not null;default:false" json:"has_profile_image"`
	HasHighlightVideo       bool      `gorm:"not null;default:false" json:"has_highlight_video"`
	HasPhysicalMeasurements bool      `gorm:"not null;default:false" json:"has_physical_measurements"`
	HasPerformanceMetrics   bool      `gorm:"not null;default:false" json:"has_performance_metrics"`
	HasAcademicInfo         bool      `gorm:"not null;default:false" json:"has_academic_info"`
	HasContactInfo          bool      `gorm:"not null;default:false" json:"has_contact_info"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}
