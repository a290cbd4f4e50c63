package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "recruit-timeline.com/recruit-timeline/internal/errors"
	model "recruit-timeline.com/recruit-timeline/internal/models"
	"recruit-timeline.com/recruit-timeline/internal/services"
)

// ProfileRepository adapts the profile table into the read-only facts
// snapshot the engine consumes. Profile writes belong to the profile
// subsystem, not here.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ services.ProfileFactsProvider = (*ProfileRepository)(nil)

func (r *ProfileRepository) GetFacts(ctx context.Context, userID string) (*services.UserProfileFacts, error) {
	var profile model.UserProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}

	return &services.UserProfileFacts{
		UserID:                  profile.UserID,
		Sport:                   profile.Sport,
		Role:                    profile.Role,
		GraduationYear:          profile.GraduationYear,
		CompletionPercent:       profile.CompletionPercent,
		HasProfileImage:         profile.HasProfileImage,
		HasHighlightVideo:       profile.HasHighlightVideo,
		HasPhysicalMeasurements: profile.HasPhysicalMeasurements,
		HasPerformanceMetrics:   profile.HasPerformanceMetrics,
		HasAcademicInfo:         profile.HasAcademicInfo,
		HasContactInfo:          profile.HasContactInfo,
	}, nil
}
