package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"recruit-timeline.com/recruit-timeline/internal/constants"
	apperrors "recruit-timeline.com/recruit-timeline/internal/errors"
	model "recruit-timeline.com/recruit-timeline/internal/models"
	"recruit-timeline.com/recruit-timeline/internal/services"
)

// TimelineRepository implements services.TimelineStore on gorm. The unique
// index on (timeline_id, task_key) is the mechanism that makes concurrent
// regeneration safe; a violated insert surfaces as ErrDuplicateInstance.
type TimelineRepository struct {
	db *gorm.DB
}

func NewTimelineRepository(db *gorm.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

var _ services.TimelineStore = (*TimelineRepository)(nil)

func (r *TimelineRepository) GetActiveTimeline(ctx context.Context, userID string) (*model.UserTimeline, error) {
	var timeline model.UserTimeline
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&timeline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &timeline, nil
}

func (r *TimelineRepository) GetTimeline(ctx context.Context, timelineID string) (*model.UserTimeline, error) {
	var timeline model.UserTimeline
	err := r.db.WithContext(ctx).First(&timeline, "id = ?", timelineID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTimelineNotFound
		}
		return nil, err
	}
	return &timeline, nil
}

func (r *TimelineRepository) CreateTimeline(ctx context.Context, timeline *model.UserTimeline) error {
	return r.db.WithContext(ctx).Create(timeline).Error
}

func (r *TimelineRepository) UpdateTimelineMetadata(ctx context.Context, timeline *model.UserTimeline) error {
	return r.db.WithContext(ctx).Model(&model.UserTimeline{}).
		Where("id = ?", timeline.ID).
		Updates(map[string]interface{}{
			"current_phase":         timeline.CurrentPhase,
			"completion_percentage": timeline.CompletionPercentage,
			"has_blocking_tasks":    timeline.HasBlockingTasks,
			"generation_version":    timeline.GenerationVersion,
		}).Error
}

func (r *TimelineRepository) ListInstances(ctx context.Context, timelineID string) ([]model.TaskInstance, error) {
	var instances []model.TaskInstance
	err := r.db.WithContext(ctx).
		Where("timeline_id = ?", timelineID).
		Order("created_at asc").
		Find(&instances).Error
	return instances, err
}

func (r *TimelineRepository) GetInstance(ctx context.Context, id string) (*model.TaskInstance, error) {
	var instance model.TaskInstance
	err := r.db.WithContext(ctx).First(&instance, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstanceNotFound
		}
		return nil, err
	}
	return &instance, nil
}

func (r *TimelineRepository) InsertInstance(ctx context.Context, instance *model.TaskInstance) error {
	err := r.db.WithContext(ctx).Create(instance).Error
	if err != nil && isUniqueViolation(err) {
		return apperrors.ErrDuplicateInstance
	}
	return err
}

func (r *TimelineRepository) UpdateInstanceStatus(ctx context.Context, instance *model.TaskInstance) error {
	return r.db.WithContext(ctx).Model(&model.TaskInstance{}).
		Where("id = ?", instance.ID).
		Updates(map[string]interface{}{
			"status":       instance.Status,
			"started_at":   instance.StartedAt,
			"completed_at": instance.CompletedAt,
		}).Error
}

func (r *TimelineRepository) InsertNotification(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *TimelineRepository) ListNotifications(ctx context.Context, userID string) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_for asc").
		Find(&notifications).Error
	return notifications, err
}

// AwardAchievementIfAbsent inserts the award unless the (user, key) pair
// already exists. Returns whether a row was created.
func (r *TimelineRepository) AwardAchievementIfAbsent(ctx context.Context, userID, key string, at time.Time) (bool, error) {
	achievement := &model.Achievement{
		ID:        uuid.NewString(),
		UserID:    userID,
		Key:       key,
		AwardedAt: at,
	}

	err := r.db.WithContext(ctx).Create(achievement).Error
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *TimelineRepository) InsertProgressEvent(ctx context.Context, event *model.ProgressEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *TimelineRepository) CountEventsSince(ctx context.Context, userID string, since time.Time) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProgressEvent{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return int(count), err
}

func (r *TimelineRepository) CountCompletedInstances(ctx context.Context, userID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TaskInstance{}).
		Joins("JOIN user_timelines ON user_timelines.id = task_instances.timeline_id").
		Where("user_timelines.user_id = ? AND task_instances.status = ?", userID, constants.StatusComplete).
		Count(&count).Error
	return int(count), err
}

func (r *TimelineRepository) TouchActivity(ctx context.Context, userID string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.UserTimeline{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("last_activity_at", at).Error
}

func (r *TimelineRepository) InTransaction(ctx context.Context, fn func(services.TimelineStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&TimelineRepository{db: tx})
	})
}

// isUniqueViolation matches sqlite's constraint error text; gorm has no
// portable sentinel for it.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
