package services

import (
	"context"

	"github.com/google/uuid"

	apperrors "recruit-timeline.com/recruit-timeline/internal/errors"
	model "recruit-timeline.com/recruit-timeline/internal/models"
)

// TrackProgressEvent appends one row to the audit trail and bumps the active
// timeline's last-activity stamp. The trail is append-only; nothing here
// updates or deletes prior rows.
func (s *TimelineService) TrackProgressEvent(ctx context.Context, userID, eventType, data string, taskInstanceID *string) error {
	if userID == "" {
		return apperrors.ErrUserIDRequired
	}
	if eventType == "" {
		return apperrors.ErrEventTypeRequired
	}

	now := s.clock.Now()
	event := &model.ProgressEvent{
		ID:             uuid.NewString(),
		UserID:         userID,
		EventType:      eventType,
		Data:           data,
		TaskInstanceID: taskInstanceID,
		CreatedAt:      now,
	}

	if err := s.store.InsertProgressEvent(ctx, event); err != nil {
		return err
	}
	return s.store.TouchActivity(ctx, userID, now)
}

// GetTimeline is the read path: the active timeline and its instances in
// display order, without regenerating anything.
func (s *TimelineService) GetTimeline(ctx context.Context, userID string) (*model.UserTimeline, []model.TaskInstance, error) {
	if userID == "" {
		return nil, nil, apperrors.ErrUserIDRequired
	}

	timeline, err := s.store.GetActiveTimeline(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if timeline == nil {
		return nil, nil, apperrors.ErrTimelineNotFound
	}

	instances, err := s.store.ListInstances(ctx, timeline.ID)
	if err != nil {
		return nil, nil, err
	}

	return timeline, OrderInstances(instances), nil
}

// ListNotifications exposes the scheduled nudges for the host delivery layer.
func (s *TimelineService) ListNotifications(ctx context.Context, userID string) ([]model.Notification, error) {
	if userID == "" {
		return nil, apperrors.ErrUserIDRequired
	}
	return s.store.ListNotifications(ctx, userID)
}
