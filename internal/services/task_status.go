package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"recruit-timeline.com/recruit-timeline/internal/constants"
	apperrors "recruit-timeline.com/recruit-timeline/internal/errors"
	model "recruit-timeline.com/recruit-timeline/internal/models"
)

// Legal task status transitions. complete and skipped are terminal; blocked
// is entered and left only through this external path, never by generation.
var statusTransitions = map[constants.TaskStatus][]constants.TaskStatus{
	constants.StatusPending:    {constants.StatusInProgress, constants.StatusSkipped, constants.StatusBlocked},
	constants.StatusInProgress: {constants.StatusComplete, constants.StatusSkipped},
	constants.StatusBlocked:    {constants.StatusPending},
}

func canTransition(from, to constants.TaskStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateTaskStatus moves an instance through its lifecycle, stamps the
// started/completed times, refreshes the owning timeline's derived metadata
// and re-checks milestones when the move lands on complete.
func (s *TimelineService) UpdateTaskStatus(ctx context.Context, instanceID string, next constants.TaskStatus) (*model.TaskInstance, error) {
	now := s.clock.Now()

	var updated *model.TaskInstance
	err := s.store.InTransaction(ctx, func(store TimelineStore) error {
		instance, err := store.GetInstance(ctx, instanceID)
		if err != nil {
			return err
		}

		if !canTransition(instance.Status, next) {
			return apperrors.ErrInvalidStatusTransition
		}

		instance.Status = next
		switch next {
		case constants.StatusInProgress:
			instance.StartedAt = &now
		case constants.StatusComplete:
			instance.CompletedAt = &now
		}

		if err := store.UpdateInstanceStatus(ctx, instance); err != nil {
			return err
		}

		timeline, userID, err := s.ownerOf(ctx, store, instance)
		if err != nil {
			return err
		}

		if err := s.recomputeAfterStatusChange(ctx, store, timeline); err != nil {
			return err
		}

		if err := s.appendStatusEvent(ctx, store, userID, instance, now); err != nil {
			return err
		}

		if next == constants.StatusComplete {
			completed, err := store.CountCompletedInstances(ctx, userID)
			if err != nil {
				return err
			}
			if err := s.awarder.CheckAndAward(ctx, store, userID, completed, now); err != nil {
				return err
			}
		}

		updated = instance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *TimelineService) ownerOf(ctx context.Context, store TimelineStore, instance *model.TaskInstance) (*model.UserTimeline, string, error) {
	timeline, err := store.GetTimeline(ctx, instance.TimelineID)
	if err != nil {
		return nil, "", err
	}
	return timeline, timeline.UserID, nil
}

// recomputeAfterStatusChange re-derives completion and blocking without
// creating instances; the generation version is untouched here.
func (s *TimelineService) recomputeAfterStatusChange(ctx context.Context, store TimelineStore, timeline *model.UserTimeline) error {
	instances, err := store.ListInstances(ctx, timeline.ID)
	if err != nil {
		return err
	}

	timeline.CompletionPercentage = completionPercentage(countCompleted(instances), len(instances))
	timeline.HasBlockingTasks = hasBlockingTasks(instances)
	if next := phaseFor(len(instances), timeline.CompletionPercentage); next.Rank() > timeline.CurrentPhase.Rank() {
		timeline.CurrentPhase = next
	}

	return store.UpdateTimelineMetadata(ctx, timeline)
}

func (s *TimelineService) appendStatusEvent(ctx context.Context, store TimelineStore, userID string, instance *model.TaskInstance, now time.Time) error {
	eventType, ok := statusEventTypes[instance.Status]
	if !ok {
		return nil
	}

	event := &model.ProgressEvent{
		ID:             uuid.NewString(),
		UserID:         userID,
		EventType:      eventType,
		Data:           instance.TaskKey,
		TaskInstanceID: &instance.ID,
		CreatedAt:      now,
	}
	if err := store.InsertProgressEvent(ctx, event); err != nil {
		return err
	}
	return store.TouchActivity(ctx, userID, now)
}

var statusEventTypes = map[constants.TaskStatus]string{
	constants.StatusInProgress: constants.EventTaskStarted,
	constants.StatusComplete:   constants.EventTaskCompleted,
	constants.StatusSkipped:    constants.EventTaskSkipped,
}
