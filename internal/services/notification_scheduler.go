package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"recruit-timeline.com/recruit-timeline/internal/catalog"
	"recruit-timeline.com/recruit-timeline/internal/constants"
	model "recruit-timeline.com/recruit-timeline/internal/models"
)

// Nudge delay per engagement tier. Highly engaged users get nudged while the
// session is still warm; lapsed users get a long runway.
const (
	delayHighEngagement   = 4 * time.Hour
	delayMediumEngagement = 24 * time.Hour
	delayLowEngagement    = 72 * time.Hour
)

const (
	notifyPriorityCritical = 8
	notifyPriorityDefault  = 6
)

// NotificationScheduler picks the single most urgent pending task and
// schedules one delayed nudge for it. At most one notification is written per
// generation cycle; delivery belongs to the host system.
type NotificationScheduler struct {
	catalog *catalog.Catalog
}

func NewNotificationScheduler(cat *catalog.Catalog) *NotificationScheduler {
	return &NotificationScheduler{catalog: cat}
}

// Schedule expects tasks already in display order. It returns (nil, nil) when
// no pending high or critical task exists.
func (n *NotificationScheduler) Schedule(
	ctx context.Context,
	store TimelineStore,
	userID string,
	ordered []model.TaskInstance,
	tctx TimelineContext,
) (*model.Notification, error) {
	target := topQualifying(ordered)
	if target == nil {
		return nil, nil
	}

	message := fmt.Sprintf("Next up: %s", target.TaskKey)
	if def, ok := n.catalog.Lookup(target.TaskKey); ok {
		message = fmt.Sprintf("Next up: %s", def.Title)
	}

	priority := notifyPriorityDefault
	if target.Priority == constants.PriorityCritical {
		priority = notifyPriorityCritical
	}

	notification := &model.Notification{
		ID:             uuid.NewString(),
		UserID:         userID,
		TaskInstanceID: &target.ID,
		Message:        message,
		Priority:       priority,
		ScheduledFor:   tctx.Now.Add(delayFor(tctx.Engagement)),
		CreatedAt:      tctx.Now,
	}

	if err := store.InsertNotification(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func topQualifying(ordered []model.TaskInstance) *model.TaskInstance {
	for i := range ordered {
		inst := &ordered[i]
		if inst.Status != constants.StatusPending {
			continue
		}
		if inst.Priority.Rank() < constants.PriorityHigh.Rank() {
			continue
		}
		return inst
	}
	return nil
}

func delayFor(tier constants.EngagementTier) time.Duration {
	switch tier {
	case constants.EngagementHigh:
		return delayHighEngagement
	case constants.EngagementLow:
		return delayLowEngagement
	default:
		return delayMediumEngagement
	}
}
