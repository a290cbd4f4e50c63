package services

import (
	"context"
	"time"

	model "recruit-timeline.com/recruit-timeline/internal/models"
)

// TimelineStore is the persistence boundary for everything the engine reads
// and writes. GetActiveTimeline returns (nil, nil) when the user has no
// active timeline yet. InsertInstance returns ErrDuplicateInstance when the
// (timeline, task key) pair already exists, which the unique index enforces
// even under concurrent regeneration.
type TimelineStore interface {
	GetActiveTimeline(ctx context.Context, userID string) (*model.UserTimeline, error)
	GetTimeline(ctx context.Context, timelineID string) (*model.UserTimeline, error)
	CreateTimeline(ctx context.Context, timeline *model.UserTimeline) error
	UpdateTimelineMetadata(ctx context.Context, timeline *model.UserTimeline) error

	ListInstances(ctx context.Context, timelineID string) ([]model.TaskInstance, error)
	GetInstance(ctx context.Context, id string) (*model.TaskInstance, error)
	InsertInstance(ctx context.Context, instance *model.TaskInstance) error
	UpdateInstanceStatus(ctx context.Context, instance *model.TaskInstance) error

	InsertNotification(ctx context.Context, notification *model.Notification) error
	ListNotifications(ctx context.Context, userID string) ([]model.Notification, error)

	AwardAchievementIfAbsent(ctx context.Context, userID, key string, at time.Time) (bool, error)

	InsertProgressEvent(ctx context.Context, event *model.ProgressEvent) error
	CountEventsSince(ctx context.Context, userID string, since time.Time) (int, error)
	CountCompletedInstances(ctx context.Context, userID string) (int, error)
	TouchActivity(ctx context.Context, userID string, at time.Time) error

	// InTransaction runs fn against a store bound to one transaction; any
	// error rolls the whole write sequence back.
	InTransaction(ctx context.Context, fn func(TimelineStore) error) error
}
