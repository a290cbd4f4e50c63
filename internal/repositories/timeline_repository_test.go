package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recruit-timeline.com/recruit-timeline/internal/constants"
	apperrors "recruit-timeline.com/recruit-timeline/internal/errors"
	model "recruit-timeline.com/recruit-timeline/internal/models"
	"recruit-timeline.com/recruit-timeline/internal/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserTimeline{},
		&model.TaskInstance{},
		&model.ProgressEvent{},
		&model.Notification{},
		&model.Achievement{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func newTimeline(userID string) *model.UserTimeline {
	return &model.UserTimeline{
		ID:           uuid.NewString(),
		UserID:       userID,
		CurrentPhase: constants.PhaseOnboarding,
		Sport:        "football",
		IsActive:     true,
	}
}

func TestInsertInstance_UniquePerDefinition(t *testing.T) {
	repo := NewTimelineRepository(setupTestDB(t))
	ctx := context.Background()

	timeline := newTimeline("user-1")
	if err := repo.CreateTimeline(ctx, timeline); err != nil {
		t.Fatalf("create timeline failed: %v", err)
	}

	first := &model.TaskInstance{
		ID:         uuid.NewString(),
		TimelineID: timeline.ID,
		TaskKey:    "add_highlight_video",
		Status:     constants.StatusPending,
		Priority:   constants.PriorityHigh,
	}
	if err := repo.InsertInstance(ctx, first); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	duplicate := &model.TaskInstance{
		ID:         uuid.NewString(),
		TimelineID: timeline.ID,
		TaskKey:    "add_highlight_video",
		Status:     constants.StatusPending,
		Priority:   constants.PriorityHigh,
	}
	if err := repo.InsertInstance(ctx, duplicate); err != apperrors.ErrDuplicateInstance {
		t.Fatalf("expected ErrDuplicateInstance, got %v", err)
	}

	// The same key on another timeline is a different pair and must insert.
	other := newTimeline("user-2")
	if err := repo.CreateTimeline(ctx, other); err != nil {
		t.Fatalf("create timeline failed: %v", err)
	}
	onOther := &model.TaskInstance{
		ID:         uuid.NewString(),
		TimelineID: other.ID,
		TaskKey:    "add_highlight_video",
		Status:     constants.StatusPending,
		Priority:   constants.PriorityHigh,
	}
	if err := repo.InsertInstance(ctx, onOther); err != nil {
		t.Fatalf("insert on another timeline failed: %v", err)
	}
}

func TestGetActiveTimeline_NoneIsNotAnError(t *testing.T) {
	repo := NewTimelineRepository(setupTestDB(t))

	timeline, err := repo.GetActiveTimeline(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("expected nil error for a missing timeline, got %v", err)
	}
	if timeline != nil {
		t.Fatalf("expected nil timeline, got %+v", timeline)
	}
}

func TestAwardAchievementIfAbsent(t *testing.T) {
	repo := NewTimelineRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	created, err := repo.AwardAchievementIfAbsent(ctx, "user-1", model.AchievementFirstTaskComplete, now)
	if err != nil {
		t.Fatalf("first award failed: %v", err)
	}
	if !created {
		t.Fatal("expected the first award to insert")
	}

	created, err = repo.AwardAchievementIfAbsent(ctx, "user-1", model.AchievementFirstTaskComplete, now)
	if err != nil {
		t.Fatalf("repeat award failed: %v", err)
	}
	if created {
		t.Fatal("expected the repeat award to be a no-op")
	}

	// A different key for the same user still inserts.
	created, err = repo.AwardAchievementIfAbsent(ctx, "user-1", model.AchievementTaskStreak5, now)
	if err != nil || !created {
		t.Fatalf("expected a distinct key to insert, created=%v err=%v", created, err)
	}
}

func TestCountEventsSince(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimelineRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	for _, age := range []time.Duration{time.Hour, 48 * time.Hour, 40 * 24 * time.Hour} {
		event := &model.ProgressEvent{
			ID:        uuid.NewString(),
			UserID:    "user-1",
			EventType: constants.EventFieldUpdated,
			CreatedAt: now.Add(-age),
		}
		if err := repo.InsertProgressEvent(ctx, event); err != nil {
			t.Fatalf("insert event failed: %v", err)
		}
	}

	count, err := repo.CountEventsSince(ctx, "user-1", now.Add(-7*24*time.Hour))
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 events in the last week, got %d", count)
	}
}

func TestInTransaction_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimelineRepository(db)
	ctx := context.Background()

	timeline := newTimeline("user-1")
	err := repo.InTransaction(ctx, func(store services.TimelineStore) error {
		if err := store.CreateTimeline(ctx, timeline); err != nil {
			return err
		}
		return apperrors.ErrDuplicateInstance
	})
	if err == nil {
		t.Fatal("expected the transaction error to propagate")
	}

	var count int64
	if err := db.Model(&model.UserTimeline{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to remove the timeline, found %d rows", count)
	}
}
