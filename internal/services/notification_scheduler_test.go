package services_test

import (
	"context"
	"testing"
	"time"

	"recruit-timeline.com/recruit-timeline/internal/catalog"
	"recruit-timeline.com/recruit-timeline/internal/constants"
	model "recruit-timeline.com/recruit-timeline/internal/models"
)

func TestGenerate_SchedulesSingleNudge(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db, footballProspect("user-1"))
	service := newService(db, catalog.DefaultCatalog())
	ctx := context.Background()

	result, err := service.GenerateUserTimeline(ctx, "user-1")
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	notifications, err := service.ListNotifications(ctx, "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected exactly one nudge per generation cycle, got %d", len(notifications))
	}

	nudge := notifications[0]

	// The target is the top-ordered pending high/critical instance.
	var top *model.TaskInstance
	for i := range result.OrderedTasks {
		inst := &result.OrderedTasks[i]
		if inst.Status == constants.StatusPending && inst.Priority.Rank() >= constants.PriorityHigh.Rank() {
			top = inst
			break
		}
	}
	if top == nil {
		t.Fatal("fixture should produce at least one high-priority pending task")
	}
	if nudge.TaskInstanceID == nil || *nudge.TaskInstanceID != top.ID {
		t.Errorf("nudge targets %v, expected %s", nudge.TaskInstanceID, top.ID)
	}

	if top.Priority == constants.PriorityCritical && nudge.Priority != 8 {
		t.Errorf("expected notification priority 8 for a critical task, got %d", nudge.Priority)
	}

	// A brand-new user has no recent events, so engagement is low: 72h delay.
	wantAt := testNow.Add(72 * time.Hour)
	if !nudge.ScheduledFor.Equal(wantAt) {
		t.Errorf("expected nudge at %s, got %s", wantAt, nudge.ScheduledFor)
	}
}

func TestGenerate_NudgeDelayFollowsEngagement(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db, footballProspect("user-1"))
	service := newService(db, catalog.DefaultCatalog())
	ctx := context.Background()

	// Enough recent activity to classify as highly engaged.
	for i := 0; i < 8; i++ {
		if err := service.TrackProgressEvent(ctx, "user-1", constants.EventFieldUpdated, "", nil); err != nil {
			t.Fatalf("track failed: %v", err)
		}
	}

	if _, err := service.GenerateUserTimeline(ctx, "user-1"); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	notifications, err := service.ListNotifications(ctx, "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected one nudge, got %d", len(notifications))
	}

	wantAt := testNow.Add(4 * time.Hour)
	if !notifications[0].ScheduledFor.Equal(wantAt) {
		t.Errorf("expected 4h delay for high engagement, got %s", notifications[0].ScheduledFor)
	}
}

func TestGenerate_NoNudgeWithoutQualifyingTasks(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db, footballProspect("user-1"))

	lowStakes := catalog.New([]catalog.TaskDefinition{
		{
			Key:          "add_measurements",
			BasePriority: constants.PriorityMedium,
			Triggers: []catalog.TriggerCondition{
				{Kind: catalog.TriggerFieldMissing, Fields: []string{"physical_measurements"}},
			},
			IsActive: true,
		},
	}, nil)

	service := newService(db, lowStakes)
	ctx := context.Background()

	if _, err := service.GenerateUserTimeline(ctx, "user-1"); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	notifications, err := service.ListNotifications(ctx, "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(notifications) != 0 {
		t.Fatalf("expected no nudge for medium-priority work, got %d", len(notifications))
	}
}
