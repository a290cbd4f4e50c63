package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"recruit-timeline.com/recruit-timeline/internal/catalog"
	"recruit-timeline.com/recruit-timeline/internal/constants"
	apperrors "recruit-timeline.com/recruit-timeline/internal/errors"
	model "recruit-timeline.com/recruit-timeline/internal/models"
)

// TimelineResult is the output of one generation call.
type TimelineResult struct {
	Timeline     *model.UserTimeline  `json:"timeline"`
	OrderedTasks []model.TaskInstance `json:"ordered_tasks"`
	Context      TimelineContext      `json:"context"`
	GeneratedAt  time.Time            `json:"generated_at"`
}

type TimelineService struct {
	store     TimelineStore
	facts     ProfileFactsProvider
	catalog   *catalog.Catalog
	clock     Clock
	scheduler *NotificationScheduler
	awarder   *AchievementAwarder
}

func NewTimelineService(
	store TimelineStore,
	facts ProfileFactsProvider,
	cat *catalog.Catalog,
	clock Clock,
) *TimelineService {
	return &TimelineService{
		store:     store,
		facts:     facts,
		catalog:   cat,
		clock:     clock,
		scheduler: NewNotificationScheduler(cat),
		awarder:   NewAchievementAwarder(),
	}
}

// GenerateUserTimeline is the engine entry point. It materializes newly
// triggered catalog definitions as pending instances, recomputes timeline
// metadata, schedules at most one nudge and checks completion milestones.
// Re-running it with unchanged facts inserts nothing; only the generation
// version moves.
func (s *TimelineService) GenerateUserTimeline(ctx context.Context, userID string) (*TimelineResult, error) {
	if userID == "" {
		return nil, apperrors.ErrUserIDRequired
	}

	facts, err := s.facts.GetFacts(ctx, userID)
	if err != nil {
		return nil, err
	}

	tctx, err := s.buildContext(ctx, userID, facts.Sport)
	if err != nil {
		return nil, err
	}

	var (
		timeline *model.UserTimeline
		ordered  []model.TaskInstance
	)

	err = s.store.InTransaction(ctx, func(store TimelineStore) error {
		var err error
		timeline, err = s.loadOrCreateTimeline(ctx, store, userID, facts.Sport, tctx.Now)
		if err != nil {
			return err
		}

		instances, err := store.ListInstances(ctx, timeline.ID)
		if err != nil {
			return err
		}

		instances, err = s.materializeTriggered(ctx, store, timeline, *facts, tctx, instances)
		if err != nil {
			return err
		}

		completed := countCompleted(instances)
		if err := s.refreshMetadata(ctx, store, timeline, instances, completed); err != nil {
			return err
		}

		ordered = OrderInstances(instances)

		if _, err := s.scheduler.Schedule(ctx, store, userID, ordered, tctx); err != nil {
			return err
		}

		return s.awarder.CheckAndAward(ctx, store, userID, completed, tctx.Now)
	})
	if err != nil {
		return nil, err
	}

	return &TimelineResult{
		Timeline:     timeline,
		OrderedTasks: ordered,
		Context:      tctx,
		GeneratedAt:  tctx.Now,
	}, nil
}

func (s *TimelineService) buildContext(ctx context.Context, userID, sport string) (TimelineContext, error) {
	now := s.clock.Now()

	recent7, err := s.store.CountEventsSince(ctx, userID, now.Add(-highEngagementWindow))
	if err != nil {
		return TimelineContext{}, err
	}
	recent30, err := s.store.CountEventsSince(ctx, userID, now.Add(-mediumEngagementLapse))
	if err != nil {
		return TimelineContext{}, err
	}

	return BuildContext(now, sport, s.catalog.SeasonalEvents(), recent7, recent30), nil
}

func (s *TimelineService) loadOrCreateTimeline(
	ctx context.Context,
	store TimelineStore,
	userID, sport string,
	now time.Time,
) (*model.UserTimeline, error) {
	timeline, err := store.GetActiveTimeline(ctx, userID)
	if err != nil {
		return nil, err
	}
	if timeline != nil {
		return timeline, nil
	}

	timeline = &model.UserTimeline{
		ID:             uuid.NewString(),
		UserID:         userID,
		CurrentPhase:   constants.PhaseOnboarding,
		Sport:          sport,
		LastActivityAt: now,
		IsActive:       true,
	}
	if err := store.CreateTimeline(ctx, timeline); err != nil {
		return nil, err
	}
	return timeline, nil
}

func (s *TimelineService) materializeTriggered(
	ctx context.Context,
	store TimelineStore,
	timeline *model.UserTimeline,
	facts UserProfileFacts,
	tctx TimelineContext,
	instances []model.TaskInstance,
) ([]model.TaskInstance, error) {
	existing := make(map[string]struct{}, len(instances))
	for _, inst := range instances {
		existing[inst.TaskKey] = struct{}{}
	}

	for _, def := range s.catalog.ListApplicable(facts.Sport, facts.Role) {
		if _, ok := existing[def.Key]; ok {
			continue
		}

		triggered, reason, err := EvaluateTriggers(def, facts, tctx)
		if err != nil {
			// A broken definition must not block the rest of the catalog.
			log.Printf("skipping invalid task definition %s: %v", def.Key, err)
			continue
		}
		if !triggered {
			continue
		}

		priority, orderIndex := RankTask(def, reason, facts, tctx)
		instance := model.TaskInstance{
			ID:            uuid.NewString(),
			TimelineID:    timeline.ID,
			TaskKey:       def.Key,
			Status:        constants.StatusPending,
			Priority:      priority,
			OrderIndex:    orderIndex,
			TriggerKind:   string(reason.Kind),
			TriggerDetail: reason.Detail,
			BlocksSharing: def.BlocksSharing,
			IsVisible:     true,
			CreatedAt:     tctx.Now,
		}

		if err := store.InsertInstance(ctx, &instance); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateInstance) {
				// A concurrent generation got there first; nothing to add.
				continue
			}
			return nil, err
		}
		instances = append(instances, instance)
	}

	return instances, nil
}

func (s *TimelineService) refreshMetadata(
	ctx context.Context,
	store TimelineStore,
	timeline *model.UserTimeline,
	instances []model.TaskInstance,
	completed int,
) error {
	timeline.CompletionPercentage = completionPercentage(completed, len(instances))
	timeline.HasBlockingTasks = hasBlockingTasks(instances)
	timeline.GenerationVersion++

	if next := phaseFor(len(instances), timeline.CompletionPercentage); next.Rank() > timeline.CurrentPhase.Rank() {
		timeline.CurrentPhase = next
	}

	return store.UpdateTimelineMetadata(ctx, timeline)
}

func completionPercentage(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

func hasBlockingTasks(instances []model.TaskInstance) bool {
	for _, inst := range instances {
		if inst.BlocksSharing && inst.Status != constants.StatusComplete {
			return true
		}
	}
	return false
}

func countCompleted(instances []model.TaskInstance) int {
	n := 0
	for _, inst := range instances {
		if inst.Status == constants.StatusComplete {
			n++
		}
	}
	return n
}

// phaseFor derives the candidate phase; the caller only ever moves forward.
// Archiving is an administrative action, never taken here.
func phaseFor(total int, completionPct float64) constants.TimelinePhase {
	switch {
	case total == 0:
		return constants.PhaseOnboarding
	case completionPct < 40:
		return constants.PhaseBuilding
	case completionPct < 100:
		return constants.PhaseActive
	default:
		return constants.PhaseMaintaining
	}
}

// OrderInstances sorts for display: pinned first, then order index ascending,
// with priority rank breaking ties on equal order index.
func OrderInstances(instances []model.TaskInstance) []model.TaskInstance {
	ordered := make([]model.TaskInstance, len(instances))
	copy(ordered, instances)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		if a.OrderIndex != b.OrderIndex {
			return a.OrderIndex < b.OrderIndex
		}
		return a.Priority.Rank() > b.Priority.Rank()
	})

	return ordered
}
