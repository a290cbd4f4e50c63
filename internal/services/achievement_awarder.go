package services

import (
	"context"
	"time"

	model "recruit-timeline.com/recruit-timeline/internal/models"
)

const streakThreshold = 5

// AchievementAwarder emits one-time milestone awards. Both checks run every
// invocation; the store's insert-if-absent keeps repeats from creating a
// second copy.
type AchievementAwarder struct{}

func NewAchievementAwarder() *AchievementAwarder {
	return &AchievementAwarder{}
}

func (a *AchievementAwarder) CheckAndAward(
	ctx context.Context,
	store TimelineStore,
	userID string,
	completedCount int,
	now time.Time,
) error {
	if completedCount == 1 {
		if _, err := store.AwardAchievementIfAbsent(ctx, userID, model.AchievementFirstTaskComplete, now); err != nil {
			return err
		}
	}
	if completedCount >= streakThreshold {
		if _, err := store.AwardAchievementIfAbsent(ctx, userID, model.AchievementTaskStreak5, now); err != nil {
			return err
		}
	}
	return nil
}
