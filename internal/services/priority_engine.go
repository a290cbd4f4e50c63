package services

import (
	"recruit-timeline.com/recruit-timeline/internal/catalog"
	"recruit-timeline.com/recruit-timeline/internal/constants"
)

// Base order index per priority band. Lower sorts first.
var orderBase = map[constants.PriorityLevel]int{
	constants.PriorityCritical: 10,
	constants.PriorityHigh:     30,
	constants.PriorityMedium:   50,
	constants.PriorityLow:      70,
}

const (
	quickWinMinutes = 5
	quickWinBonus   = 5
	seasonalBonus   = 10
)

// RankTask converts a triggered definition into a concrete priority level and
// sort position. Boosts are cumulative and clamp at critical; the order index
// is derived from the boosted band and then nudged for quick wins and for
// contact/highlight work during the recruiting season. Pinning stays out of
// the number entirely and is applied at sort time.
func RankTask(def catalog.TaskDefinition, reason catalog.TriggerReason, facts UserProfileFacts, tctx TimelineContext) (constants.PriorityLevel, int) {
	boost := 0
	switch reason.Kind {
	case catalog.TriggerSeasonalMatch:
		boost++
	case catalog.TriggerGraduationProximity:
		if YearsToGraduation(facts, tctx) <= 1 {
			boost += 2
		}
	}
	if def.BlocksSharing {
		boost++
	}

	priority := constants.BoostPriority(def.BasePriority, boost)

	orderIndex := orderBase[priority]
	if def.EstimatedMinutes <= quickWinMinutes {
		orderIndex -= quickWinBonus
	}
	if tctx.CurrentSeason == constants.SeasonRecruiting && isOutreachWork(def.Category) {
		orderIndex -= seasonalBonus
	}

	return priority, orderIndex
}

func isOutreachWork(c catalog.TaskCategory) bool {
	return c == catalog.CategoryContact || c == catalog.CategoryHighlight
}
