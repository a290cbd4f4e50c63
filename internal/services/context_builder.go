package services

import (
	"time"

	"recruit-timeline.com/recruit-timeline/internal/catalog"
	"recruit-timeline.com/recruit-timeline/internal/constants"
)

// TimelineContext is everything date- and activity-derived that trigger and
// priority decisions depend on. It is computed once per generation call.
type TimelineContext struct {
	Now             time.Time
	CurrentYear     int
	CurrentSeason   constants.Season
	ActiveEventKeys []string
	Engagement      constants.EngagementTier
}

// HasActiveEvent reports whether the seasonal event key is currently open.
func (c TimelineContext) HasActiveEvent(key string) bool {
	for _, k := range c.ActiveEventKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Engagement thresholds: what counts as an actively-returning user versus
// one who has gone quiet.
const (
	highEngagementEvents  = 8
	highEngagementWindow  = 7 * 24 * time.Hour
	mediumEngagementLapse = 30 * 24 * time.Hour
)

// BuildContext derives the timeline context from the instant, the user's
// sport and how many progress events they produced recently. Pure; all
// inputs are explicit.
func BuildContext(now time.Time, sport string, events []catalog.SeasonalEvent, recent7, recent30 int) TimelineContext {
	return TimelineContext{
		Now:             now,
		CurrentYear:     now.Year(),
		CurrentSeason:   seasonFor(now.Month()),
		ActiveEventKeys: catalog.ActiveEventKeys(events, sport, now),
		Engagement:      engagementFor(recent7, recent30),
	}
}

// seasonFor maps the month onto the coarse recruiting calendar: the winter
// signing stretch, the summer camp circuit, and in-season play for the rest.
func seasonFor(m time.Month) constants.Season {
	switch m {
	case time.December, time.January, time.February:
		return constants.SeasonRecruiting
	case time.June, time.July, time.August:
		return constants.SeasonCamp
	default:
		return constants.SeasonPlay
	}
}

func engagementFor(recent7, recent30 int) constants.EngagementTier {
	if recent7 >= highEngagementEvents {
		return constants.EngagementHigh
	}
	if recent30 >= 1 {
		return constants.EngagementMedium
	}
	return constants.EngagementLow
}
