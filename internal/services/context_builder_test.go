package services

import (
	"testing"
	"time"

	"recruit-timeline.com/recruit-timeline/internal/catalog"
	"recruit-timeline.com/recruit-timeline/internal/constants"
)

func TestBuildContext_SeasonMapping(t *testing.T) {
	cases := []struct {
		month time.Month
		want  constants.Season
	}{
		{time.January, constants.SeasonRecruiting},
		{time.February, constants.SeasonRecruiting},
		{time.December, constants.SeasonRecruiting},
		{time.June, constants.SeasonCamp},
		{time.August, constants.SeasonCamp},
		{time.April, constants.SeasonPlay},
		{time.October, constants.SeasonPlay},
	}

	for _, tc := range cases {
		now := time.Date(2026, tc.month, 10, 12, 0, 0, 0, time.UTC)
		tctx := BuildContext(now, "football", nil, 0, 0)
		if tctx.CurrentSeason != tc.want {
			t.Errorf("%s: expected season %s, got %s", tc.month, tc.want, tctx.CurrentSeason)
		}
	}
}

func TestBuildContext_EngagementTiers(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		recent7  int
		recent30 int
		want     constants.EngagementTier
	}{
		{8, 8, constants.EngagementHigh},
		{20, 20, constants.EngagementHigh},
		{7, 7, constants.EngagementMedium},
		{0, 1, constants.EngagementMedium},
		{0, 0, constants.EngagementLow},
	}

	for _, tc := range cases {
		tctx := BuildContext(now, "football", nil, tc.recent7, tc.recent30)
		if tctx.Engagement != tc.want {
			t.Errorf("recent7=%d recent30=%d: expected %s, got %s", tc.recent7, tc.recent30, tc.want, tctx.Engagement)
		}
	}
}

func TestBuildContext_ActiveEvents(t *testing.T) {
	events := []catalog.SeasonalEvent{
		{Key: "early_signing", Sport: "football", StartMonth: time.December, StartDay: 18, EndMonth: time.December, EndDay: 20},
	}

	inside := time.Date(2025, time.December, 19, 0, 0, 0, 0, time.UTC)
	tctx := BuildContext(inside, "football", events, 0, 0)
	if !tctx.HasActiveEvent("early_signing") {
		t.Error("expected early_signing active on Dec 19")
	}

	outside := time.Date(2026, time.March, 19, 0, 0, 0, 0, time.UTC)
	tctx = BuildContext(outside, "football", events, 0, 0)
	if tctx.HasActiveEvent("early_signing") {
		t.Error("expected early_signing inactive in March")
	}

	if tctx.CurrentYear != 2026 {
		t.Errorf("expected current year 2026, got %d", tctx.CurrentYear)
	}
}
