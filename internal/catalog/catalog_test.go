package catalog

import (
	"testing"
	"time"

	"recruit-timeline.com/recruit-timeline/internal/constants"
)

func TestListApplicable_FiltersSportRoleAndActive(t *testing.T) {
	defs := []TaskDefinition{
		{Key: "everyone", IsActive: true},
		{Key: "football_only", IsActive: true, ApplicableSports: []string{"football"}},
		{Key: "hs_only", IsActive: true, ApplicableRoles: []string{"high_school"}},
		{Key: "retired", IsActive: false},
	}
	c := New(defs, nil)

	got := c.ListApplicable("football", "high_school")
	if len(got) != 3 {
		t.Fatalf("expected 3 applicable definitions, got %d", len(got))
	}

	got = c.ListApplicable("soccer", "transfer")
	if len(got) != 1 || got[0].Key != "everyone" {
		t.Fatalf("expected only the unrestricted definition, got %v", got)
	}
}

func TestListApplicable_EmptyResultIsValid(t *testing.T) {
	c := New([]TaskDefinition{
		{Key: "football_only", IsActive: true, ApplicableSports: []string{"football"}},
	}, nil)

	if got := c.ListApplicable("swimming", "high_school"); len(got) != 0 {
		t.Fatalf("expected no applicable definitions, got %v", got)
	}
}

func TestValidate_RejectsMalformedTriggers(t *testing.T) {
	cases := []struct {
		name string
		def  TaskDefinition
	}{
		{"empty key", TaskDefinition{}},
		{"unknown kind", TaskDefinition{Key: "x", Triggers: []TriggerCondition{{Kind: "frobnicate"}}}},
		{"field_missing without fields", TaskDefinition{Key: "x", Triggers: []TriggerCondition{{Kind: TriggerFieldMissing}}}},
		{"seasonal without keys", TaskDefinition{Key: "x", Triggers: []TriggerCondition{{Kind: TriggerSeasonalMatch}}}},
		{"engagement without levels", TaskDefinition{Key: "x", Triggers: []TriggerCondition{{Kind: TriggerEngagementLevel}}}},
		{"completion out of range", TaskDefinition{Key: "x", Triggers: []TriggerCondition{{Kind: TriggerCompletionAtLeast, Threshold: 150}}}},
		{"negative graduation threshold", TaskDefinition{Key: "x", Triggers: []TriggerCondition{{Kind: TriggerGraduationProximity, YearsThreshold: -1}}}},
	}

	for _, tc := range cases {
		if err := tc.def.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidate_NoTriggersIsValid(t *testing.T) {
	def := TaskDefinition{Key: "quiet", IsActive: true}
	if err := def.Validate(); err != nil {
		t.Fatalf("definition without triggers should be valid: %v", err)
	}
}

func TestSeasonalEvent_ActiveOn(t *testing.T) {
	window := SeasonalEvent{
		Key:        "contact_period",
		StartMonth: time.January, StartDay: 15,
		EndMonth: time.February, EndDay: 28,
	}

	if !window.ActiveOn(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected Feb 1 inside the window")
	}
	if window.ActiveOn(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected Mar 1 outside the window")
	}
	if !window.ActiveOn(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("window start day should be inclusive")
	}
}

func TestSeasonalEvent_ActiveOn_WrapsYearBoundary(t *testing.T) {
	window := SeasonalEvent{
		Key:        "recruiting_window",
		StartMonth: time.December, StartDay: 1,
		EndMonth: time.February, EndDay: 7,
	}

	for _, d := range []time.Time{
		time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 7, 0, 0, 0, 0, time.UTC),
	} {
		if !window.ActiveOn(d) {
			t.Errorf("expected %s inside the wrapped window", d.Format("Jan 2"))
		}
	}
	if window.ActiveOn(time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected Jul 4 outside the wrapped window")
	}
}

func TestActiveEventKeys_RespectsSportTag(t *testing.T) {
	events := []SeasonalEvent{
		{Key: "football_window", Sport: "football", StartMonth: time.December, StartDay: 1, EndMonth: time.February, EndDay: 7},
		{Key: "open_window", Sport: "", StartMonth: time.December, StartDay: 1, EndMonth: time.February, EndDay: 7},
	}
	at := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	keys := ActiveEventKeys(events, "basketball", at)
	if len(keys) != 1 || keys[0] != "open_window" {
		t.Fatalf("expected only the untagged event for basketball, got %v", keys)
	}

	keys = ActiveEventKeys(events, "football", at)
	if len(keys) != 2 {
		t.Fatalf("expected both events for football, got %v", keys)
	}
}

func TestDefaultCatalog_SeedValidates(t *testing.T) {
	c := DefaultCatalog()
	for _, def := range c.ListApplicable("football", "high_school") {
		if err := def.Validate(); err != nil {
			t.Errorf("seed definition %s is malformed: %v", def.Key, err)
		}
		if def.BasePriority.Rank() < constants.PriorityLow.Rank() {
			t.Errorf("seed definition %s has no base priority", def.Key)
		}
	}
}
