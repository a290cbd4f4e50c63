package catalog

import (
	"time"

	"recruit-timeline.com/recruit-timeline/internal/constants"
)

// DefaultCatalog returns the seeded rule set. Definitions are versioned here,
// out of band from the engine, and are read-only at runtime.
func DefaultCatalog() *Catalog {
	return New(defaultDefinitions(), DefaultSeasonalEvents())
}

func defaultDefinitions() []TaskDefinition {
	return []TaskDefinition{
		{
			Key:              "add_profile_photo",
			Title:            "Add a profile photo",
			Description:      "Upload a clear head shot so coaches can put a face to your name.",
			Rationale:        "Profiles with photos get significantly more coach views.",
			EstimatedMinutes: 3,
			BasePriority:     constants.PriorityHigh,
			Category:         CategoryProfile,
			Triggers: []TriggerCondition{
				{Kind: TriggerFieldMissing, Fields: []string{"profile_image"}},
			},
			BlocksSharing: true,
			IsActive:      true,
		},
		{
			Key:              "add_highlight_video",
			Title:            "Add a highlight video",
			Description:      "Link or upload your best 3-5 minute highlight reel.",
			Rationale:        "Film is the first thing most college coaches ask for.",
			EstimatedMinutes: 20,
			BasePriority:     constants.PriorityHigh,
			Category:         CategoryHighlight,
			Triggers: []TriggerCondition{
				{Kind: TriggerFieldMissing, Fields: []string{"highlight_video"}},
				{Kind: TriggerSeasonalMatch, EventKeys: []string{"football_recruiting_window", "early_signing_period"}},
			},
			BlocksSharing: true,
			IsActive:      true,
		},
		{
			Key:              "add_measurements",
			Title:            "Enter height, weight and wingspan",
			Description:      "Record your current physical measurements.",
			Rationale:        "Coaches filter prospect searches by measurables.",
			EstimatedMinutes: 5,
			BasePriority:     constants.PriorityMedium,
			Category:         CategoryAthletics,
			Triggers: []TriggerCondition{
				{Kind: TriggerFieldMissing, Fields: []string{"physical_measurements"}},
			},
			IsActive: true,
		},
		{
			Key:              "add_performance_metrics",
			Title:            "Record verified performance metrics",
			Description:      "Add your 40 time, vertical, bench or sport-specific numbers.",
			Rationale:        "Verified numbers separate you from self-reported prospects.",
			EstimatedMinutes: 10,
			BasePriority:     constants.PriorityMedium,
			Category:         CategoryAthletics,
			Dependencies:     []string{"add_measurements"},
			Triggers: []TriggerCondition{
				{Kind: TriggerFieldMissing, Fields: []string{"performance_metrics"}},
			},
			IsActive: true,
		},
		{
			Key:              "add_academic_info",
			Title:            "Add GPA and test scores",
			Description:      "Enter your GPA, class rank and any SAT/ACT scores.",
			Rationale:        "Academic eligibility is the first cut at most programs.",
			EstimatedMinutes: 5,
			BasePriority:     constants.PriorityHigh,
			Category:         CategoryAcademics,
			Triggers: []TriggerCondition{
				{Kind: TriggerFieldMissing, Fields: []string{"academic_info"}},
				{Kind: TriggerGraduationProximity, YearsThreshold: 2},
			},
			IsActive: true,
		},
		{
			Key:              "add_contact_info",
			Title:            "Complete your contact details",
			Description:      "Add a phone number, email and your coach's contact.",
			Rationale:        "A shareable profile needs a way for recruiters to reach you.",
			EstimatedMinutes: 3,
			BasePriority:     constants.PriorityCritical,
			Category:         CategoryContact,
			Triggers: []TriggerCondition{
				{Kind: TriggerFieldMissing, Fields: []string{"contact_info"}},
			},
			BlocksSharing: true,
			IsActive:      true,
		},
		{
			Key:              "draft_coach_outreach",
			Title:            "Draft your first coach outreach email",
			Description:      "Write a short introduction email to send to target programs.",
			Rationale:        "Athletes who reach out directly are recruited earlier.",
			EstimatedMinutes: 15,
			BasePriority:     constants.PriorityMedium,
			Category:         CategoryContact,
			Dependencies:     []string{"add_contact_info", "add_highlight_video"},
			Triggers: []TriggerCondition{
				{Kind: TriggerCompletionAtLeast, Threshold: 60},
				{Kind: TriggerSeasonalMatch, EventKeys: []string{"contact_period"}},
			},
			ApplicableRoles: []string{"high_school", "juco"},
			IsActive:        true,
		},
		{
			Key:              "upload_transcript",
			Title:            "Upload your transcript",
			Description:      "Add an up-to-date transcript for compliance review.",
			Rationale:        "Programs cannot extend offers without eligibility paperwork.",
			EstimatedMinutes: 5,
			BasePriority:     constants.PriorityMedium,
			Category:         CategoryAcademics,
			Dependencies:     []string{"add_academic_info"},
			Triggers: []TriggerCondition{
				{Kind: TriggerGraduationProximity, YearsThreshold: 1},
			},
			ApplicableRoles: []string{"high_school", "juco"},
			IsActive:        true,
		},
		{
			Key:              "register_for_camp",
			Title:            "Register for a summer camp",
			Description:      "Pick at least one camp or combine in front of college staff.",
			Rationale:        "Camps are where borderline film gets a second look.",
			EstimatedMinutes: 15,
			BasePriority:     constants.PriorityLow,
			Category:         CategoryAthletics,
			Triggers: []TriggerCondition{
				{Kind: TriggerSeasonalMatch, EventKeys: []string{"camp_registration_window"}},
			},
			ApplicableSports: []string{"football", "basketball"},
			ApplicableRoles:  []string{"high_school"},
			IsActive:         true,
		},
		{
			Key:              "reengage_profile",
			Title:            "Pick up where you left off",
			Description:      "Spend five minutes updating whatever changed this season.",
			Rationale:        "Stale profiles drop out of coach search results.",
			EstimatedMinutes: 5,
			BasePriority:     constants.PriorityLow,
			Category:         CategoryProfile,
			Triggers: []TriggerCondition{
				{Kind: TriggerEngagementLevel, Levels: []constants.EngagementTier{constants.EngagementLow}},
			},
			IsActive: true,
		},
		{
			Key:              "share_profile",
			Title:            "Share your profile with a coach",
			Description:      "Send your public profile link to at least one recruiter.",
			Rationale:        "A complete profile nobody sees recruits nobody.",
			EstimatedMinutes: 2,
			BasePriority:     constants.PriorityMedium,
			Category:         CategoryContact,
			Triggers: []TriggerCondition{
				{Kind: TriggerCompletionAtLeast, Threshold: 80},
			},
			IsActive: true,
		},
	}
}

// DefaultSeasonalEvents seeds the recurring recruiting calendar. Windows are
// month/day pairs and may wrap the year boundary.
func DefaultSeasonalEvents() []SeasonalEvent {
	return []SeasonalEvent{
		{Key: "early_signing_period", Sport: "football", StartMonth: time.December, StartDay: 18, EndMonth: time.December, EndDay: 20},
		{Key: "football_recruiting_window", Sport: "football", StartMonth: time.December, StartDay: 1, EndMonth: time.February, EndDay: 7},
		{Key: "contact_period", Sport: "", StartMonth: time.January, StartDay: 15, EndMonth: time.February, EndDay: 28},
		{Key: "camp_registration_window", Sport: "", StartMonth: time.April, StartDay: 1, EndMonth: time.June, EndDay: 15},
		{Key: "basketball_signing_period", Sport: "basketball", StartMonth: time.November, StartDay: 8, EndMonth: time.November, EndDay: 15},
	}
}
