package services

import (
	"fmt"

	"recruit-timeline.com/recruit-timeline/internal/catalog"
)

// EvaluateTriggers decides whether a definition currently applies. Conditions
// are ORed; the first one that matches supplies the recorded reason. A
// definition with no conditions never fires. The error return marks a
// malformed spec; callers skip that definition and keep going.
func EvaluateTriggers(def catalog.TaskDefinition, facts UserProfileFacts, tctx TimelineContext) (bool, catalog.TriggerReason, error) {
	if err := def.Validate(); err != nil {
		return false, catalog.TriggerReason{}, err
	}

	for _, cond := range def.Triggers {
		matched, detail, err := evaluateCondition(cond, facts, tctx)
		if err != nil {
			return false, catalog.TriggerReason{}, fmt.Errorf("definition %s: %w", def.Key, err)
		}
		if matched {
			return true, catalog.TriggerReason{Kind: cond.Kind, Detail: detail}, nil
		}
	}

	return false, catalog.TriggerReason{}, nil
}

func evaluateCondition(cond catalog.TriggerCondition, facts UserProfileFacts, tctx TimelineContext) (bool, string, error) {
	switch cond.Kind {
	case catalog.TriggerFieldMissing:
		for _, field := range cond.Fields {
			present, known := facts.Fact(field)
			if !known {
				return false, "", fmt.Errorf("unknown fact %q in field_missing trigger", field)
			}
			if !present {
				return true, field, nil
			}
		}
		return false, "", nil

	case catalog.TriggerCompletionAtLeast:
		if facts.CompletionPercent >= cond.Threshold {
			return true, fmt.Sprintf("completion %d%% >= %d%%", facts.CompletionPercent, cond.Threshold), nil
		}
		return false, "", nil

	case catalog.TriggerSeasonalMatch:
		for _, key := range cond.EventKeys {
			if tctx.HasActiveEvent(key) {
				return true, key, nil
			}
		}
		return false, "", nil

	case catalog.TriggerGraduationProximity:
		if facts.GraduationYear == 0 {
			return false, "", nil
		}
		remaining := facts.GraduationYear - tctx.CurrentYear
		if remaining <= cond.YearsThreshold {
			return true, fmt.Sprintf("%d year(s) to graduation", remaining), nil
		}
		return false, "", nil

	case catalog.TriggerEngagementLevel:
		for _, level := range cond.Levels {
			if level == tctx.Engagement {
				return true, string(level), nil
			}
		}
		return false, "", nil

	default:
		return false, "", fmt.Errorf("unknown trigger kind %q", cond.Kind)
	}
}

// YearsToGraduation recovers the remaining-years figure the priority engine
// needs when the recorded reason is graduation proximity.
func YearsToGraduation(facts UserProfileFacts, tctx TimelineContext) int {
	return facts.GraduationYear - tctx.CurrentYear
}
