package catalog

import (
	"fmt"

	"recruit-timeline.com/recruit-timeline/internal/constants"
)

type TriggerKind string

const (
	TriggerFieldMissing        TriggerKind = "field_missing"
	TriggerCompletionAtLeast   TriggerKind = "completion_at_least"
	TriggerSeasonalMatch       TriggerKind = "seasonal_match"
	TriggerGraduationProximity TriggerKind = "graduation_proximity"
	TriggerEngagementLevel     TriggerKind = "engagement_level"
)

// TriggerCondition is one predicate of a definition's trigger spec. Only the
// operand matching Kind is read; the variants form a closed vocabulary so the
// evaluator can be exhaustive.
type TriggerCondition struct {
	Kind           TriggerKind
	Fields         []string
	Threshold      int
	EventKeys      []string
	YearsThreshold int
	Levels         []constants.EngagementTier
}

// TriggerReason records which condition fired, kept on the instance for audit.
type TriggerReason struct {
	Kind   TriggerKind
	Detail string
}

type TaskCategory string

const (
	CategoryProfile   TaskCategory = "profile"
	CategoryContact   TaskCategory = "contact"
	CategoryHighlight TaskCategory = "highlight"
	CategoryMedia     TaskCategory = "media"
	CategoryAthletics TaskCategory = "athletics"
	CategoryAcademics TaskCategory = "academics"
)

// TaskDefinition is an immutable catalog rule. Definitions are seeded in code
// and never written by the engine.
type TaskDefinition struct {
	Key              string
	Title            string
	Description      string
	Rationale        string
	EstimatedMinutes int
	BasePriority     constants.PriorityLevel
	Category         TaskCategory
	Dependencies     []string
	Triggers         []TriggerCondition
	BlocksSharing    bool
	ApplicableSports []string
	ApplicableRoles  []string
	IsActive         bool
}

// Validate checks the trigger spec for operands the evaluator cannot act on.
// A definition with no triggers is valid; it simply never fires.
func (d TaskDefinition) Validate() error {
	if d.Key == "" {
		return fmt.Errorf("definition has empty key")
	}
	for i, c := range d.Triggers {
		if err := c.validate(); err != nil {
			return fmt.Errorf("definition %s trigger %d: %w", d.Key, i, err)
		}
	}
	return nil
}

func (c TriggerCondition) validate() error {
	switch c.Kind {
	case TriggerFieldMissing:
		if len(c.Fields) == 0 {
			return fmt.Errorf("field_missing requires at least one field name")
		}
	case TriggerCompletionAtLeast:
		if c.Threshold < 0 || c.Threshold > 100 {
			return fmt.Errorf("completion_at_least threshold %d out of range", c.Threshold)
		}
	case TriggerSeasonalMatch:
		if len(c.EventKeys) == 0 {
			return fmt.Errorf("seasonal_match requires at least one event key")
		}
	case TriggerGraduationProximity:
		if c.YearsThreshold < 0 {
			return fmt.Errorf("graduation_proximity threshold must not be negative")
		}
	case TriggerEngagementLevel:
		if len(c.Levels) == 0 {
			return fmt.Errorf("engagement_level requires at least one tier")
		}
	default:
		return fmt.Errorf("unknown trigger kind %q", c.Kind)
	}
	return nil
}

func (d TaskDefinition) appliesTo(sport, role string) bool {
	if !d.IsActive {
		return false
	}
	return memberOrEmpty(d.ApplicableSports, sport) && memberOrEmpty(d.ApplicableRoles, role)
}

// memberOrEmpty treats an empty membership list as "applies to all".
func memberOrEmpty(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
