package services

import (
	"context"
	"time"
)

// UserProfileFacts is the read-only completeness snapshot the engine works
// from. The profile subsystem owns the underlying data; the engine never
// writes it.
type UserProfileFacts struct {
	UserID                  string
	Sport                   string
	Role                    string
	GraduationYear          int
	CompletionPercent       int
	HasProfileImage         bool
	HasHighlightVideo       bool
	HasPhysicalMeasurements bool
	HasPerformanceMetrics   bool
	HasAcademicInfo         bool
	HasContactInfo          bool
}

// Fact resolves a field_missing trigger operand by name. The second return
// is false for names outside the closed vocabulary, which the evaluator
// treats as a malformed spec rather than a missing fact.
func (f UserProfileFacts) Fact(name string) (bool, bool) {
	switch name {
	case "profile_image":
		return f.HasProfileImage, true
	case "highlight_video":
		return f.HasHighlightVideo, true
	case "physical_measurements":
		return f.HasPhysicalMeasurements, true
	case "performance_metrics":
		return f.HasPerformanceMetrics, true
	case "academic_info":
		return f.HasAcademicInfo, true
	case "contact_info":
		return f.HasContactInfo, true
	default:
		return false, false
	}
}

type ProfileFactsProvider interface {
	GetFacts(ctx context.Context, userID string) (*UserProfileFacts, error)
}

// Clock is injectable so context building and scheduling are testable at a
// fixed instant.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
