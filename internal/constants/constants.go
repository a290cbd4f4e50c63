package constants

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusComplete   TaskStatus = "complete"
	StatusSkipped    TaskStatus = "skipped"
	StatusBlocked    TaskStatus = "blocked"
)

// IsTerminal reports whether no further transition is allowed out of s.
func (s TaskStatus) IsTerminal() bool {
	return s == StatusComplete || s == StatusSkipped
}

type PriorityLevel string

const (
	PriorityLow      PriorityLevel = "low"
	PriorityMedium   PriorityLevel = "medium"
	PriorityHigh     PriorityLevel = "high"
	PriorityCritical PriorityLevel = "critical"
)

var priorityLadder = []PriorityLevel{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Rank returns the position of p on the low < medium < high < critical
// ladder. Unknown levels rank as low.
func (p PriorityLevel) Rank() int {
	for i, level := range priorityLadder {
		if level == p {
			return i
		}
	}
	return 0
}

// BoostPriority moves p up the ladder by steps, clamping at critical.
func BoostPriority(p PriorityLevel, steps int) PriorityLevel {
	if steps <= 0 {
		return p
	}
	i := p.Rank() + steps
	if i >= len(priorityLadder) {
		i = len(priorityLadder) - 1
	}
	return priorityLadder[i]
}

type TimelinePhase string

const (
	PhaseOnboarding  TimelinePhase = "onboarding"
	PhaseBuilding    TimelinePhase = "building"
	PhaseActive      TimelinePhase = "active"
	PhaseMaintaining TimelinePhase = "maintaining"
	PhaseArchived    TimelinePhase = "archived"
)

var phaseOrder = []TimelinePhase{PhaseOnboarding, PhaseBuilding, PhaseActive, PhaseMaintaining, PhaseArchived}

// Rank returns the position of p in the forward-only phase progression.
func (p TimelinePhase) Rank() int {
	for i, phase := range phaseOrder {
		if phase == p {
			return i
		}
	}
	return 0
}

type EngagementTier string

const (
	EngagementLow    EngagementTier = "low"
	EngagementMedium EngagementTier = "medium"
	EngagementHigh   EngagementTier = "high"
)

type Season string

const (
	SeasonRecruiting Season = "recruiting_season"
	SeasonCamp       Season = "camp_season"
	SeasonPlay       Season = "season_play"
)

// Progress event types recorded in the audit trail.
const (
	EventFieldUpdated  = "field_updated"
	EventTaskStarted   = "task_started"
	EventTaskCompleted = "task_completed"
	EventTaskSkipped   = "task_skipped"
	EventProfileViewed = "profile_viewed"
	EventLoggedIn      = "logged_in"
)
