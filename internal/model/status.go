package model

// Status is the review lifecycle state of an assessment.
type Status string

const (
	StatusDraft       Status = "draft"
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusCompleted   Status = "completed"
	StatusArchived    Status = "archived"
)

// transitions is the single source of truth for the review lifecycle.
// Every mutation path consults it; there are no ad hoc status checks
// elsewhere. UNDER_REVIEW loops on itself so partial review saves are
// idempotent. There is no reopen edge: ARCHIVED is terminal and
// COMPLETED can only move forward to ARCHIVED.
var transitions = map[Status][]Status{
	StatusDraft:       {StatusSubmitted},
	StatusSubmitted:   {StatusUnderReview},
	StatusUnderReview: {StatusUnderReview, StatusCompleted},
	StatusCompleted:   {StatusArchived},
	StatusArchived:    {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s names a known lifecycle state.
func ValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no further transition can leave s.
func Terminal(s Status) bool {
	return len(transitions[s]) == 0
}
