package util

import (
	"errors"
	"fmt"

	"cogscreen_backend/internal/model"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrMRNRegistered      = errors.New("medical record number already registered")

	// ErrSequenceConflict marks a lost race on the per-year counter. It is
	// retried inside the allocator and never surfaced to callers.
	ErrSequenceConflict = errors.New("assessment number already taken")
)

// ValidationError reports malformed or missing input at ingest, with
// field-level detail. Never retried automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// DuplicateResponseError reports a second answer for a question already
// answered within the same assessment. Responses are append-only.
type DuplicateResponseError struct {
	QuestionID uint
}

func (e *DuplicateResponseError) Error() string {
	return fmt.Sprintf("question %d already answered in this assessment", e.QuestionID)
}

// InvalidTransitionError reports an illegal status change, carrying both
// the current and the requested state.
type InvalidTransitionError struct {
	From model.Status
	To   model.Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition assessment from %s to %s", e.From, e.To)
}

// IncompleteReviewError reports an attempt to complete a review without
// clinical notes. Recoverable: the caller supplies notes and retries.
type IncompleteReviewError struct{}

func (e *IncompleteReviewError) Error() string {
	return "review notes are required before completing a review"
}

// ConflictError reports a stale review write: another reviewer saved since
// the caller last read the assessment.
type ConflictError struct {
	Expected string
	Actual   string
}

func (e *ConflictError) Error() string {
	return "assessment was modified by another reviewer; reload and retry"
}
