package service

import (
	"context"
	"strings"
	"time"

	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/util"
	"cogscreen_backend/pkg/monitoring"

	"github.com/google/uuid"
)

// ReviewInput is a reviewer's save. Version must be the token read with
// the assessment; a stale token means another reviewer saved in between.
type ReviewInput struct {
	Status          model.Status `json:"status" binding:"required"`
	ReviewNotes     string       `json:"reviewNotes"`
	ClinicalScore   *int         `json:"clinicalScore"`
	Recommendations string       `json:"recommendations"`
	Version         string       `json:"version" binding:"required"`
}

type ReviewService struct {
	Assessments AssessmentStore
	Notifier    Notifier
}

func NewReviewService(store AssessmentStore, notifier Notifier) *ReviewService {
	return &ReviewService{Assessments: store, Notifier: notifier}
}

// Save applies a reviewer's edit. SUBMITTED moves to UNDER_REVIEW on the
// first save; repeated UNDER_REVIEW saves are legal so partial notes can
// accumulate. Completion requires non-empty notes and stamps the reviewer.
// Clinical fields are frozen once the status is terminal.
func (s *ReviewService) Save(ctx context.Context, assessmentID, reviewerID uint, in ReviewInput) (*model.Assessment, error) {
	if in.Status != model.StatusUnderReview && in.Status != model.StatusCompleted {
		return nil, &util.ValidationError{Field: "status", Reason: "review status must be under_review or completed"}
	}

	a, err := s.Assessments.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}
	if model.Terminal(a.Status) {
		return nil, &util.ValidationError{Field: "status", Reason: "assessment is archived; clinical fields are frozen"}
	}
	previousStatus := a.Status
	if !model.CanTransition(a.Status, in.Status) {
		return nil, &util.InvalidTransitionError{From: a.Status, To: in.Status}
	}
	if in.Version != a.ReviewVersion {
		return nil, &util.ConflictError{Expected: in.Version, Actual: a.ReviewVersion}
	}

	previous := a.ReviewVersion
	a.Status = in.Status
	if in.ReviewNotes != "" {
		a.ReviewNotes = in.ReviewNotes
	}
	if in.ClinicalScore != nil {
		a.ClinicalScore = in.ClinicalScore
	}
	if in.Recommendations != "" {
		a.Recommendations = in.Recommendations
	}

	if in.Status == model.StatusCompleted {
		if strings.TrimSpace(a.ReviewNotes) == "" {
			return nil, &util.IncompleteReviewError{}
		}
		now := time.Now()
		a.ReviewedBy = &reviewerID
		a.ReviewedAt = &now
		a.IsReviewed = true
	}

	// Rotate the token on every accepted save so a concurrent writer
	// holding the old one is rejected at the database.
	a.ReviewVersion = uuid.NewString()
	if err := s.Assessments.UpdateReview(a, previous); err != nil {
		return nil, err
	}
	monitoring.StatusTransitionCounter.WithLabelValues(string(previousStatus), string(a.Status)).Inc()

	if in.Status == model.StatusCompleted && s.Notifier != nil {
		s.Notifier.ReviewCompleted(ctx, a)
	}
	return a, nil
}

// Archive moves a COMPLETED assessment to its terminal state. Clinical
// fields are frozen from here on.
func (s *ReviewService) Archive(assessmentID uint) (*model.Assessment, error) {
	a, err := s.Assessments.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(a.Status, model.StatusArchived) {
		return nil, &util.InvalidTransitionError{From: a.Status, To: model.StatusArchived}
	}
	if err := s.Assessments.UpdateStatus(a.ID, a.Status, model.StatusArchived); err != nil {
		return nil, err
	}
	monitoring.StatusTransitionCounter.WithLabelValues(string(a.Status), string(model.StatusArchived)).Inc()
	a.Status = model.StatusArchived
	return a, nil
}
