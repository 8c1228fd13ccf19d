package repository

import (
	"errors"
	"fmt"
	"time"

	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sequenceRetries bounds internal retries on a lost counter race. The
// conflict is a concurrency artifact, not a caller error, so it is never
// surfaced.
const sequenceRetries = 3

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// withSequenceRetry runs fn up to sequenceRetries times, retrying only on
// ErrSequenceConflict. Any other outcome, success included, is returned
// as-is from the first attempt that produced it.
func withSequenceRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < sequenceRetries; attempt++ {
		err = fn()
		if !errors.Is(err, util.ErrSequenceConflict) {
			return err
		}
	}
	return err
}

// nextSequence reserves the next per-year number inside the caller's
// transaction. The counter row is read FOR UPDATE so concurrent
// submissions within one year serialize on it; the first submission of a
// year creates the row and may lose that race, which surfaces as
// ErrSequenceConflict for the caller to retry.
func nextSequence(tx *gorm.DB, year int) (int, error) {
	var seq model.AssessmentSequence
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("year = ?", year).First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seq = model.AssessmentSequence{Year: year, LastNumber: 1}
		if err := tx.Create(&seq).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return 0, util.ErrSequenceConflict
			}
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	seq.LastNumber++
	if err := tx.Model(&model.AssessmentSequence{}).
		Where("year = ?", year).
		Update("last_number", seq.LastNumber).Error; err != nil {
		return 0, err
	}
	return seq.LastNumber, nil
}

// CreateSubmitted persists a submitted assessment and its response batch
// atomically: number allocation, assessment insert and response inserts
// commit or roll back together, so a partial failure leaves no orphaned
// responses and consumes no sequence number.
func (r *AssessmentRepository) CreateSubmitted(a *model.Assessment, responses []model.AssessmentResponse) error {
	return withSequenceRetry(func() error {
		a.ID = 0
		return r.DB.Transaction(func(tx *gorm.DB) error {
			n, err := nextSequence(tx, a.Year)
			if err != nil {
				return err
			}
			number := fmt.Sprintf(util.AssessmentNumberFormat, a.Year, n)
			a.Number = &number
			if err := tx.Create(a).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return util.ErrSequenceConflict
				}
				return err
			}
			for i := range responses {
				responses[i].AssessmentID = a.ID
			}
			if len(responses) > 0 {
				if err := tx.Create(&responses).Error; err != nil {
					return err
				}
			}
			return nil
		})
	})
}

// CreateDraft persists an assessment in DRAFT without allocating a number.
func (r *AssessmentRepository) CreateDraft(a *model.Assessment) error {
	return r.DB.Create(a).Error
}

// CreateResponse appends one immutable response row. The unique index on
// (assessment_id, question_id) enforces append-only semantics; a lost
// uniqueness race surfaces as DuplicateResponseError just like an
// application-level duplicate.
func (r *AssessmentRepository) CreateResponse(resp *model.AssessmentResponse) error {
	err := r.DB.Create(resp).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &util.DuplicateResponseError{QuestionID: resp.QuestionID}
	}
	return err
}

func (r *AssessmentRepository) HasResponse(assessmentID, questionID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.AssessmentResponse{}).
		Where("assessment_id = ? AND question_id = ?", assessmentID, questionID).
		Count(&count).Error
	return count > 0, err
}

func (r *AssessmentRepository) CountResponses(assessmentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AssessmentResponse{}).
		Where("assessment_id = ?", assessmentID).
		Count(&count).Error
	return count, err
}

func (r *AssessmentRepository) ListResponses(assessmentID uint) ([]model.AssessmentResponse, error) {
	var responses []model.AssessmentResponse
	err := r.DB.Where("assessment_id = ?", assessmentID).
		Order("question_id asc").Find(&responses).Error
	return responses, err
}

// SubmitDraft flips a DRAFT assessment to SUBMITTED and allocates its
// number in one transaction. The status predicate in the UPDATE makes the
// flip atomic: a concurrent submit of the same draft loses and reports an
// invalid transition.
func (r *AssessmentRepository) SubmitDraft(a *model.Assessment) error {
	now := time.Now()
	year := now.Year()
	return withSequenceRetry(func() error {
		return r.DB.Transaction(func(tx *gorm.DB) error {
			n, err := nextSequence(tx, year)
			if err != nil {
				return err
			}
			number := fmt.Sprintf(util.AssessmentNumberFormat, year, n)
			res := tx.Model(&model.Assessment{}).
				Where("id = ? AND status = ?", a.ID, model.StatusDraft).
				Updates(map[string]interface{}{
					"status":       model.StatusSubmitted,
					"number":       number,
					"year":         year,
					"submitted_at": now,
				})
			if res.Error != nil {
				if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
					return util.ErrSequenceConflict
				}
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &util.InvalidTransitionError{From: a.Status, To: model.StatusSubmitted}
			}
			a.Status = model.StatusSubmitted
			a.Number = &number
			a.Year = year
			a.SubmittedAt = &now
			return nil
		})
	})
}

func (r *AssessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Preload("Patient").First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	return &a, err
}

func (r *AssessmentRepository) FindByNumber(number string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Preload("Patient").Where("number = ?", number).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	return &a, err
}

func (r *AssessmentRepository) List(page, limit int, status model.Status, year int, patientID string) ([]model.Assessment, int64, error) {
	var as []model.Assessment
	var total int64
	query := r.DB.Model(&model.Assessment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if year > 0 {
		query = query.Where("year = ?", year)
	}
	if patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Patient").
		Order("created_at desc").Offset(offset).Limit(limit).Find(&as).Error
	return as, total, err
}

// UpdateReview applies review fields only when the caller still holds the
// current version token; a stale token means another reviewer saved in
// between and the write is rejected.
func (r *AssessmentRepository) UpdateReview(a *model.Assessment, expectedVersion string) error {
	res := r.DB.Model(&model.Assessment{}).
		Where("id = ? AND review_version = ?", a.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":          a.Status,
			"clinical_score":  a.ClinicalScore,
			"review_notes":    a.ReviewNotes,
			"recommendations": a.Recommendations,
			"reviewed_by":     a.ReviewedBy,
			"reviewed_at":     a.ReviewedAt,
			"is_reviewed":     a.IsReviewed,
			"review_version":  a.ReviewVersion,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &util.ConflictError{Expected: expectedVersion, Actual: a.ReviewVersion}
	}
	return nil
}

// UpdateStatus performs a guarded status flip: the WHERE predicate on the
// current status keeps concurrent transitions from double-applying.
func (r *AssessmentRepository) UpdateStatus(id uint, from, to model.Status) error {
	res := r.DB.Model(&model.Assessment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &util.InvalidTransitionError{From: from, To: to}
	}
	return nil
}
