package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"cogscreen_backend/internal/catalog"
	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/util"
	"cogscreen_backend/pkg/monitoring"

	"github.com/google/uuid"
)

// AssessmentStore is the persistence surface the submission and review
// services depend on, satisfied by repository.AssessmentRepository.
type AssessmentStore interface {
	CreateSubmitted(a *model.Assessment, responses []model.AssessmentResponse) error
	CreateDraft(a *model.Assessment) error
	CreateResponse(resp *model.AssessmentResponse) error
	HasResponse(assessmentID, questionID uint) (bool, error)
	CountResponses(assessmentID uint) (int64, error)
	ListResponses(assessmentID uint) ([]model.AssessmentResponse, error)
	SubmitDraft(a *model.Assessment) error
	FindByID(id uint) (*model.Assessment, error)
	FindByNumber(number string) (*model.Assessment, error)
	List(page, limit int, status model.Status, year int, patientID string) ([]model.Assessment, int64, error)
	UpdateReview(a *model.Assessment, expectedVersion string) error
	UpdateStatus(id uint, from, to model.Status) error
}

// PatientReader resolves patient identity records for referential checks.
type PatientReader interface {
	FindByID(id string) (*model.Patient, error)
}

type ProxyInfo struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// SubmissionInput is the one-shot submission payload: the whole answer set
// arrives together and is persisted atomically with number allocation.
type SubmissionInput struct {
	PatientID string                   `json:"patientId" binding:"required"`
	FormType  model.FormType           `json:"formType" binding:"required"`
	Language  model.Language           `json:"language" binding:"required"`
	Priority  model.Priority           `json:"priority"`
	Proxy     *ProxyInfo               `json:"proxyInfo"`
	Responses map[uint]json.RawMessage `json:"responses" binding:"required"`
}

type DraftInput struct {
	PatientID string         `json:"patientId" binding:"required"`
	FormType  model.FormType `json:"formType" binding:"required"`
	Language  model.Language `json:"language" binding:"required"`
	Priority  model.Priority `json:"priority"`
	Proxy     *ProxyInfo     `json:"proxyInfo"`
}

type AssessmentService struct {
	Assessments AssessmentStore
	Patients    PatientReader
	Catalog     *catalog.Catalog
	Notifier    Notifier
}

func NewAssessmentService(store AssessmentStore, patients PatientReader, cat *catalog.Catalog, notifier Notifier) *AssessmentService {
	return &AssessmentService{Assessments: store, Patients: patients, Catalog: cat, Notifier: notifier}
}

func validFormType(t model.FormType) bool {
	return t == model.FormSelf || t == model.FormProxy
}

func validLanguage(l model.Language) bool {
	return l == model.LanguageEnglish || l == model.LanguageArabic
}

// decodeValue turns one submitted JSON answer into its stored string form
// and inferred shape tag, then checks the shape against the question's
// declared type. Multi-select answers keep their JSON array encoding; all
// scalar answers are stored as plain text.
func decodeValue(q *catalog.Item, raw json.RawMessage) (string, model.ValueKind, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", "", &util.ValidationError{
			Field:  fmt.Sprintf("responses.%d", q.ID),
			Reason: "answer is not valid JSON",
		}
	}

	var (
		stored string
		kind   model.ValueKind
	)
	switch val := v.(type) {
	case nil:
		stored, kind = "", model.ValueText
	case string:
		stored = val
		switch q.Type {
		case model.QuestionDate:
			if _, err := time.Parse(util.DateFormat, strings.TrimSpace(val)); err != nil {
				return "", "", &util.ValidationError{
					Field:  fmt.Sprintf("responses.%d", q.ID),
					Reason: "date answer must use " + util.DateFormat,
				}
			}
			kind = model.ValueDate
		case model.QuestionNumber:
			if _, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err != nil {
				return "", "", &util.ValidationError{
					Field:  fmt.Sprintf("responses.%d", q.ID),
					Reason: "numeric answer expected",
				}
			}
			kind = model.ValueNumber
		case model.QuestionBoolean:
			kind = model.ValueBoolean
		default:
			kind = model.ValueText
		}
	case bool:
		stored, kind = strconv.FormatBool(val), model.ValueBoolean
	case float64:
		stored, kind = strconv.FormatFloat(val, 'f', -1, 64), model.ValueNumber
	case []interface{}:
		stored, kind = string(raw), model.ValueMultiSelect
	default:
		return "", "", &util.ValidationError{
			Field:  fmt.Sprintf("responses.%d", q.ID),
			Reason: "unsupported answer shape",
		}
	}

	// Shape vs declared type. Single-select and scale answers travel as
	// option text, so they must stay scalar; list answers are only legal
	// for multi-select questions.
	switch q.Type {
	case model.QuestionMultiSelect:
		if kind != model.ValueMultiSelect {
			return "", "", &util.ValidationError{
				Field:  fmt.Sprintf("responses.%d", q.ID),
				Reason: "multi-select answer must be a list",
			}
		}
	case model.QuestionNumber:
		if kind != model.ValueNumber {
			return "", "", &util.ValidationError{
				Field:  fmt.Sprintf("responses.%d", q.ID),
				Reason: "numeric answer expected",
			}
		}
	case model.QuestionBoolean:
		if kind != model.ValueBoolean && kind != model.ValueText {
			return "", "", &util.ValidationError{
				Field:  fmt.Sprintf("responses.%d", q.ID),
				Reason: "yes/no answer expected",
			}
		}
	default:
		if kind == model.ValueMultiSelect {
			return "", "", &util.ValidationError{
				Field:  fmt.Sprintf("responses.%d", q.ID),
				Reason: "list answer only allowed for multi-select questions",
			}
		}
	}
	return stored, kind, nil
}

// buildResponse validates one answer and snapshots the question text in the
// assessment's language so later catalog re-seeds cannot change what was
// asked.
func (s *AssessmentService) buildResponse(lang model.Language, questionID uint, raw json.RawMessage) (*model.AssessmentResponse, error) {
	q, ok := s.Catalog.Question(questionID)
	if !ok {
		return nil, &util.ValidationError{
			Field:  fmt.Sprintf("responses.%d", questionID),
			Reason: "unknown question",
		}
	}
	stored, kind, err := decodeValue(q, raw)
	if err != nil {
		return nil, err
	}
	if q.Required && strings.TrimSpace(stored) == "" {
		return nil, &util.ValidationError{
			Field:  fmt.Sprintf("responses.%d", questionID),
			Reason: "answer required",
		}
	}
	return &model.AssessmentResponse{
		QuestionID:   questionID,
		QuestionCode: q.Code,
		RawValue:     stored,
		QuestionText: q.Text(lang),
		ValueKind:    kind,
	}, nil
}

func (s *AssessmentService) validateHeader(patientID string, formType model.FormType, lang model.Language, proxy *ProxyInfo) error {
	if !validFormType(formType) {
		return &util.ValidationError{Field: "formType", Reason: "must be self or proxy"}
	}
	if !validLanguage(lang) {
		return &util.ValidationError{Field: "language", Reason: "must be en or ar"}
	}
	if formType == model.FormProxy && (proxy == nil || strings.TrimSpace(proxy.Name) == "") {
		return &util.ValidationError{Field: "proxyInfo", Reason: "proxy submissions require caregiver details"}
	}
	if _, err := s.Patients.FindByID(patientID); err != nil {
		return util.ErrPatientNotFound
	}
	return nil
}

func newAssessment(in DraftInput) *model.Assessment {
	a := &model.Assessment{
		PatientID:     in.PatientID,
		FormType:      in.FormType,
		Language:      in.Language,
		Priority:      in.Priority,
		Status:        model.StatusDraft,
		ReviewVersion: uuid.NewString(),
	}
	if a.Priority == "" {
		a.Priority = model.PriorityNormal
	}
	if in.Proxy != nil {
		a.ProxyName = in.Proxy.Name
		a.ProxyEmail = in.Proxy.Email
		a.ProxyPhone = in.Proxy.Phone
		a.ProxyRelationship = in.Proxy.Relationship
	}
	return a
}

// Submit validates and persists a complete submission in one transaction:
// response batch, sequence number and SUBMITTED status commit together.
func (s *AssessmentService) Submit(ctx context.Context, in SubmissionInput) (*model.Assessment, error) {
	if err := s.validateHeader(in.PatientID, in.FormType, in.Language, in.Proxy); err != nil {
		return nil, err
	}
	if len(in.Responses) == 0 {
		return nil, &util.ValidationError{Field: "responses", Reason: "at least one answer is required"}
	}

	ids := make([]uint, 0, len(in.Responses))
	for id := range in.Responses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	responses := make([]model.AssessmentResponse, 0, len(ids))
	for _, id := range ids {
		resp, err := s.buildResponse(in.Language, id, in.Responses[id])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	now := time.Now()
	a := newAssessment(DraftInput{
		PatientID: in.PatientID,
		FormType:  in.FormType,
		Language:  in.Language,
		Priority:  in.Priority,
		Proxy:     in.Proxy,
	})
	a.Status = model.StatusSubmitted
	a.Year = now.Year()
	a.SubmittedAt = &now

	if err := s.Assessments.CreateSubmitted(a, responses); err != nil {
		return nil, err
	}
	monitoring.SubmissionCounter.WithLabelValues(string(a.FormType), string(a.Language)).Inc()
	if s.Notifier != nil {
		s.Notifier.AssessmentSubmitted(ctx, a)
		s.Notifier.ReviewRequired(ctx, a)
	}
	return a, nil
}

// CreateDraft opens an assessment in DRAFT for incremental answering. No
// number is allocated until submission.
func (s *AssessmentService) CreateDraft(in DraftInput) (*model.Assessment, error) {
	if err := s.validateHeader(in.PatientID, in.FormType, in.Language, in.Proxy); err != nil {
		return nil, err
	}
	a := newAssessment(in)
	if err := s.Assessments.CreateDraft(a); err != nil {
		return nil, err
	}
	return a, nil
}

// RecordResponse appends one answer to a draft. Responses are immutable: a
// second answer for the same question fails with DuplicateResponseError,
// and answers cannot be added once the draft has been submitted.
func (s *AssessmentService) RecordResponse(assessmentID, questionID uint, raw json.RawMessage) (*model.AssessmentResponse, error) {
	a, err := s.Assessments.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}
	if a.Status != model.StatusDraft {
		return nil, &util.ValidationError{Field: "status", Reason: "answers can only be recorded on a draft assessment"}
	}
	exists, err := s.Assessments.HasResponse(assessmentID, questionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &util.DuplicateResponseError{QuestionID: questionID}
	}
	resp, err := s.buildResponse(a.Language, questionID, raw)
	if err != nil {
		return nil, err
	}
	resp.AssessmentID = assessmentID
	if err := s.Assessments.CreateResponse(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SubmitDraft flips a draft to SUBMITTED, allocating its number. At least
// one recorded response is required.
func (s *AssessmentService) SubmitDraft(ctx context.Context, assessmentID uint) (*model.Assessment, error) {
	a, err := s.Assessments.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(a.Status, model.StatusSubmitted) {
		return nil, &util.InvalidTransitionError{From: a.Status, To: model.StatusSubmitted}
	}
	count, err := s.Assessments.CountResponses(assessmentID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, &util.ValidationError{Field: "responses", Reason: "at least one answer is required before submission"}
	}
	if err := s.Assessments.SubmitDraft(a); err != nil {
		return nil, err
	}
	monitoring.SubmissionCounter.WithLabelValues(string(a.FormType), string(a.Language)).Inc()
	if s.Notifier != nil {
		s.Notifier.AssessmentSubmitted(ctx, a)
		s.Notifier.ReviewRequired(ctx, a)
	}
	return a, nil
}

func (s *AssessmentService) Get(id uint) (*model.Assessment, error) {
	return s.Assessments.FindByID(id)
}

func (s *AssessmentService) GetByNumber(number string) (*model.Assessment, error) {
	return s.Assessments.FindByNumber(number)
}

func (s *AssessmentService) Responses(assessmentID uint) ([]model.AssessmentResponse, error) {
	if _, err := s.Assessments.FindByID(assessmentID); err != nil {
		return nil, err
	}
	return s.Assessments.ListResponses(assessmentID)
}

func (s *AssessmentService) List(page, limit int, status model.Status, year int, patientID string) ([]model.Assessment, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if status != "" && !model.ValidStatus(status) {
		return nil, 0, &util.ValidationError{Field: "status", Reason: "unknown status"}
	}
	return s.Assessments.List(page, limit, status, year, patientID)
}
