package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/util"
)

// fakeStore is an in-memory AssessmentStore for service tests.
type fakeStore struct {
	mu          sync.Mutex
	assessments map[uint]*model.Assessment
	responses   map[uint][]model.AssessmentResponse
	nextID      uint
	seq         map[int]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		assessments: make(map[uint]*model.Assessment),
		responses:   make(map[uint][]model.AssessmentResponse),
		seq:         make(map[int]int),
	}
}

// allocate reserves the next number for year, mirroring the unique index
// on allocated numbers: handing out one that is already held by a stored
// assessment reports the same conflict the database would.
func (f *fakeStore) allocate(year int) (string, error) {
	f.seq[year]++
	n := fmt.Sprintf(util.AssessmentNumberFormat, year, f.seq[year])
	for _, a := range f.assessments {
		if a.Number != nil && *a.Number == n {
			return "", util.ErrSequenceConflict
		}
	}
	return n, nil
}

func (f *fakeStore) CreateSubmitted(a *model.Assessment, responses []model.AssessmentResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	num, err := f.allocate(a.Year)
	if err != nil {
		return err
	}
	f.nextID++
	a.ID = f.nextID
	a.Number = &num
	copied := *a
	f.assessments[a.ID] = &copied
	for i := range responses {
		responses[i].AssessmentID = a.ID
	}
	f.responses[a.ID] = append([]model.AssessmentResponse(nil), responses...)
	return nil
}

func (f *fakeStore) CreateDraft(a *model.Assessment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	a.ID = f.nextID
	copied := *a
	f.assessments[a.ID] = &copied
	return nil
}

func (f *fakeStore) CreateResponse(resp *model.AssessmentResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.responses[resp.AssessmentID] {
		if existing.QuestionID == resp.QuestionID {
			return &util.DuplicateResponseError{QuestionID: resp.QuestionID}
		}
	}
	f.responses[resp.AssessmentID] = append(f.responses[resp.AssessmentID], *resp)
	return nil
}

func (f *fakeStore) HasResponse(assessmentID, questionID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.responses[assessmentID] {
		if r.QuestionID == questionID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CountResponses(assessmentID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.responses[assessmentID])), nil
}

func (f *fakeStore) ListResponses(assessmentID uint) ([]model.AssessmentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.AssessmentResponse(nil), f.responses[assessmentID]...), nil
}

func (f *fakeStore) SubmitDraft(a *model.Assessment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.assessments[a.ID]
	if !ok {
		return util.ErrAssessmentNotFound
	}
	if stored.Status != model.StatusDraft {
		return &util.InvalidTransitionError{From: stored.Status, To: model.StatusSubmitted}
	}
	year := time.Now().Year()
	num, err := f.allocate(year)
	if err != nil {
		return err
	}
	stored.Status = model.StatusSubmitted
	stored.Year = year
	stored.Number = &num
	a.Status = stored.Status
	a.Year = stored.Year
	a.Number = stored.Number
	return nil
}

func (f *fakeStore) FindByID(id uint) (*model.Assessment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.assessments[id]
	if !ok {
		return nil, util.ErrAssessmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeStore) FindByNumber(number string) (*model.Assessment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.assessments {
		if a.Number != nil && *a.Number == number {
			copied := *a
			return &copied, nil
		}
	}
	return nil, util.ErrAssessmentNotFound
}

func (f *fakeStore) List(page, limit int, status model.Status, year int, patientID string) ([]model.Assessment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Assessment
	for _, a := range f.assessments {
		if status != "" && a.Status != status {
			continue
		}
		if year > 0 && a.Year != year {
			continue
		}
		if patientID != "" && a.PatientID != patientID {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeStore) UpdateReview(a *model.Assessment, expectedVersion string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.assessments[a.ID]
	if !ok {
		return util.ErrAssessmentNotFound
	}
	if stored.ReviewVersion != expectedVersion {
		return &util.ConflictError{Expected: expectedVersion, Actual: stored.ReviewVersion}
	}
	stored.Status = a.Status
	stored.ClinicalScore = a.ClinicalScore
	stored.ReviewNotes = a.ReviewNotes
	stored.Recommendations = a.Recommendations
	stored.ReviewedBy = a.ReviewedBy
	stored.ReviewedAt = a.ReviewedAt
	stored.IsReviewed = a.IsReviewed
	stored.ReviewVersion = a.ReviewVersion
	return nil
}

func (f *fakeStore) UpdateStatus(id uint, from, to model.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.assessments[id]
	if !ok {
		return util.ErrAssessmentNotFound
	}
	if stored.Status != from {
		return &util.InvalidTransitionError{From: from, To: to}
	}
	stored.Status = to
	return nil
}

// fakePatients resolves every ID in its set.
type fakePatients struct {
	known map[string]bool
}

func (f *fakePatients) FindByID(id string) (*model.Patient, error) {
	if f.known[id] {
		return &model.Patient{MRN: "MRN-" + id}, nil
	}
	return nil, util.ErrPatientNotFound
}

// fakeNotifier records emitted event names in order.
type fakeNotifier struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeNotifier) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, name)
}

func (f *fakeNotifier) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

func (f *fakeNotifier) AssessmentSubmitted(_ context.Context, _ *model.Assessment) {
	f.record(EventSubmitted)
}

func (f *fakeNotifier) ReviewRequired(_ context.Context, _ *model.Assessment) {
	f.record(EventReviewRequired)
}

func (f *fakeNotifier) ReviewCompleted(_ context.Context, _ *model.Assessment) {
	f.record(EventCompleted)
}
