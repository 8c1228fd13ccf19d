package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"cogscreen_backend/internal/catalog"
	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/scale"
	"cogscreen_backend/internal/util"
)

func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func newTestAssessmentService(t *testing.T) (*AssessmentService, *fakeStore, *fakeNotifier) {
	t.Helper()
	store := newFakeStore()
	notifier := &fakeNotifier{}
	patients := &fakePatients{known: map[string]bool{"patient-1": true}}
	svc := NewAssessmentService(store, patients, mustCatalog(t), notifier)
	return svc, store, notifier
}

// firstQuestionID returns the ID of the first catalog item matching pred.
func firstQuestionID(t *testing.T, cat *catalog.Catalog, pred func(*catalog.Item) bool) uint {
	t.Helper()
	for _, g := range cat.Groups {
		for i := range g.Items {
			if pred(&g.Items[i]) {
				return g.Items[i].ID
			}
		}
	}
	t.Fatal("no catalog item matches predicate")
	return 0
}

func rawString(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}

func TestSubmitAllocatesNumberAndPublishes(t *testing.T) {
	svc, store, notifier := newTestAssessmentService(t)
	badlID := firstQuestionID(t, svc.Catalog, func(it *catalog.Item) bool {
		return it.Scale != nil && it.Scale.Instrument == scale.BADL
	})

	a, err := svc.Submit(context.Background(), SubmissionInput{
		PatientID: "patient-1",
		FormType:  model.FormSelf,
		Language:  model.LanguageEnglish,
		Responses: map[uint]json.RawMessage{badlID: rawString("A) Able to select and prepare food")},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if a.Status != model.StatusSubmitted {
		t.Errorf("status = %s, want submitted", a.Status)
	}
	if a.Number == nil {
		t.Fatal("number not allocated on submission")
	}
	if ok, _ := regexp.MatchString(`^ASM-\d{4}-\d{5}$`, *a.Number); !ok {
		t.Errorf("number %q does not match ASM-{year}-{5 digits}", *a.Number)
	}
	if a.SubmittedAt == nil {
		t.Error("submittedAt not stamped")
	}
	if a.ReviewVersion == "" {
		t.Error("review version token not assigned")
	}
	responses, _ := store.ListResponses(a.ID)
	if len(responses) != 1 {
		t.Fatalf("stored %d responses, want 1", len(responses))
	}
	if responses[0].QuestionText == "" {
		t.Error("question text not snapshotted")
	}
	if responses[0].ValueKind != model.ValueText {
		t.Errorf("value kind = %s, want text", responses[0].ValueKind)
	}
	want := []string{EventSubmitted, EventReviewRequired}
	if len(notifier.events) != len(want) || notifier.events[0] != want[0] || notifier.events[1] != want[1] {
		t.Errorf("events = %v, want %v", notifier.events, want)
	}
}

func TestSubmitSequenceIncrementsWithinYear(t *testing.T) {
	svc, _, _ := newTestAssessmentService(t)
	badlID := firstQuestionID(t, svc.Catalog, func(it *catalog.Item) bool {
		return it.Scale != nil && it.Scale.Instrument == scale.BADL
	})
	in := SubmissionInput{
		PatientID: "patient-1",
		FormType:  model.FormSelf,
		Language:  model.LanguageEnglish,
		Responses: map[uint]json.RawMessage{badlID: rawString("B")},
	}
	first, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if first.Number == nil || second.Number == nil {
		t.Fatal("number missing on a submitted assessment")
	}
	if *first.Number == *second.Number {
		t.Errorf("numbers collide: %s", *first.Number)
	}
}

func TestSubmitValidation(t *testing.T) {
	svc, _, _ := newTestAssessmentService(t)
	cat := svc.Catalog
	badlID := firstQuestionID(t, cat, func(it *catalog.Item) bool {
		return it.Scale != nil && it.Scale.Instrument == scale.BADL
	})
	multiID := firstQuestionID(t, cat, func(it *catalog.Item) bool {
		return it.Type == model.QuestionMultiSelect
	})

	cases := []struct {
		name string
		in   SubmissionInput
	}{
		{
			"unknown patient",
			SubmissionInput{
				PatientID: "nobody", FormType: model.FormSelf, Language: model.LanguageEnglish,
				Responses: map[uint]json.RawMessage{badlID: rawString("A")},
			},
		},
		{
			"bad form type",
			SubmissionInput{
				PatientID: "patient-1", FormType: "caregiver", Language: model.LanguageEnglish,
				Responses: map[uint]json.RawMessage{badlID: rawString("A")},
			},
		},
		{
			"bad language",
			SubmissionInput{
				PatientID: "patient-1", FormType: model.FormSelf, Language: "fr",
				Responses: map[uint]json.RawMessage{badlID: rawString("A")},
			},
		},
		{
			"proxy without caregiver details",
			SubmissionInput{
				PatientID: "patient-1", FormType: model.FormProxy, Language: model.LanguageEnglish,
				Responses: map[uint]json.RawMessage{badlID: rawString("A")},
			},
		},
		{
			"no responses",
			SubmissionInput{
				PatientID: "patient-1", FormType: model.FormSelf, Language: model.LanguageEnglish,
				Responses: map[uint]json.RawMessage{},
			},
		},
		{
			"unknown question",
			SubmissionInput{
				PatientID: "patient-1", FormType: model.FormSelf, Language: model.LanguageEnglish,
				Responses: map[uint]json.RawMessage{99999: rawString("A")},
			},
		},
		{
			"list answer for single-select question",
			SubmissionInput{
				PatientID: "patient-1", FormType: model.FormSelf, Language: model.LanguageEnglish,
				Responses: map[uint]json.RawMessage{badlID: json.RawMessage(`["A","B"]`)},
			},
		},
		{
			"scalar answer for multi-select question",
			SubmissionInput{
				PatientID: "patient-1", FormType: model.FormSelf, Language: model.LanguageEnglish,
				Responses: map[uint]json.RawMessage{multiID: rawString("diabetes")},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Submit(context.Background(), tc.in); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSubmitSnapshotsArabicText(t *testing.T) {
	svc, store, _ := newTestAssessmentService(t)
	badlID := firstQuestionID(t, svc.Catalog, func(it *catalog.Item) bool {
		return it.Scale != nil && it.Scale.Instrument == scale.BADL
	})
	q, _ := svc.Catalog.Question(badlID)

	a, err := svc.Submit(context.Background(), SubmissionInput{
		PatientID: "patient-1",
		FormType:  model.FormSelf,
		Language:  model.LanguageArabic,
		Responses: map[uint]json.RawMessage{badlID: rawString("أ")},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	responses, _ := store.ListResponses(a.ID)
	if responses[0].QuestionText != q.TextAR {
		t.Errorf("snapshot = %q, want Arabic text %q", responses[0].QuestionText, q.TextAR)
	}
}

func TestDraftFlow(t *testing.T) {
	svc, _, notifier := newTestAssessmentService(t)
	badlID := firstQuestionID(t, svc.Catalog, func(it *catalog.Item) bool {
		return it.Scale != nil && it.Scale.Instrument == scale.BADL
	})

	draft, err := svc.CreateDraft(DraftInput{
		PatientID: "patient-1",
		FormType:  model.FormProxy,
		Language:  model.LanguageEnglish,
		Proxy:     &ProxyInfo{Name: "Sara", Relationship: "daughter"},
	})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if draft.Status != model.StatusDraft {
		t.Fatalf("status = %s, want draft", draft.Status)
	}
	if draft.Number != nil {
		t.Errorf("draft got number %q before submission", *draft.Number)
	}

	// Submitting an empty draft is rejected.
	if _, err := svc.SubmitDraft(context.Background(), draft.ID); err == nil {
		t.Error("empty draft submitted without error")
	}

	if _, err := svc.RecordResponse(draft.ID, badlID, rawString("C) Needs some help")); err != nil {
		t.Fatalf("record response: %v", err)
	}

	// A second answer for the same question is append-only violation.
	_, err = svc.RecordResponse(draft.ID, badlID, rawString("A"))
	var dup *util.DuplicateResponseError
	if !errors.As(err, &dup) {
		t.Fatalf("duplicate response error = %v, want DuplicateResponseError", err)
	}

	submitted, err := svc.SubmitDraft(context.Background(), draft.ID)
	if err != nil {
		t.Fatalf("submit draft: %v", err)
	}
	if submitted.Status != model.StatusSubmitted || submitted.Number == nil {
		t.Errorf("submitted: status=%s number=%v", submitted.Status, submitted.Number)
	}
	if len(notifier.events) != 2 {
		t.Errorf("events = %v, want submitted + review_required", notifier.events)
	}

	// The submitted assessment no longer accepts answers.
	if _, err := svc.RecordResponse(draft.ID, badlID+1, rawString("A")); err == nil {
		t.Error("recorded answer on submitted assessment")
	}
}

// Numbers are allocated at submission only, so any count of open drafts
// can coexist without colliding on the allocated-number uniqueness.
func TestDraftsCoexistUntilNumbersAllocated(t *testing.T) {
	svc, _, _ := newTestAssessmentService(t)
	badlID := firstQuestionID(t, svc.Catalog, func(it *catalog.Item) bool {
		return it.Scale != nil && it.Scale.Instrument == scale.BADL
	})

	var drafts []uint
	for i := 0; i < 3; i++ {
		draft, err := svc.CreateDraft(DraftInput{
			PatientID: "patient-1", FormType: model.FormSelf, Language: model.LanguageEnglish,
		})
		if err != nil {
			t.Fatalf("create draft %d: %v", i, err)
		}
		if draft.Number != nil {
			t.Fatalf("draft %d carries number %q before submission", i, *draft.Number)
		}
		if _, err := svc.RecordResponse(draft.ID, badlID, rawString("B")); err != nil {
			t.Fatalf("record response on draft %d: %v", i, err)
		}
		drafts = append(drafts, draft.ID)
	}

	seen := make(map[string]bool)
	for _, id := range drafts {
		submitted, err := svc.SubmitDraft(context.Background(), id)
		if err != nil {
			t.Fatalf("submit draft %d: %v", id, err)
		}
		if submitted.Number == nil {
			t.Fatalf("draft %d submitted without a number", id)
		}
		if seen[*submitted.Number] {
			t.Fatalf("number %s allocated twice", *submitted.Number)
		}
		seen[*submitted.Number] = true
	}
}

// Concurrent submissions must each come back with their own contiguous
// number; a duplicate or a gap means the allocation serialized wrong.
func TestSubmitConcurrentAllocatesDistinctNumbers(t *testing.T) {
	svc, _, _ := newTestAssessmentService(t)
	badlID := firstQuestionID(t, svc.Catalog, func(it *catalog.Item) bool {
		return it.Scale != nil && it.Scale.Instrument == scale.BADL
	})

	const submissions = 50
	numbers := make(chan string, submissions)
	errs := make(chan error, submissions)
	var wg sync.WaitGroup
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := svc.Submit(context.Background(), SubmissionInput{
				PatientID: "patient-1",
				FormType:  model.FormSelf,
				Language:  model.LanguageEnglish,
				Responses: map[uint]json.RawMessage{badlID: rawString("B")},
			})
			if err != nil {
				errs <- err
				return
			}
			if a.Number == nil {
				errs <- errors.New("submission returned without a number")
				return
			}
			numbers <- *a.Number
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent submit: %v", err)
	}
	got := make(map[string]bool, submissions)
	for n := range numbers {
		if got[n] {
			t.Fatalf("number %s allocated twice", n)
		}
		got[n] = true
	}
	year := time.Now().Year()
	for i := 1; i <= submissions; i++ {
		want := fmt.Sprintf(util.AssessmentNumberFormat, year, i)
		if !got[want] {
			t.Errorf("number %s missing from allocation run", want)
		}
	}
}

func TestGetByNumber(t *testing.T) {
	svc, _, _ := newTestAssessmentService(t)
	badlID := firstQuestionID(t, svc.Catalog, func(it *catalog.Item) bool {
		return it.Scale != nil && it.Scale.Instrument == scale.BADL
	})

	a, err := svc.Submit(context.Background(), SubmissionInput{
		PatientID: "patient-1",
		FormType:  model.FormSelf,
		Language:  model.LanguageEnglish,
		Responses: map[uint]json.RawMessage{badlID: rawString("A")},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	found, err := svc.GetByNumber(*a.Number)
	if err != nil {
		t.Fatalf("get by number: %v", err)
	}
	if found.ID != a.ID {
		t.Errorf("resolved assessment %d, want %d", found.ID, a.ID)
	}

	if _, err := svc.GetByNumber("ASM-1999-99999"); !errors.Is(err, util.ErrAssessmentNotFound) {
		t.Errorf("unknown number err = %v, want ErrAssessmentNotFound", err)
	}
}

func TestRecordResponseShapeTags(t *testing.T) {
	svc, store, _ := newTestAssessmentService(t)
	cat := svc.Catalog
	draft, err := svc.CreateDraft(DraftInput{
		PatientID: "patient-1", FormType: model.FormSelf, Language: model.LanguageEnglish,
	})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	numberID := firstQuestionID(t, cat, func(it *catalog.Item) bool { return it.Type == model.QuestionNumber })
	boolID := firstQuestionID(t, cat, func(it *catalog.Item) bool { return it.Type == model.QuestionBoolean })
	dateID := firstQuestionID(t, cat, func(it *catalog.Item) bool { return it.Type == model.QuestionDate })
	multiID := firstQuestionID(t, cat, func(it *catalog.Item) bool { return it.Type == model.QuestionMultiSelect })

	cases := []struct {
		questionID uint
		raw        json.RawMessage
		wantKind   model.ValueKind
		wantValue  string
	}{
		{numberID, json.RawMessage(`71`), model.ValueNumber, "71"},
		{boolID, json.RawMessage(`true`), model.ValueBoolean, "true"},
		{dateID, rawString("2025-03-14"), model.ValueDate, "2025-03-14"},
		{multiID, json.RawMessage(`["hypertension","diabetes"]`), model.ValueMultiSelect, `["hypertension","diabetes"]`},
	}
	for _, tc := range cases {
		resp, err := svc.RecordResponse(draft.ID, tc.questionID, tc.raw)
		if err != nil {
			t.Fatalf("record question %d: %v", tc.questionID, err)
		}
		if resp.ValueKind != tc.wantKind {
			t.Errorf("question %d kind = %s, want %s", tc.questionID, resp.ValueKind, tc.wantKind)
		}
		if resp.RawValue != tc.wantValue {
			t.Errorf("question %d raw = %q, want %q", tc.questionID, resp.RawValue, tc.wantValue)
		}
	}

	// A rejected answer leaves no record behind.
	before, _ := store.CountResponses(draft.ID)
	if _, err := svc.RecordResponse(draft.ID, dateID+100000, rawString("14/03/2025")); err == nil {
		t.Error("accepted answer for unknown question")
	}
	after, _ := store.CountResponses(draft.ID)
	if before != after {
		t.Error("rejected answer was stored")
	}
}
