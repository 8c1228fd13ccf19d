package service

import (
	"testing"

	"cogscreen_backend/internal/catalog"
	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/scale"
)

// scaleItems returns the catalog items of one instrument keyed by item
// number.
func scaleItems(cat *catalog.Catalog, inst scale.Instrument) map[int]*catalog.Item {
	items := make(map[int]*catalog.Item)
	for gi := range cat.Groups {
		for qi := range cat.Groups[gi].Items {
			it := &cat.Groups[gi].Items[qi]
			if it.Scale != nil && it.Scale.Instrument == inst {
				items[it.Scale.Item] = it
			}
		}
	}
	return items
}

func seedScored(t *testing.T, store *fakeStore, cat *catalog.Catalog, answers map[uint]string) *model.Assessment {
	t.Helper()
	a := seedSubmitted(t, store)
	for qid, raw := range answers {
		q, ok := cat.Question(qid)
		if !ok {
			t.Fatalf("seed response: unknown question %d", qid)
		}
		if err := store.CreateResponse(&model.AssessmentResponse{
			AssessmentID: a.ID,
			QuestionID:   qid,
			QuestionCode: q.Code,
			RawValue:     raw,
			QuestionText: "q",
			ValueKind:    model.ValueText,
		}); err != nil {
			t.Fatalf("seed response: %v", err)
		}
	}
	return a
}

func TestAggregateFullCoverage(t *testing.T) {
	store := newFakeStore()
	cat := mustCatalog(t)
	svc := NewScoreService(store, cat)

	answers := make(map[uint]string)
	// All twenty daily-living items at the fourth option (code 3).
	for _, it := range scaleItems(cat, scale.BADL) {
		answers[it.ID] = "D) " + it.Options[3].EN
	}
	// Staging at level 4.
	for _, it := range scaleItems(cat, scale.Stage) {
		answers[it.ID] = "4 - Moderate cognitive decline"
	}
	// Every depression item answered in its scoring direction.
	for _, it := range scaleItems(cat, scale.Depression) {
		if it.Scale.Direction == scale.YesScoresOne {
			answers[it.ID] = "Yes"
		} else {
			answers[it.ID] = "No"
		}
	}
	a := seedScored(t, store, cat, answers)

	report, err := svc.Aggregate(a.ID)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	badl := report.PerInstrument[scale.BADL]
	if badl.Total != 60 || badl.MatchedCount != 20 || !badl.Complete {
		t.Errorf("badl = total %d matched %d complete %v, want 60/20/true", badl.Total, badl.MatchedCount, badl.Complete)
	}
	stage := report.PerInstrument[scale.Stage]
	if stage.Total != 4 || stage.MatchedCount != 1 || !stage.Complete {
		t.Errorf("stage = total %d matched %d complete %v, want 4/1/true", stage.Total, stage.MatchedCount, stage.Complete)
	}
	dep := report.PerInstrument[scale.Depression]
	if dep.Total != 15 || dep.MatchedCount != 15 || !dep.Complete {
		t.Errorf("depression = total %d matched %d complete %v, want 15/15/true", dep.Total, dep.MatchedCount, dep.Complete)
	}
	if len(badl.Anomalies)+len(stage.Anomalies)+len(dep.Anomalies) != 0 {
		t.Error("full coverage reported anomalies")
	}
}

func TestAggregateAnomaliesAndCoverage(t *testing.T) {
	store := newFakeStore()
	cat := mustCatalog(t)
	svc := NewScoreService(store, cat)

	badl := scaleItems(cat, scale.BADL)
	answers := map[uint]string{
		badl[1].ID: "B) " + badl[1].Options[1].EN, // code 1
		badl[2].ID: "no idea, sorry",              // anomaly, scored 0
	}
	a := seedScored(t, store, cat, answers)

	report, err := svc.Aggregate(a.ID)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	agg := report.PerInstrument[scale.BADL]
	if agg.Total != 1 {
		t.Errorf("total = %d, want 1 (anomaly scores 0)", agg.Total)
	}
	if agg.MatchedCount != 1 || agg.ExpectedCount != 20 || agg.Complete {
		t.Errorf("coverage = %d/%d complete %v, want 1/20 incomplete", agg.MatchedCount, agg.ExpectedCount, agg.Complete)
	}
	if len(agg.Anomalies) != 1 || agg.Anomalies[0] != badl[2].ID {
		t.Errorf("anomalies = %v, want [%d]", agg.Anomalies, badl[2].ID)
	}

	// Instruments with no responses still appear, visibly incomplete.
	dep := report.PerInstrument[scale.Depression]
	if dep.ExpectedCount != 15 || dep.MatchedCount != 0 || dep.Complete {
		t.Error("unanswered instrument missing from coverage report")
	}
}

func TestAggregateDeterministic(t *testing.T) {
	store := newFakeStore()
	cat := mustCatalog(t)
	svc := NewScoreService(store, cat)

	badl := scaleItems(cat, scale.BADL)
	answers := map[uint]string{
		badl[1].ID: "ب) " + badl[1].Options[1].AR,
		badl[3].ID: badl[3].Options[2].EN, // no marker, phrase fallback
	}
	a := seedScored(t, store, cat, answers)

	first, err := svc.Aggregate(a.ID)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	second, err := svc.Aggregate(a.ID)
	if err != nil {
		t.Fatalf("aggregate again: %v", err)
	}
	f, s := first.PerInstrument[scale.BADL], second.PerInstrument[scale.BADL]
	if f.Total != s.Total || f.MatchedCount != s.MatchedCount {
		t.Errorf("aggregation not deterministic: %+v vs %+v", f, s)
	}
	if f.Total != 3 { // Arabic marker -> 1, phrase tier -> 2
		t.Errorf("total = %d, want 3", f.Total)
	}
}

// Numeric question IDs shift when the catalog is re-seeded; rows written
// under an older version must still attribute by their stable code, not
// by whatever question now holds the stored ID.
func TestAggregateResolvesByCodeAfterReseed(t *testing.T) {
	store := newFakeStore()
	cat := mustCatalog(t)
	svc := NewScoreService(store, cat)

	badl := scaleItems(cat, scale.BADL)
	dep := scaleItems(cat, scale.Depression)

	// A daily-living answer whose stored ID now lands on a depression item.
	a := seedSubmitted(t, store)
	if err := store.CreateResponse(&model.AssessmentResponse{
		AssessmentID: a.ID,
		QuestionID:   dep[1].ID,
		QuestionCode: badl[1].Code,
		RawValue:     "B) " + badl[1].Options[1].EN,
		QuestionText: "q",
		ValueKind:    model.ValueText,
	}); err != nil {
		t.Fatalf("seed response: %v", err)
	}

	report, err := svc.Aggregate(a.ID)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	agg := report.PerInstrument[scale.BADL]
	if agg.Total != 1 || agg.MatchedCount != 1 {
		t.Errorf("badl = total %d matched %d, want 1/1 from code resolution", agg.Total, agg.MatchedCount)
	}
	if other := report.PerInstrument[scale.Depression]; other.MatchedCount != 0 {
		t.Errorf("depression matched %d answers via stale numeric ID", other.MatchedCount)
	}

	// A code the current catalog no longer carries is skipped, not
	// misattributed.
	b := seedSubmitted(t, store)
	if err := store.CreateResponse(&model.AssessmentResponse{
		AssessmentID: b.ID,
		QuestionID:   badl[1].ID,
		QuestionCode: "retired_question",
		RawValue:     "B",
		QuestionText: "q",
		ValueKind:    model.ValueText,
	}); err != nil {
		t.Fatalf("seed response: %v", err)
	}
	orphaned, err := svc.Aggregate(b.ID)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	for inst, agg := range orphaned.PerInstrument {
		if agg.MatchedCount != 0 || agg.Total != 0 {
			t.Errorf("instrument %s scored an orphaned code", inst)
		}
	}
}

func TestAggregateUnknownAssessment(t *testing.T) {
	svc := NewScoreService(newFakeStore(), mustCatalog(t))
	if _, err := svc.Aggregate(12345); err == nil {
		t.Error("expected error for unknown assessment")
	}
}
