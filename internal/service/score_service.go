package service

import (
	"sort"

	"cogscreen_backend/internal/catalog"
	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/scale"
)

// InstrumentScore is the aggregate for one instrument of one assessment.
// Anomalies lists the question IDs whose answers could not be normalized;
// they contribute 0 to Total and are excluded from MatchedCount, so
// Complete tells a clinician at a glance whether the total rests on the
// full item set.
type InstrumentScore struct {
	Instrument    scale.Instrument `json:"instrument"`
	Total         int              `json:"total"`
	MatchedCount  int              `json:"matchedCount"`
	ExpectedCount int              `json:"expectedCount"`
	Complete      bool             `json:"complete"`
	Anomalies     []uint           `json:"anomalies"`
}

// ScoreReport holds the per-instrument aggregates of one assessment.
type ScoreReport struct {
	AssessmentID  uint                                  `json:"assessmentId"`
	Number        string                                `json:"number"`
	PerInstrument map[scale.Instrument]*InstrumentScore `json:"perInstrument"`
}

// ResponseReader is the slice of the assessment store the aggregator
// needs.
type ResponseReader interface {
	FindByID(id uint) (*model.Assessment, error)
	ListResponses(assessmentID uint) ([]model.AssessmentResponse, error)
}

type ScoreService struct {
	Responses ResponseReader
	Catalog   *catalog.Catalog
}

func NewScoreService(responses ResponseReader, cat *catalog.Catalog) *ScoreService {
	return &ScoreService{Responses: responses, Catalog: cat}
}

// Aggregate sums canonical codes per instrument for one assessment. Only
// responses whose question carries scale participation are considered;
// every instrument appears in the report even with zero responses, so
// missing coverage is visible rather than absent.
func (s *ScoreService) Aggregate(assessmentID uint) (*ScoreReport, error) {
	a, err := s.Responses.FindByID(assessmentID)
	if err != nil {
		return nil, err
	}
	responses, err := s.Responses.ListResponses(assessmentID)
	if err != nil {
		return nil, err
	}

	report := &ScoreReport{
		AssessmentID:  a.ID,
		Number:        a.NumberString(),
		PerInstrument: make(map[scale.Instrument]*InstrumentScore, len(scale.Definitions)),
	}
	for inst, def := range scale.Definitions {
		report.PerInstrument[inst] = &InstrumentScore{
			Instrument:    inst,
			ExpectedCount: def.ExpectedItems,
		}
	}

	for _, resp := range responses {
		// Resolve by code, not by the stored QuestionID: IDs are assigned
		// per catalog version, so rows written before a re-seed would land
		// on the wrong question.
		item, ok := s.Catalog.QuestionByCode(resp.QuestionCode)
		if !ok || item.Scale == nil {
			continue
		}
		agg := report.PerInstrument[item.Scale.Instrument]
		code, matched := scale.Normalize(*item.Scale, resp.RawValue)
		agg.Total += code
		if matched {
			agg.MatchedCount++
		} else {
			agg.Anomalies = append(agg.Anomalies, resp.QuestionID)
		}
	}

	for _, agg := range report.PerInstrument {
		agg.Complete = agg.MatchedCount == agg.ExpectedCount
		sort.Slice(agg.Anomalies, func(i, j int) bool { return agg.Anomalies[i] < agg.Anomalies[j] })
	}
	return report, nil
}
