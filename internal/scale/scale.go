// Package scale holds the three psychometric instrument definitions and the
// pure normalization functions that turn a raw answer value into a canonical
// integer code. Normalization is deterministic: the same raw value always
// yields the same code, in both supported languages.
package scale

type Instrument string

const (
	// BADL is the Bristol-style activities-of-daily-living scale:
	// 20 items, five lettered options each (A-E / أ-هـ).
	BADL Instrument = "badl"
	// Stage is the 7-level global deterioration staging question.
	Stage Instrument = "gds_stage"
	// Depression is the 15-item yes/no geriatric depression scale.
	Depression Instrument = "gds15"
)

// Direction is the fixed scoring direction of a depression-scale item.
// It is declared once per item in the catalog, never inferred from text.
type Direction string

const (
	YesScoresOne Direction = "yes_scores_one"
	NoScoresOne  Direction = "no_scores_one"
)

// Participation marks a catalog question as feeding one instrument.
type Participation struct {
	Instrument Instrument
	Item       int       // 1-based item number within the instrument
	Direction  Direction // depression items only
}

// Definition describes one instrument's expected shape so the aggregator
// can report coverage.
type Definition struct {
	Instrument    Instrument
	ExpectedItems int
	MinCode       int
	MaxCode       int
}

var Definitions = map[Instrument]Definition{
	BADL:       {Instrument: BADL, ExpectedItems: 20, MinCode: 0, MaxCode: 3},
	Stage:      {Instrument: Stage, ExpectedItems: 1, MinCode: 1, MaxCode: 7},
	Depression: {Instrument: Depression, ExpectedItems: 15, MinCode: 0, MaxCode: 1},
}

// letterCodes maps the option position of a lettered item to its canonical
// code. The fifth option ("not applicable") scores 0 like the first.
var letterCodes = [5]int{0, 1, 2, 3, 0}

// Normalize maps one raw answer for a participating question to its
// canonical code. The boolean result is false when the value could not be
// matched; such answers are anomalies, scored 0 and reported by the
// aggregator, never silently dropped.
func Normalize(p Participation, raw string) (int, bool) {
	switch p.Instrument {
	case BADL:
		return NormalizeLetter(raw)
	case Stage:
		return NormalizeStage(raw)
	case Depression:
		return NormalizeBinary(p.Direction, raw)
	}
	return 0, false
}
