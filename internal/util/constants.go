package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// AssessmentNumberFormat is the human-facing identifier pattern:
// ASM-{year}-{zero-padded sequence}.
const AssessmentNumberFormat = "ASM-%d-%05d"
