package model

import "time"

type FormType string

const (
	FormSelf  FormType = "self"
	FormProxy FormType = "proxy"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Assessment is the root aggregate of one administered screening. Clinical
// fields stay nil/empty until a reviewer writes them; they are frozen once
// the assessment is archived.
// swagger:model Assessment
type Assessment struct {
	BaseModel
	// ASM-{year}-{5 digits}, assigned at submission. NULL while the
	// assessment is a draft: the unique index skips NULL rows, so any
	// number of unallocated drafts can coexist.
	Number    *string  `gorm:"size:20;uniqueIndex" json:"number,omitempty"`
	Year      int      `gorm:"index" json:"year"`
	PatientID string   `gorm:"size:36;index;not null" json:"patientId"`
	Patient   *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	FormType  FormType `gorm:"size:10;not null" json:"formType"`
	Language  Language `gorm:"size:10;not null" json:"language"`
	Priority  Priority `gorm:"size:10;default:'normal'" json:"priority"`
	Status    Status   `gorm:"size:20;index;default:'draft'" json:"status"`

	// Proxy (caregiver) details, present only for proxy forms.
	ProxyName         string `gorm:"size:100" json:"proxyName,omitempty"`
	ProxyEmail        string `gorm:"size:100" json:"proxyEmail,omitempty"`
	ProxyPhone        string `gorm:"size:30" json:"proxyPhone,omitempty"`
	ProxyRelationship string `gorm:"size:50" json:"proxyRelationship,omitempty"`

	SubmittedAt *time.Time `json:"submittedAt,omitempty"`

	// Clinical review fields.
	ClinicalScore   *int       `json:"clinicalScore,omitempty"`
	ReviewNotes     string     `gorm:"type:text" json:"reviewNotes"`
	Recommendations string     `gorm:"type:text" json:"recommendations"`
	ReviewedBy      *uint      `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	IsReviewed      bool       `gorm:"default:false" json:"isReviewed"`

	// Optimistic token guarding concurrent review saves. Rotated on every
	// accepted review write; a stale token is rejected.
	ReviewVersion string `gorm:"size:36;not null" json:"reviewVersion"`

	Responses []AssessmentResponse `gorm:"foreignKey:AssessmentID" json:"responses,omitempty"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// NumberString returns the allocated number, or "" for drafts.
func (a *Assessment) NumberString() string {
	if a.Number == nil {
		return ""
	}
	return *a.Number
}

type ValueKind string

const (
	ValueText        ValueKind = "text"
	ValueNumber      ValueKind = "number"
	ValueBoolean     ValueKind = "boolean"
	ValueMultiSelect ValueKind = "multi_select"
	ValueDate        ValueKind = "date"
)

// AssessmentResponse stores one raw answer exactly as submitted, plus a
// snapshot of the question text at submission time so later catalog
// re-seeds cannot silently change what the patient was asked. Rows are
// never updated; a correction is a new assessment.
// swagger:model AssessmentResponse
type AssessmentResponse struct {
	BaseModel
	AssessmentID uint `gorm:"uniqueIndex:uidx_assessment_question;type:bigint unsigned;not null" json:"assessmentId"`
	QuestionID   uint `gorm:"uniqueIndex:uidx_assessment_question;type:bigint unsigned;not null" json:"questionId"`
	// Stable question code (e.g. badl_eating). Numeric IDs are assigned
	// per catalog version and shift on a re-seed; scoring resolves by
	// code so old rows keep attributing to the right instrument.
	QuestionCode string    `gorm:"size:50;index;not null" json:"questionCode"`
	RawValue     string    `gorm:"type:text;not null" json:"rawValue"`
	QuestionText string    `gorm:"type:text;not null" json:"questionText"`
	ValueKind    ValueKind `gorm:"size:20;not null" json:"valueKind"`
}

func (AssessmentResponse) TableName() string {
	return "assessment_responses"
}

// AssessmentSequence is the per-year counter backing human-facing numbers.
// Rows are read FOR UPDATE inside the submission transaction.
type AssessmentSequence struct {
	Year       int `gorm:"primaryKey;autoIncrement:false" json:"year"`
	LastNumber int `gorm:"not null" json:"lastNumber"`
}

func (AssessmentSequence) TableName() string {
	return "assessment_sequences"
}
