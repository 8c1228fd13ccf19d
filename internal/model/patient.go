package model

import "time"

// swagger:model Patient
type Patient struct {
	UUIDBase
	MRN               string     `gorm:"size:50;uniqueIndex;not null" json:"mrn"` // medical record number
	FirstName         string     `gorm:"size:100;not null" json:"firstName"`
	LastName          string     `gorm:"size:100;not null" json:"lastName"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty"`
	Gender            string     `gorm:"size:20" json:"gender"`
	Phone             string     `gorm:"size:30" json:"phone"`
	Email             string     `gorm:"size:100" json:"email"`
	PreferredLanguage Language   `gorm:"size:10;default:'en'" json:"preferredLanguage"`
}

func (Patient) TableName() string {
	return "patients"
}
