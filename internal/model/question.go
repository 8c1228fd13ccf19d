package model

import "encoding/json"

type QuestionType string

const (
	QuestionSingleSelect QuestionType = "single_select"
	QuestionMultiSelect  QuestionType = "multi_select"
	QuestionNumber       QuestionType = "number"
	QuestionText         QuestionType = "text"
	QuestionBoolean      QuestionType = "boolean"
	QuestionDate         QuestionType = "date"
	QuestionScale        QuestionType = "scale"
)

// QuestionGroup is an ordered section of the screening protocol. Groups are
// written wholesale at catalog seed time and never patched in place.
// swagger:model QuestionGroup
type QuestionGroup struct {
	BaseModel
	Code           string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	NameEN         string `gorm:"size:255;not null" json:"nameEn"`
	NameAR         string `gorm:"size:255;not null" json:"nameAr"`
	DescriptionEN  string `gorm:"type:text" json:"descriptionEn"`
	DescriptionAR  string `gorm:"type:text" json:"descriptionAr"`
	Order          int    `gorm:"default:0" json:"order"`
	CatalogVersion string `gorm:"size:36;index" json:"catalogVersion"`

	Questions []Question `gorm:"foreignKey:GroupID" json:"questions,omitempty"`
}

func (QuestionGroup) TableName() string {
	return "question_groups"
}

// Question belongs to exactly one group. Option lists are parallel and
// index-aligned across the two languages. Scale participation fields are
// set only for questions that feed an instrument; scoring never infers
// membership from text.
// swagger:model Question
type Question struct {
	BaseModel
	GroupID      uint            `gorm:"index;type:bigint unsigned" json:"groupId"`
	Code         string          `gorm:"size:50;uniqueIndex;not null" json:"code"`
	QuestionType QuestionType    `gorm:"size:30;not null" json:"questionType"`
	TextEN       string          `gorm:"type:text;not null" json:"textEn"`
	TextAR       string          `gorm:"type:text;not null" json:"textAr"`
	OptionsEN    json.RawMessage `gorm:"type:json" json:"optionsEn,omitempty"` // JSON: []string
	OptionsAR    json.RawMessage `gorm:"type:json" json:"optionsAr,omitempty"` // JSON: []string
	Required     bool            `gorm:"default:false" json:"required"`
	Order        int             `gorm:"default:0" json:"order"`

	// Scale participation metadata (empty Instrument = not scored).
	Instrument     string `gorm:"size:20;index" json:"instrument,omitempty"`
	ScaleItem      int    `gorm:"default:0" json:"scaleItem,omitempty"`    // 1-based item number within the instrument
	ScoreDirection string `gorm:"size:20" json:"scoreDirection,omitempty"` // yes_scores_one | no_scores_one
}

func (Question) TableName() string {
	return "questions"
}
