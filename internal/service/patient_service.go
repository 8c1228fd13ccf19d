package service

import (
	"errors"
	"strings"

	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/repository"
	"cogscreen_backend/internal/util"

	"gorm.io/gorm"
)

type PatientService struct {
	PatientRepo *repository.PatientRepository
}

func NewPatientService(repo *repository.PatientRepository) *PatientService {
	return &PatientService{PatientRepo: repo}
}

func (s *PatientService) Register(p *model.Patient) error {
	if strings.TrimSpace(p.MRN) == "" {
		return &util.ValidationError{Field: "mrn", Reason: "medical record number is required"}
	}
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return &util.ValidationError{Field: "name", Reason: "first and last name are required"}
	}
	_, err := s.PatientRepo.FindByMRN(p.MRN)
	if err == nil {
		return util.ErrMRNRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if p.PreferredLanguage == "" {
		p.PreferredLanguage = model.LanguageEnglish
	}
	return s.PatientRepo.Create(p)
}

func (s *PatientService) Get(id string) (*model.Patient, error) {
	p, err := s.PatientRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPatientNotFound
	}
	return p, err
}

func (s *PatientService) List(page, limit int, search string) ([]model.Patient, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.PatientRepo.List(page, limit, search)
}
