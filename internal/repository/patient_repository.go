package repository

import (
	"cogscreen_backend/internal/model"

	"gorm.io/gorm"
)

type PatientRepository struct {
	DB *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{DB: db}
}

func (r *PatientRepository) Create(p *model.Patient) error {
	return r.DB.Create(p).Error
}

func (r *PatientRepository) FindByID(id string) (*model.Patient, error) {
	var p model.Patient
	err := r.DB.Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *PatientRepository) FindByMRN(mrn string) (*model.Patient, error) {
	var p model.Patient
	err := r.DB.Where("mrn = ?", mrn).First(&p).Error
	return &p, err
}

func (r *PatientRepository) List(page, limit int, search string) ([]model.Patient, int64, error) {
	var ps []model.Patient
	var total int64
	query := r.DB.Model(&model.Patient{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("mrn LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ps).Error
	return ps, total, err
}
