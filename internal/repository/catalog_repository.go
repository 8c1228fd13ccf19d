package repository

import (
	"cogscreen_backend/internal/model"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// SeededVersion returns the catalog version currently persisted, or empty
// when the tables hold no groups yet.
func (r *CatalogRepository) SeededVersion() (string, error) {
	var g model.QuestionGroup
	err := r.DB.Order("id asc").First(&g).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return g.CatalogVersion, nil
}

// Replace writes a catalog version wholesale: old groups and questions are
// removed and the new rows inserted in one transaction. Groups are never
// patched in place.
func (r *CatalogRepository) Replace(groups []model.QuestionGroup) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.QuestionGroup{}).Error; err != nil {
			return err
		}
		for i := range groups {
			if err := tx.Create(&groups[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListGroups returns all groups with their questions in protocol order.
func (r *CatalogRepository) ListGroups() ([]model.QuestionGroup, error) {
	var groups []model.QuestionGroup
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order asc")
	}).Order("question_groups.order asc").Find(&groups).Error
	return groups, err
}
