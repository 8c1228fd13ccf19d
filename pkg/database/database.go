package database

import (
	"fmt"
	"log"

	"cogscreen_backend/internal/catalog"
	"cogscreen_backend/internal/config"
	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/repository"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the connection and, when migrate is set, applies schema
// migration and catalog seeding. Release deployments run with migration
// off and apply schema changes via the -migrate flag.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	// TranslateError is required: the sequence allocator and the
	// append-only response index both rely on gorm.ErrDuplicatedKey.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Patient{},
		&model.QuestionGroup{},
		&model.Question{},
		&model.Assessment{},
		&model.AssessmentResponse{},
		&model.AssessmentSequence{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedCatalog(db); err != nil {
		return nil, err
	}
	return db, nil
}

// seedCatalog writes the compiled-in question bank when the persisted
// version differs. Replacement is wholesale; groups are never patched in
// place.
func seedCatalog(db *gorm.DB) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}
	repo := repository.NewCatalogRepository(db)
	seeded, err := repo.SeededVersion()
	if err != nil {
		return err
	}
	if seeded == cat.Version {
		return nil
	}
	if err := repo.Replace(cat.Models()); err != nil {
		return err
	}
	log.Printf("Question catalog seeded at version %s", cat.Version)
	return nil
}
