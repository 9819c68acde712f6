package infra

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"nyaya/internal/models/db_models"
)

// NewPostgres opens the shared connection pool. The pool is passed to every
// component explicitly; there is no package-level client.
func NewPostgres(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.URL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.PaymentRecord{},
		&db_models.NewsArticle{},
		&db_models.Podcast{},
		&db_models.MeetingRoom{},
		&db_models.MediaUpload{},
	)
}

func ClosePostgres(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("closing database connection")
	}
}
