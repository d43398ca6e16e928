package models

import (
	"fmt"

	"github.com/orgspacehq/orgspace/common/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store owns the database connection. It is constructed once at startup
// and handed to the api handlers, there is no package level handle.
type Store struct {
	db *gorm.DB
}

func Open(pgURI string) (*Store, error) {
	log.Info("initializing database connection")
	db, err := gorm.Open(postgres.Open(pgURI), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed connecting to database: %v", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
