// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_dictionary

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gorm/caches/v4"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// DictionaryEntry is one row of the dictionary_entries table.
type DictionaryEntry struct {
	Id            uint64    `json:"id" gorm:"type:bigint;primaryKey;autoIncrement"`
	Kind          string    `json:"kind" gorm:"column:kind;type:varchar(16);not null;index:idx_dictionary_kind_word,unique"`
	Word          string    `json:"word" gorm:"column:word;type:varchar(255);not null;index:idx_dictionary_kind_word,unique"`
	Pronunciation string    `json:"pronunciation" gorm:"column:pronunciation;type:text;not null"`
	CreatedDate   time.Time `json:"createdDate" gorm:"column:created_date;autoCreateTime"`
}

func (DictionaryEntry) TableName() string {
	return "dictionary_entries"
}

// OpenDatabase opens a gorm handle for the postgres or sqlite driver.
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported dictionary driver %q", driver)
	}
	return NewDatabase(dialector)
}

// NewDatabase opens a gorm handle over any dialector. Identical queries
// running at the same time, such as a watcher reload racing an API reload,
// share one round trip.
func NewDatabase(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gorm_logger.Default.LogMode(gorm_logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s dictionary database: %w", dialector.Name(), err)
	}
	if err := db.Use(&caches.Caches{Conf: &caches.Config{Easer: true}}); err != nil {
		return nil, fmt.Errorf("failed to register query easer: %w", err)
	}
	return db, nil
}

// Migrate creates the dictionary_entries table when missing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&DictionaryEntry{}); err != nil {
		return fmt.Errorf("failed to migrate dictionary_entries: %w", err)
	}
	return nil
}

type sqlSource struct {
	db   *gorm.DB
	kind Kind
}

// NewSQLSource reads the rows of one kind from dictionary_entries.
func NewSQLSource(db *gorm.DB, kind Kind) Source {
	return &sqlSource{db: db, kind: kind}
}

func (s *sqlSource) Name() string { return "sql:" + string(s.kind) }

func (s *sqlSource) Load(ctx context.Context) ([]Entry, error) {
	var rows []DictionaryEntry
	if err := s.db.WithContext(ctx).Where("kind = ?", string(s.kind)).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to query %s entries: %v", ErrSourceUnavailable, s.kind, err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{Key: row.Word, Value: row.Pronunciation})
	}
	return entries, nil
}
