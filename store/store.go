package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Port is the persistence contract the ledger consumes: whole named
// collections read and replaced as opaque blobs. There is no partial
// update; every write serializes the entire affected collection.
type Port interface {
	// Read returns the previously written blob for a collection, or
	// ok=false when nothing has been written yet.
	Read(collection string) (data []byte, ok bool, err error)
	// Write replaces the entire named collection.
	Write(collection string, data []byte) error
}

// Collection is one persisted collection blob.
type Collection struct {
	Name string `gorm:"primaryKey"`
	Data []byte
}

// SQLite keeps every collection in a single local database file.
type SQLite struct {
	db *gorm.DB
}

// Open opens (creating if needed) the database at path. Use ":memory:"
// for a throwaway store.
func Open(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Collection{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Read(collection string) ([]byte, bool, error) {
	var record Collection
	err := s.db.First(&record, "name = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read collection %s: %w", collection, err)
	}
	return record.Data, true, nil
}

func (s *SQLite) Write(collection string, data []byte) error {
	record := Collection{Name: collection, Data: data}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error; err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}
