package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvEntry is one row of the kv_entries table
type kvEntry struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value;not null"`
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// SQLiteStorage keeps keys in a sqlite database through gorm. Several processes
// may open the same database file.
type SQLiteStorage struct {
	db *gorm.DB
}

// NewSQLiteStorage opens (or creates) the database at dbPath and migrates the schema
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Get returns the value stored under key
func (s *SQLiteStorage) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}

	var entry kvEntry
	err := s.db.Where(&kvEntry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set inserts or replaces the value under key
func (s *SQLiteStorage) Set(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&kvEntry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Remove deletes key; removing a missing key is not an error
func (s *SQLiteStorage) Remove(key string) error {
	if key == "" {
		return nil
	}
	if err := s.db.Delete(&kvEntry{Key: key}).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle
func (s *SQLiteStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
