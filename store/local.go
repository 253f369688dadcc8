package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Entry is one stored collection blob.
type Entry struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "content_entries" }

// Local keeps blobs in the local SQLite database.
type Local struct {
	db *gorm.DB
}

// NewLocal migrates the entries table and returns a store backed by db.
func NewLocal(db *gorm.DB) (*Local, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate content_entries: %w", err)
	}
	return &Local{db: db}, nil
}

func (l *Local) Read(ctx context.Context, key Key) ([]byte, error) {
	var e Entry
	if err := l.db.WithContext(ctx).First(&e, "key = ?", string(key)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return []byte(e.Value), nil
}

func (l *Local) Write(ctx context.Context, key Key, payload []byte) error {
	e := Entry{Key: string(key), Value: string(payload)}
	if err := l.db.WithContext(ctx).Save(&e).Error; err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
