package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"clearit/logging"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// AppSetting is one persisted toggle row
type AppSetting struct {
	Namespace string    `gorm:"primaryKey;size:64"`
	Key       string    `gorm:"primaryKey;size:64"`
	Value     bool      `gorm:"not null"`
	UpdatedAt time.Time
}

// SQLStore persists values in a SQLite database through GORM
type SQLStore struct {
	db        *gorm.DB
	namespace string
	logger    *zap.Logger
}

// NewSQLStore opens (or creates) the database at path and migrates the
// settings table.
func NewSQLStore(path, namespace string, log *zap.Logger) (*SQLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path+"?_pragma=busy_timeout(5000)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open settings database: %w", err)
	}
	if err := db.AutoMigrate(&AppSetting{}); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("migrate settings database: %w", err)
	}

	return &SQLStore{
		db:        db,
		namespace: namespace,
		logger:    logging.OrNop(log).With(zap.String("store", path)),
	}, nil
}

// Bool returns the stored value or fallback. Query errors are logged and
// resolve to fallback.
func (s *SQLStore) Bool(key string, fallback bool) bool {
	var row AppSetting
	err := s.db.First(&row, "namespace = ? AND key = ?", s.namespace, key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("read setting", zap.String("key", key), zap.Error(err))
		}
		return fallback
	}
	return row.Value
}

// SetBool upserts the value. Write failures are logged.
func (s *SQLStore) SetBool(key string, value bool) {
	row := AppSetting{Namespace: s.namespace, Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		s.logger.Error("write setting", zap.String("key", key), zap.Error(err))
	}
}

// Keys returns the stored keys of the namespace
func (s *SQLStore) Keys() []string {
	var keys []string
	if err := s.db.Model(&AppSetting{}).Where("namespace = ?", s.namespace).Order("key").Pluck("key", &keys).Error; err != nil {
		s.logger.Warn("list settings", zap.Error(err))
		return nil
	}
	return keys
}

// Close closes the underlying connection pool
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
