// Package db opens the sqlite store and keeps its schema current.
package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/suPer8Hu/chat-api/internal/message"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the sqlite file at path, creating the parent
// directory when needed. TranslateError maps unique-constraint
// violations to gorm.ErrDuplicatedKey so the domain layer can tell a
// duplicate apart from an infrastructure failure.
func Open(path, mode string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	gormLogger := logger.Default.LogMode(logger.Info)
	if mode == "release" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return gdb, nil
}

// Migrate ensures the messages table exists. Safe to run on every
// startup.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&message.Message{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
