package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"jornada-registro-api/internal/domain"
)

// models lists every domain model in dependency order. The unique indexes
// declared on these structs (email, bracelet, attendance pair, membership
// pair) are the final arbiter for the check-then-insert sequences in the
// service layer.
func models() []interface{} {
	return []interface{}{
		&domain.Participant{},
		&domain.Activity{},
		&domain.Attendance{},
		&domain.Team{},
		&domain.TeamMember{},
	}
}

// AutoMigrate creates or updates the schema for all domain models
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// AutoMigrateWithRetry runs AutoMigrate with linear backoff, for startup
// against a database that may still be warming up
func AutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = AutoMigrate(db); err == nil {
			logger.Info("Database migrations completed", zap.Int("attempt", attempt))
			return nil
		}
		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}
	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
