package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

type modelInfo struct {
	model     interface{}
	tableName string
}

// models is ordered parent-first so foreign keys resolve on fresh databases
func models() []modelInfo {
	return []modelInfo{
		{&domain.User{}, "users"},
		{&domain.Board{}, "boards"},
		{&domain.List{}, "lists"},
		{&domain.Label{}, "labels"},
		{&domain.Card{}, "cards"},
		{&domain.CardLabel{}, "card_labels"},
		{&domain.CardMember{}, "card_members"},
		{&domain.Checklist{}, "checklists"},
		{&domain.ChecklistItem{}, "checklist_items"},
		{&domain.Attachment{}, "attachments"},
		{&domain.Comment{}, "comments"},
	}
}

// AutoMigrate creates or updates every table, index and foreign key
func AutoMigrate(db *gorm.DB) error {
	all := models()
	list := make([]interface{}, 0, len(all))
	for _, m := range all {
		list = append(list, m.model)
	}

	if err := db.AutoMigrate(list...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// SafeAutoMigrate migrates table by table and logs whether each one existed
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	all := models()

	logger.Info("Starting auto-migration", zap.Int("total_models", len(all)))

	for _, m := range all {
		existed := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", existed),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Debug("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", existed),
		)
	}

	logger.Info("Auto-migration completed", zap.Int("tables_migrated", len(all)))
	return nil
}

// SafeAutoMigrateWithRetry retries SafeAutoMigrate with linear backoff
func SafeAutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = SafeAutoMigrate(db, logger); err == nil {
			return nil
		}
		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}
	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
