package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotRecord is the single table GormStore owns. Value is an opaque
// JSON blob; GormStore never inspects its contents, matching spec.md §1's
// "opaque snapshot store" Non-goal.
type snapshotRecord struct {
	Key       string `gorm:"primaryKey"`
	Value     datatypes.JSON
	UpdatedAt time.Time
}

func (snapshotRecord) TableName() string { return "simcore_snapshots" }

// GormStore persists snapshot blobs through GORM, grounded on the
// teacher's internal/database migrator/seeder idiom (AutoMigrate once at
// construction, zap.Error on failure, fmt.Errorf wrapping). Works over
// either gorm.io/driver/postgres or gorm.io/driver/sqlite — the caller
// picks the dialector.
type GormStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormStore runs AutoMigrate for the snapshot table and returns a ready
// GormStore.
func NewGormStore(db *gorm.DB, logger *zap.Logger) (*GormStore, error) {
	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		logger.Error("failed to migrate snapshot table", zap.Error(err))
		return nil, fmt.Errorf("store: automigrate: %w", err)
	}
	return &GormStore{db: db, logger: logger}, nil
}

func (g *GormStore) Put(ctx context.Context, key string, value []byte) error {
	rec := snapshotRecord{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		g.logger.Error("failed to upsert snapshot", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("store: gorm put: %w", err)
	}
	return nil
}

func (g *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec snapshotRecord
	err := g.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: gorm get: %w", err)
	}
	return []byte(rec.Value), true, nil
}

func (g *GormStore) Delete(ctx context.Context, key string) error {
	if err := g.db.WithContext(ctx).Where("key = ?", key).Delete(&snapshotRecord{}).Error; err != nil {
		return fmt.Errorf("store: gorm delete: %w", err)
	}
	return nil
}
