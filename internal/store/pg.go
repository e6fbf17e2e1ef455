package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/celo-academy/academy-engine/internal/domain"
	"github.com/celo-academy/academy-engine/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates the engine's tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Enrollment{},
		&schema.ModuleCompletion{},
		&schema.KeyValue{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a
// GORM database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CountEnrollments returns the number of mirrored enrollments for a course
func (s *pgStore) CountEnrollments(ctx context.Context, courseSlug string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Enrollment{}).
		Where("course_slug = ?", courseSlug).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}

// UpsertEnrollment records an enrollment mirror row. The sync endpoint must
// stay idempotent, so conflicts on (course_slug, address) are ignored.
func (s *pgStore) UpsertEnrollment(ctx context.Context, courseSlug, address, method string, txHash *string) error {
	row := schema.Enrollment{
		CourseSlug: courseSlug,
		Address:    domain.NormalizeAddress(address),
		Method:     method,
		TxHash:     txHash,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "course_slug"}, {Name: "address"}},
			DoNothing: true,
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert enrollment: %w", err)
	}
	return nil
}

// UpsertModuleCompletion records a module completion mirror row
func (s *pgStore) UpsertModuleCompletion(ctx context.Context, courseSlug, address string, moduleIndex uint32, txHash *string) error {
	row := schema.ModuleCompletion{
		CourseSlug:  courseSlug,
		Address:     domain.NormalizeAddress(address),
		ModuleIndex: moduleIndex,
		TxHash:      txHash,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "course_slug"}, {Name: "address"}, {Name: "module_index"}},
			DoNothing: true,
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert module completion: %w", err)
	}
	return nil
}

// IsEnrollmentMirrored checks whether an enrollment mirror row exists
func (s *pgStore) IsEnrollmentMirrored(ctx context.Context, courseSlug, address string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Enrollment{}).
		Where("course_slug = ? AND address = ?", courseSlug, domain.NormalizeAddress(address)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment mirror: %w", err)
	}
	return count > 0, nil
}

// GetValue retrieves a key-value entry; returns ("", nil) when absent
func (s *pgStore) GetValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValue
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get value: %w", err)
	}
	return kv.Value, nil
}

// SetValue stores a key-value entry, overwriting any existing value
func (s *pgStore) SetValue(ctx context.Context, key, value string) error {
	kv := schema.KeyValue{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// SetValueOnce stores a key-value entry only if the key is absent. The
// smart-account mapping is write-once per owner, so a concurrent or stale
// writer must never clobber an observed address.
func (s *pgStore) SetValueOnce(ctx context.Context, key, value string) (string, error) {
	kv := schema.KeyValue{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(&kv).Error
	if err != nil {
		return "", fmt.Errorf("failed to set value: %w", err)
	}

	// Read back so the caller sees whichever value won
	return s.GetValue(ctx, key)
}

// DeleteValue removes a key-value entry
func (s *pgStore) DeleteValue(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&schema.KeyValue{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}
