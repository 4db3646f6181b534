// internal/repository/parse_record.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/schemagen/internal/domain"
	"github.com/dangerclosesec/schemagen/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParseRecordRepositoryIface interface {
	Create(ctx context.Context, record *model.ParseRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ParseRecord, error)
	FindRecent(ctx context.Context, limit int) ([]*model.ParseRecord, error)
	DeleteOlderThan(ctx context.Context, keep int) (int64, error)
}

type ParseRecordRepository struct {
	db *gorm.DB
}

func NewParseRecordRepository(db *gorm.DB) *ParseRecordRepository {
	return &ParseRecordRepository{db: db}
}

func (r *ParseRecordRepository) Create(ctx context.Context, record *model.ParseRecord) error {
	result := r.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		return fmt.Errorf("failed to create parse record: %w", result.Error)
	}
	return nil
}

func (r *ParseRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ParseRecord, error) {
	var record model.ParseRecord
	result := r.db.WithContext(ctx).First(&record, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find parse record: %w", result.Error)
	}
	return &record, nil
}

// FindRecent returns the newest records first.
func (r *ParseRecordRepository) FindRecent(ctx context.Context, limit int) ([]*model.ParseRecord, error) {
	var records []*model.ParseRecord
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list parse records: %w", result.Error)
	}
	return records, nil
}

// DeleteOlderThan keeps the newest keep records and removes the rest.
func (r *ParseRecordRepository) DeleteOlderThan(ctx context.Context, keep int) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		newest := tx.Model(&model.ParseRecord{}).
			Select("id").
			Order("created_at DESC").
			Limit(keep)

		result := tx.Where("id NOT IN (?)", newest).Delete(&model.ParseRecord{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to prune parse records: %w", err)
	}
	return deleted, nil
}
