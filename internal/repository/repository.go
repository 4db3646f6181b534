// internal/repository/repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/schemagen/internal/model"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables owned by the repositories.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.ParseRecord{}); err != nil {
		return fmt.Errorf("failed to migrate parse records: %w", err)
	}
	return nil
}
