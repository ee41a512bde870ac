package activity

import (
	"context"

	"gorm.io/gorm"

	"github.com/perfectbooks/stock-api/pkg/db/models"
)

// Repository exposes persistence for the append-only activity log. There is
// deliberately no update or delete surface.
type Repository interface {
	Create(ctx context.Context, entry *models.Activity) error
	ListRecent(ctx context.Context, limit int) ([]models.Activity, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an activity repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, entry *models.Activity) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repositoryImpl) ListRecent(ctx context.Context, limit int) ([]models.Activity, error) {
	var entries []models.Activity
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
