package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mvaldes-dev/portfolio-api/internal/models"
)

// StatusRepository persists status check pings.
type StatusRepository interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	ListAll(ctx context.Context) ([]models.StatusCheck, error)
}

type statusRepository struct {
	db *gorm.DB
}

// NewStatusRepository constructs a repository backed by GORM.
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	return r.db.WithContext(ctx).Create(check).Error
}

func (r *statusRepository) ListAll(ctx context.Context) ([]models.StatusCheck, error) {
	checks := make([]models.StatusCheck, 0)
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&checks).
		Error
	if err != nil {
		return nil, err
	}
	return checks, nil
}
