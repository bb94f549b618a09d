package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mvaldes-dev/portfolio-api/internal/models"
)

// ContactRepository persists contact messages.
type ContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	ListAll(ctx context.Context) ([]models.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository constructs a repository backed by GORM.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListAll returns every stored message, newest first. An empty store
// yields an empty slice, not an error.
func (r *contactRepository) ListAll(ctx context.Context) ([]models.ContactMessage, error) {
	messages := make([]models.ContactMessage, 0)
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&messages).
		Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
