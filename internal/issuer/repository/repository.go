package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/invoicepilot/internal/issuer/domain"
	"gorm.io/gorm"
)

type issuerRepository struct{}

// Provide returns the gorm-backed issuer profile repository.
func Provide() domain.Repository {
	return &issuerRepository{}
}

func (r *issuerRepository) Find(ctx context.Context, db *gorm.DB) (*domain.Profile, error) {
	var profile domain.Profile
	err := db.WithContext(ctx).Order("id ASC").First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *issuerRepository) Save(ctx context.Context, db *gorm.DB, profile *domain.Profile) error {
	return db.WithContext(ctx).Save(profile).Error
}
