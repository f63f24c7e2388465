package persistence

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVisitRepository implements crm.VisitRepository using GORM
type GormVisitRepository struct {
	db *gorm.DB
}

// NewGormVisitRepository creates a new GormVisitRepository
func NewGormVisitRepository(db *gorm.DB) *GormVisitRepository {
	return &GormVisitRepository{db: db}
}

// FindByID finds a visit by its ID
func (r *GormVisitRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Visit, error) {
	var visit crm.Visit
	if err := r.db.WithContext(ctx).Preload("Prospect").First(&visit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &visit, nil
}

// FindAll returns all visits with their prospects, newest first
func (r *GormVisitRepository) FindAll(ctx context.Context) ([]crm.Visit, error) {
	var visits []crm.Visit
	if err := r.db.WithContext(ctx).Preload("Prospect").Order("date desc").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

// Save persists a visit
func (r *GormVisitRepository) Save(ctx context.Context, visit *crm.Visit) error {
	return r.db.WithContext(ctx).Omit("Prospect").Save(visit).Error
}

// Delete removes a visit by ID
func (r *GormVisitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&crm.Visit{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
