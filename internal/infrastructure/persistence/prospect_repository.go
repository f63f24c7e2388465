package persistence

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProspectRepository implements crm.ProspectRepository using GORM
type GormProspectRepository struct {
	db *gorm.DB
}

// NewGormProspectRepository creates a new GormProspectRepository
func NewGormProspectRepository(db *gorm.DB) *GormProspectRepository {
	return &GormProspectRepository{db: db}
}

// FindByID finds a prospect by its ID
func (r *GormProspectRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Prospect, error) {
	var prospect crm.Prospect
	if err := r.db.WithContext(ctx).First(&prospect, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &prospect, nil
}

// FindAll returns all prospects ordered by name
func (r *GormProspectRepository) FindAll(ctx context.Context) ([]crm.Prospect, error) {
	var prospects []crm.Prospect
	if err := r.db.WithContext(ctx).Order("name").Find(&prospects).Error; err != nil {
		return nil, err
	}
	return prospects, nil
}

// Save persists a prospect
func (r *GormProspectRepository) Save(ctx context.Context, prospect *crm.Prospect) error {
	return r.db.WithContext(ctx).Save(prospect).Error
}

// Delete removes a prospect by ID
func (r *GormProspectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&crm.Prospect{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
