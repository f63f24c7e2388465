package persistence

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCommissionRepository implements crm.CommissionRepository using GORM
type GormCommissionRepository struct {
	db *gorm.DB
}

// NewGormCommissionRepository creates a new GormCommissionRepository
func NewGormCommissionRepository(db *gorm.DB) *GormCommissionRepository {
	return &GormCommissionRepository{db: db}
}

// FindByID finds a commission by its ID
func (r *GormCommissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Commission, error) {
	var commission crm.Commission
	if err := r.db.WithContext(ctx).Preload("Client").First(&commission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &commission, nil
}

// FindAll returns all commissions with their clients, newest period first
func (r *GormCommissionRepository) FindAll(ctx context.Context) ([]crm.Commission, error) {
	var commissions []crm.Commission
	if err := r.db.WithContext(ctx).Preload("Client").Order("period desc").Find(&commissions).Error; err != nil {
		return nil, err
	}
	return commissions, nil
}

// Save persists a commission
func (r *GormCommissionRepository) Save(ctx context.Context, commission *crm.Commission) error {
	return r.db.WithContext(ctx).Omit("Client").Save(commission).Error
}

// Delete removes a commission by ID
func (r *GormCommissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&crm.Commission{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByKey reports whether another commission occupies the natural key
func (r *GormCommissionRepository) ExistsByKey(ctx context.Context, key crm.NaturalKey, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&crm.Commission{}).
		Where("client_id = ? AND period = ?", key.ClientID, key.Period)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByKey returns the commission occupying the natural key
func (r *GormCommissionRepository) FindByKey(ctx context.Context, key crm.NaturalKey) (*crm.Commission, error) {
	var commission crm.Commission
	if err := r.db.WithContext(ctx).Preload("Client").
		Where("client_id = ? AND period = ?", key.ClientID, key.Period).
		First(&commission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &commission, nil
}
