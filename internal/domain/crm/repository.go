package crm

import (
	"context"

	"github.com/google/uuid"
)

// ClientRepository is the persistence port for clients
type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindAll(ctx context.Context) ([]Client, error)
	Save(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsByTaxID reports whether another client carries the same tax
	// ID. Pass uuid.Nil as excludeID when creating.
	ExistsByTaxID(ctx context.Context, taxID string, excludeID uuid.UUID) (bool, error)
}

// ProspectRepository is the persistence port for prospects
type ProspectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Prospect, error)
	FindAll(ctx context.Context) ([]Prospect, error)
	Save(ctx context.Context, prospect *Prospect) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommissionRepository is the persistence port for commissions
type CommissionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Commission, error)
	FindAll(ctx context.Context) ([]Commission, error)
	Save(ctx context.Context, commission *Commission) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ExistsByKey reports whether another commission occupies the same
	// natural key. Pass uuid.Nil as excludeID when creating.
	ExistsByKey(ctx context.Context, key NaturalKey, excludeID uuid.UUID) (bool, error)
	// FindByKey returns the occupying commission, for conflict display
	FindByKey(ctx context.Context, key NaturalKey) (*Commission, error)
}

// VisitRepository is the persistence port for visits
type VisitRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Visit, error)
	FindAll(ctx context.Context) ([]Visit, error)
	Save(ctx context.Context, visit *Visit) error
	Delete(ctx context.Context, id uuid.UUID) error
}
