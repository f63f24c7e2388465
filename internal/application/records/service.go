// Package records serves the CRM list screens: each collection is
// loaded, denormalized into filterable rows and narrowed in memory by
// the caller's criteria and sort.
package records

import (
	"context"

	"github.com/crm/backend/internal/domain/collection"
	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
)

// Service answers list queries over the CRM collections
type Service struct {
	clients     crm.ClientRepository
	prospects   crm.ProspectRepository
	commissions crm.CommissionRepository
	visits      crm.VisitRepository
}

// NewService creates a new records service
func NewService(
	clients crm.ClientRepository,
	prospects crm.ProspectRepository,
	commissions crm.CommissionRepository,
	visits crm.VisitRepository,
) *Service {
	return &Service{
		clients:     clients,
		prospects:   prospects,
		commissions: commissions,
		visits:      visits,
	}
}

// Query is one list request: filter first, then sort
type Query struct {
	Criteria collection.Criteria
	Sort     collection.SortSpec
}

// ListClients returns the client rows matching the query
func (s *Service) ListClients(ctx context.Context, q Query) ([]shared.Record, error) {
	clients, err := s.clients.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]shared.Record, 0, len(clients))
	for i := range clients {
		records = append(records, clients[i].AsRecord())
	}
	return narrow(records, q), nil
}

// ListProspects returns the prospect rows matching the query
func (s *Service) ListProspects(ctx context.Context, q Query) ([]shared.Record, error) {
	prospects, err := s.prospects.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]shared.Record, 0, len(prospects))
	for i := range prospects {
		records = append(records, prospects[i].AsRecord())
	}
	return narrow(records, q), nil
}

// ListCommissions returns the commission rows matching the query, each
// carrying its embedded client relation.
func (s *Service) ListCommissions(ctx context.Context, q Query) ([]shared.Record, error) {
	commissions, err := s.commissions.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]shared.Record, 0, len(commissions))
	for i := range commissions {
		records = append(records, commissions[i].AsRecord())
	}
	return narrow(records, q), nil
}

// ListVisits returns the visit rows matching the query, each carrying
// its embedded prospect relation.
func (s *Service) ListVisits(ctx context.Context, q Query) ([]shared.Record, error) {
	visits, err := s.visits.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]shared.Record, 0, len(visits))
	for i := range visits {
		records = append(records, visits[i].AsRecord())
	}
	return narrow(records, q), nil
}

func narrow(records []shared.Record, q Query) []shared.Record {
	return collection.Sort(collection.Filter(records, q.Criteria), q.Sort)
}
