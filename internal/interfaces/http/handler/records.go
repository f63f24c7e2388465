package handler

import (
	"context"

	"github.com/crm/backend/internal/application/records"
	"github.com/crm/backend/internal/domain/collection"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RecordHandler serves the CRM list screens
type RecordHandler struct {
	BaseHandler
	service *records.Service
}

// NewRecordHandler creates a new RecordHandler
func NewRecordHandler(service *records.Service) *RecordHandler {
	return &RecordHandler{service: service}
}

// RegisterRoutes registers the record list routes
func (h *RecordHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/records")
	{
		group.GET("/clients", h.ListClients)
		group.GET("/prospects", h.ListProspects)
		group.GET("/commissions", h.ListCommissions)
		group.GET("/visits", h.ListVisits)
	}
}

// ListClients lists client rows
func (h *RecordHandler) ListClients(c *gin.Context) {
	h.list(c, h.service.ListClients)
}

// ListProspects lists prospect rows
func (h *RecordHandler) ListProspects(c *gin.Context) {
	h.list(c, h.service.ListProspects)
}

// ListCommissions lists commission rows with their client relation
func (h *RecordHandler) ListCommissions(c *gin.Context) {
	h.list(c, h.service.ListCommissions)
}

// ListVisits lists visit rows with their prospect relation
func (h *RecordHandler) ListVisits(c *gin.Context) {
	h.list(c, h.service.ListVisits)
}

type listFn func(ctx context.Context, q records.Query) ([]shared.Record, error)

func (h *RecordHandler) list(c *gin.Context, fn listFn) {
	var req dto.RecordListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	rows, err := fn(c.Request.Context(), buildQuery(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

func buildQuery(req dto.RecordListRequest) records.Query {
	q := records.Query{Criteria: collection.Criteria{}}
	if req.FilterKey != "" {
		kind := collection.MatchKind(req.FilterKind)
		if kind == "" {
			kind = collection.MatchText
		}
		q.Criteria[req.FilterKey] = collection.Criterion{
			Kind:  kind,
			Value: req.Filter,
			From:  req.From,
			To:    req.To,
		}
	}
	if req.SortKey != "" {
		dir := collection.Direction(req.SortDir)
		if dir == "" {
			dir = collection.Ascending
		}
		q.Sort = collection.SortSpec{
			Key:       req.SortKey,
			Direction: dir,
			Numeric:   req.Numeric,
		}
	}
	return q
}
