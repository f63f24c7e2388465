package handler

import (
	appaddress "github.com/crm/backend/internal/application/address"
	"github.com/crm/backend/internal/application/forms"
	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/form"
	"github.com/crm/backend/internal/infrastructure/telemetry"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FormHandler serves the entry-form engine: schemas, field changes,
// formatting, validation and the duplicate-gated submit.
type FormHandler struct {
	BaseHandler
	service  *forms.Service
	resolver *appaddress.Resolver
	metrics  *telemetry.Metrics
}

// FormOption configures a FormHandler
type FormOption func(*FormHandler)

// WithFormMetrics instruments submit and duplicate-check outcomes
func WithFormMetrics(metrics *telemetry.Metrics) FormOption {
	return func(h *FormHandler) {
		h.metrics = metrics
	}
}

// NewFormHandler creates a new FormHandler
func NewFormHandler(service *forms.Service, resolver *appaddress.Resolver, opts ...FormOption) *FormHandler {
	h := &FormHandler{service: service, resolver: resolver}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes registers the form routes
func (h *FormHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/forms")
	{
		group.GET("", h.ListSchemas)
		group.GET("/:schema", h.GetSchema)
		group.POST("/:schema/change", h.Change)
		group.POST("/:schema/format", h.Format)
		group.POST("/:schema/validate", h.Validate)
		group.POST("/:schema/submit", h.Submit)
		group.POST("/:schema/confirm", h.Confirm)
		group.POST("/:schema/duplicate-check", h.DuplicateCheck)
		group.POST("/:schema/resolve-address", h.ResolveAddress)
	}
}

// ListSchemas returns the registered form schema names
func (h *FormHandler) ListSchemas(c *gin.Context) {
	h.Success(c, crm.SchemaNames())
}

// GetSchema returns one form schema definition
func (h *FormHandler) GetSchema(c *gin.Context) {
	schema, err := h.service.Schema(c.Param("schema"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	fields := make([]dto.FieldResponse, 0, len(schema.Fields()))
	for _, field := range schema.Fields() {
		fields = append(fields, dto.FieldResponse{
			Name:     field.Name,
			Label:    field.Label,
			Required: field.Required,
			Format:   string(field.Format),
			ReadOnly: field.ReadOnly,
		})
	}
	h.Success(c, dto.SchemaResponse{Name: schema.Name, Fields: fields})
}

// Change applies one field change, returning the cascaded update and
// the resulting form state.
func (h *FormHandler) Change(c *gin.Context) {
	var req dto.ChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	state := form.NewStateFromValues(req.IsNew, req.Values)
	update, err := h.service.ApplyChange(c.Param("schema"), req.Field, req.Value, state)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.ChangeResponse{
		Update: update,
		Values: state.Snapshot(),
	})
}

// Format applies a field's display mask to raw input
func (h *FormHandler) Format(c *gin.Context) {
	var req dto.FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	formatted, err := h.service.FormatField(c.Param("schema"), req.Field, req.Raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.FormatResponse{Formatted: formatted})
}

// Validate runs a full validation pass without persisting
func (h *FormHandler) Validate(c *gin.Context) {
	var req dto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	state := form.NewStateFromValues(req.IsNew, req.Values)
	result, err := h.service.Validate(c.Param("schema"), state)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Submit validates and persists the form, pausing on a duplicate key
func (h *FormHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	recordID := uuid.Nil
	if req.RecordID != "" {
		parsed, err := uuid.Parse(req.RecordID)
		if err != nil {
			h.BadRequest(c, "Invalid record id")
			return
		}
		recordID = parsed
	}

	schema := c.Param("schema")
	state := form.NewStateFromValues(recordID == uuid.Nil, req.Values)
	result, err := h.service.Submit(c.Request.Context(), schema, state, recordID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordSubmit(c.Request.Context(), schema, string(result.Status))
	}
	h.Success(c, result)
}

// Confirm persists a pending payload the user chose to save anyway
func (h *FormHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	recordID := uuid.Nil
	if req.RecordID != "" {
		parsed, err := uuid.Parse(req.RecordID)
		if err != nil {
			h.BadRequest(c, "Invalid record id")
			return
		}
		recordID = parsed
	}

	id, err := h.service.ConfirmSave(c.Request.Context(), &forms.PendingSave{
		Schema:   req.Schema,
		RecordID: recordID,
		Values:   req.Values,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.SavedResponse{RecordID: id.String()})
}

// ResolveAddress looks up the postal code typed into the form and
// feeds the result back through the address cascade. Fields the user
// already typed stay untouched; a failed or superseded lookup leaves
// the form state alone.
func (h *FormHandler) ResolveAddress(c *gin.Context) {
	var req dto.ResolveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	field := req.Field
	if field == "" {
		field = crm.PostalCodeField
	}
	resolved, err := h.resolver.Resolve(c.Request.Context(), field, req.Code)
	if err != nil {
		h.LookupError(c, err)
		return
	}

	state := form.NewStateFromValues(req.IsNew, req.Values)
	update, err := h.service.ApplyResolvedAddress(c.Param("schema"), resolved, state)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ChangeResponse{
		Update: update,
		Values: state.Snapshot(),
	})
}

// DuplicateCheck probes the natural key without submitting
func (h *FormHandler) DuplicateCheck(c *gin.Context) {
	var req dto.DuplicateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	excludeID := uuid.Nil
	if req.ExcludeID != "" {
		parsed, err := uuid.Parse(req.ExcludeID)
		if err != nil {
			h.BadRequest(c, "Invalid exclude id")
			return
		}
		excludeID = parsed
	}

	schema := c.Param("schema")
	duplicate, err := h.service.CheckDuplicate(c.Request.Context(), schema, req.Values, excludeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordDuplicateCheck(c.Request.Context(), schema, duplicate)
	}
	h.Success(c, dto.DuplicateCheckResponse{Duplicate: duplicate})
}
