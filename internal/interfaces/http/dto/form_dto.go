package dto

// SchemaResponse describes one entry-form schema
type SchemaResponse struct {
	Name   string          `json:"name"`
	Fields []FieldResponse `json:"fields"`
}

// FieldResponse describes one form field
type FieldResponse struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
	Format   string `json:"format,omitempty"`
	ReadOnly bool   `json:"read_only"`
}

// ChangeRequest reports one field change on an open form
type ChangeRequest struct {
	Field string `json:"field" binding:"required"`
	// Value is the new raw value; pickers send the selected record as
	// an object (or a one-element array of objects).
	Value  interface{}       `json:"value"`
	Values map[string]string `json:"values"`
	IsNew  bool              `json:"is_new"`
}

// ChangeResponse carries the cascaded partial update and the resulting
// full form state.
type ChangeResponse struct {
	Update map[string]string `json:"update"`
	Values map[string]string `json:"values"`
}

// FormatRequest asks for a field's display mask over raw input
type FormatRequest struct {
	Field string `json:"field" binding:"required"`
	Raw   string `json:"raw"`
}

// FormatResponse carries a masked value
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// ValidateRequest runs a validation pass over form values
type ValidateRequest struct {
	Values map[string]string `json:"values" binding:"required"`
	IsNew  bool              `json:"is_new"`
}

// SubmitRequest submits a form for persistence
type SubmitRequest struct {
	Values map[string]string `json:"values" binding:"required"`
	// RecordID is empty when creating a new record
	RecordID string `json:"record_id" binding:"omitempty,uuid"`
}

// ConfirmRequest persists a pending payload after the user chose to
// save despite the duplicate warning.
type ConfirmRequest struct {
	Schema   string            `json:"schema" binding:"required"`
	RecordID string            `json:"record_id" binding:"omitempty,uuid"`
	Values   map[string]string `json:"values" binding:"required"`
}

// ResolveAddressRequest resolves the postal code typed into a form and
// applies the result through the address cascade.
type ResolveAddressRequest struct {
	Code string `json:"code" binding:"required"`
	// Field names the postal-code field the lookup belongs to; it
	// defaults to the schema's standard postal-code field.
	Field  string            `json:"field"`
	Values map[string]string `json:"values"`
	IsNew  bool              `json:"is_new"`
}

// DuplicateCheckRequest probes the natural key without submitting
type DuplicateCheckRequest struct {
	Values    map[string]string `json:"values" binding:"required"`
	ExcludeID string            `json:"exclude_id" binding:"omitempty,uuid"`
}

// DuplicateCheckResponse reports the probe result
type DuplicateCheckResponse struct {
	Duplicate bool `json:"duplicate"`
}

// SavedResponse reports a persisted record
type SavedResponse struct {
	RecordID string `json:"record_id"`
}

// RecordListRequest narrows and orders a record listing
type RecordListRequest struct {
	FilterKey  string `form:"filter_key"`
	FilterKind string `form:"filter_kind" binding:"omitempty,oneof=text exact date_range"`
	Filter     string `form:"filter"`
	From       string `form:"from"`
	To         string `form:"to"`
	SortKey    string `form:"sort_key"`
	SortDir    string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Numeric    bool   `form:"numeric"`
}
