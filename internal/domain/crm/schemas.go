package crm

import (
	"fmt"

	"github.com/crm/backend/internal/domain/form"
)

// Schema names used by the entry screens
const (
	SchemaClient     = "client"
	SchemaProspect   = "prospect"
	SchemaCommission = "commission"
	SchemaVisit      = "visit"
)

// PostalCodeField is the trigger of the address-resolution cascade in
// every schema that carries an address block.
const PostalCodeField = "postal_code"

var schemas = map[string]*form.Schema{
	SchemaClient:     buildClientSchema(),
	SchemaProspect:   buildProspectSchema(),
	SchemaCommission: buildCommissionSchema(),
	SchemaVisit:      buildVisitSchema(),
}

// SchemaByName returns the shared schema for one of the entry forms
func SchemaByName(name string) (*form.Schema, bool) {
	s, ok := schemas[name]
	return s, ok
}

// SchemaNames lists the registered form schemas
func SchemaNames() []string {
	return []string{SchemaClient, SchemaProspect, SchemaCommission, SchemaVisit}
}

// addressTargets maps the address block fields onto the resolver result
func addressTargets() map[string]string {
	return map[string]string{
		"street":       "street",
		"neighborhood": "neighborhood",
		"city":         "city",
		"state":        "state",
	}
}

func buildClientSchema() *form.Schema {
	schema := mustSchema(SchemaClient, []form.Field{
		{Name: "prospect_id", Label: "Prospect", Required: true},
		{Name: "name", Label: "Name", Required: true},
		{Name: "tax_id", Label: "Tax ID", Required: true, Format: form.FormatTaxID},
		{Name: "vendor", Label: "Vendor"},
		{Name: "contact", Label: "Contact"},
		{Name: "phone", Label: "Phone", Format: form.FormatPhone},
		{Name: "email", Label: "Email", Format: form.FormatEmail},
		{Name: PostalCodeField, Label: "Postal code", Format: form.FormatPostalCode},
		{Name: "street", Label: "Street"},
		{Name: "neighborhood", Label: "Neighborhood"},
		{Name: "city", Label: "City"},
		{Name: "state", Label: "State"},
		{Name: "competitor", Label: "Competitor"},
		{Name: "contract_value", Label: "Contract value", Format: form.FormatCurrency},
		{Name: "commission_rate", Label: "Commission rate", Format: form.FormatPercent},
		{Name: "commission_amount", Label: "Commission amount", Format: form.FormatCurrency},
	})
	// Picking the prospect that originated the client fills the whole
	// contact and address block on a brand-new form.
	mustCascade(schema, form.CascadeRule{
		Trigger: "prospect_id",
		Primary: true,
		Targets: map[string]string{
			"name":          "name",
			"contact":       "contact",
			"phone":         "phone",
			"email":         "email",
			PostalCodeField: "postal_code",
			"street":        "street",
			"neighborhood":  "neighborhood",
			"city":          "city",
			"state":         "state",
			"competitor":    "competitor",
		},
	})
	mustCascade(schema, form.CascadeRule{
		Trigger: PostalCodeField,
		Targets: addressTargets(),
	})
	mustDerived(schema, form.DerivedRule{
		Target:  "commission_amount",
		Inputs:  []string{"contract_value", "commission_rate"},
		Compute: form.AmountTimesRate("contract_value", "commission_rate"),
	})
	return schema
}

func buildProspectSchema() *form.Schema {
	schema := mustSchema(SchemaProspect, []form.Field{
		{Name: "name", Label: "Name", Required: true},
		{Name: "contact", Label: "Contact"},
		{Name: "phone", Label: "Phone", Format: form.FormatPhone},
		{Name: "email", Label: "Email", Format: form.FormatEmail},
		{Name: PostalCodeField, Label: "Postal code", Format: form.FormatPostalCode},
		{Name: "street", Label: "Street"},
		{Name: "neighborhood", Label: "Neighborhood"},
		{Name: "city", Label: "City"},
		{Name: "state", Label: "State"},
		{Name: "competitor", Label: "Competitor"},
		{Name: "notes", Label: "Notes"},
	})
	mustCascade(schema, form.CascadeRule{
		Trigger: PostalCodeField,
		Targets: addressTargets(),
	})
	return schema
}

func buildCommissionSchema() *form.Schema {
	schema := mustSchema(SchemaCommission, []form.Field{
		{Name: "client_id", Label: "Client", Required: true},
		{Name: "period", Label: "Billing period", Required: true, Format: form.FormatPeriod},
		{Name: "vendor", Label: "Vendor"},
		{Name: "contract_value", Label: "Contract value", Required: true, Format: form.FormatCurrency},
		{Name: "commission_rate", Label: "Commission rate", Required: true, Format: form.FormatPercent},
		{Name: "commission_amount", Label: "Commission amount", Format: form.FormatCurrency},
	})
	// Picking the client seeds the commercial terms agreed on the
	// client record.
	mustCascade(schema, form.CascadeRule{
		Trigger: "client_id",
		Primary: true,
		Targets: map[string]string{
			"vendor":          "vendor",
			"contract_value":  "contract_value",
			"commission_rate": "commission_rate",
		},
	})
	mustDerived(schema, form.DerivedRule{
		Target:  "commission_amount",
		Inputs:  []string{"contract_value", "commission_rate"},
		Compute: form.AmountTimesRate("contract_value", "commission_rate"),
	})
	return schema
}

func buildVisitSchema() *form.Schema {
	schema := mustSchema(SchemaVisit, []form.Field{
		{Name: "prospect_id", Label: "Prospect", Required: true},
		{Name: "date", Label: "Visit date", Required: true, Format: form.FormatDate},
		{Name: "contact", Label: "Contact"},
		{Name: "phone", Label: "Phone", Format: form.FormatPhone},
		{Name: "outcome", Label: "Outcome"},
		{Name: "notes", Label: "Notes"},
	})
	mustCascade(schema, form.CascadeRule{
		Trigger: "prospect_id",
		Primary: true,
		Targets: map[string]string{
			"contact": "contact",
			"phone":   "phone",
		},
	})
	return schema
}

// The schemas are static program data; a broken rule is a programming
// error caught at startup.

func mustSchema(name string, fields []form.Field) *form.Schema {
	schema, err := form.NewSchema(name, fields)
	if err != nil {
		panic(fmt.Sprintf("crm: building schema %s: %v", name, err))
	}
	return schema
}

func mustCascade(schema *form.Schema, rule form.CascadeRule) {
	if err := schema.AddCascade(rule); err != nil {
		panic(fmt.Sprintf("crm: cascade on %s: %v", schema.Name, err))
	}
}

func mustDerived(schema *form.Schema, rule form.DerivedRule) {
	if err := schema.AddDerived(rule); err != nil {
		panic(fmt.Sprintf("crm: derived rule on %s: %v", schema.Name, err))
	}
}
