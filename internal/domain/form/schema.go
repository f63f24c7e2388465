// Package form implements the shared form engine behind the CRM entry
// screens: field schemas, formatting masks, validation, dependency
// cascades and derived-field computation.
package form

import (
	"fmt"

	"github.com/crm/backend/internal/domain/shared"
)

// Field describes one form field: its identity, display label and the
// rules the validation orchestrator applies to it. Declaration order is
// significant; the first invalid field in order receives focus.
type Field struct {
	Name     string
	Label    string
	Required bool
	Format   FieldFormat
	// ReadOnly marks derived fields the user can never edit directly.
	ReadOnly bool
}

// CascadeRule autofills target fields when its trigger field changes,
// typically when a related record is picked. Targets maps form field
// names to dot-paths inside the selected record. Non-empty user input
// always wins over autofill, except when Primary is set and the form is
// editing a brand-new record: the primary entity picker then overwrites
// the full target set.
type CascadeRule struct {
	Trigger string
	Targets map[string]string
	Primary bool
}

// DerivedRule keeps a read-only target field equal to a pure function
// of its input fields. The rule recomputes synchronously whenever any
// input changes, so a stale derived value is never observable.
type DerivedRule struct {
	Target  string
	Inputs  []string
	Compute func(values map[string]string) string
}

// Schema is the static definition of one entry form
type Schema struct {
	Name       string
	fields     []Field
	fieldIndex map[string]int
	cascades   []CascadeRule
	derived    []DerivedRule
}

// NewSchema builds a schema from fields in declaration order
func NewSchema(name string, fields []Field) (*Schema, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SCHEMA", "Schema name cannot be empty")
	}
	if len(fields) == 0 {
		return nil, shared.NewDomainError("INVALID_SCHEMA", "Schema must declare at least one field")
	}
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, shared.NewDomainError("INVALID_SCHEMA", "Field name cannot be empty")
		}
		if _, ok := index[f.Name]; ok {
			return nil, shared.NewDomainError("INVALID_SCHEMA",
				fmt.Sprintf("Duplicate field %q", f.Name))
		}
		index[f.Name] = i
	}
	return &Schema{
		Name:       name,
		fields:     fields,
		fieldIndex: index,
	}, nil
}

// Fields returns the fields in declaration order
func (s *Schema) Fields() []Field {
	return s.fields
}

// Field looks a field up by name
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.fieldIndex[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// AddCascade registers a cascade rule. Targets must be declared fields
// and must differ from the trigger. Applying a cascade update never
// fires the engine again, so one-directional chains (a picker filling
// the postal code, whose own change event later resolves the address)
// are fine; what is rejected is a pair of rules triggering each other,
// which would ping-pong if the hosting screen replays programmatic
// writes as change events.
func (s *Schema) AddCascade(rule CascadeRule) error {
	if _, ok := s.fieldIndex[rule.Trigger]; !ok {
		return shared.NewDomainError("INVALID_CASCADE",
			fmt.Sprintf("Unknown trigger field %q", rule.Trigger))
	}
	if len(rule.Targets) == 0 {
		return shared.NewDomainError("INVALID_CASCADE", "Cascade must have at least one target")
	}
	for target := range rule.Targets {
		if _, ok := s.fieldIndex[target]; !ok {
			return shared.NewDomainError("INVALID_CASCADE",
				fmt.Sprintf("Unknown target field %q", target))
		}
		if target == rule.Trigger {
			return shared.NewDomainError("INVALID_CASCADE",
				fmt.Sprintf("Cascade on %q cannot write its own trigger", rule.Trigger))
		}
		for _, existing := range s.cascades {
			_, writesBack := existing.Targets[rule.Trigger]
			if existing.Trigger == target && writesBack {
				return shared.NewDomainError("INVALID_CASCADE",
					fmt.Sprintf("Cascades on %q and %q would trigger each other",
						rule.Trigger, existing.Trigger))
			}
		}
	}
	s.cascades = append(s.cascades, rule)
	return nil
}

// AddDerived registers a derived-field rule and marks its target
// read-only. Inputs must be declared fields and the target cannot feed
// another derived rule.
func (s *Schema) AddDerived(rule DerivedRule) error {
	i, ok := s.fieldIndex[rule.Target]
	if !ok {
		return shared.NewDomainError("INVALID_DERIVED",
			fmt.Sprintf("Unknown derived field %q", rule.Target))
	}
	if rule.Compute == nil {
		return shared.NewDomainError("INVALID_DERIVED", "Derived rule requires a compute function")
	}
	for _, input := range rule.Inputs {
		if _, ok := s.fieldIndex[input]; !ok {
			return shared.NewDomainError("INVALID_DERIVED",
				fmt.Sprintf("Unknown input field %q", input))
		}
		if input == rule.Target {
			return shared.NewDomainError("INVALID_DERIVED",
				fmt.Sprintf("Derived field %q cannot be its own input", rule.Target))
		}
		for _, existing := range s.derived {
			if existing.Target == input {
				return shared.NewDomainError("INVALID_DERIVED",
					fmt.Sprintf("Input %q is itself derived", input))
			}
		}
	}
	s.fields[i].ReadOnly = true
	s.derived = append(s.derived, rule)
	return nil
}

// Cascades returns the registered cascade rules
func (s *Schema) Cascades() []CascadeRule {
	return s.cascades
}

// Derived returns the registered derived-field rules
func (s *Schema) Derived() []DerivedRule {
	return s.derived
}
