package form

import (
	"github.com/crm/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ApplyCascade resolves the cascade rules fired by a change to
// changedField and returns the partial update to apply atomically. The
// new value is normally the related record just picked; both the plain
// object and the one-element collection join shapes are accepted.
//
// Autofill only ever writes fields that are currently empty, so typed
// user input survives re-selection. The one exception is a Primary rule
// on a brand-new record, which overwrites its whole target set. A rule
// never writes its own trigger and targets carry no outgoing cascade
// edges, so applying the update cannot fire the engine again.
func ApplyCascade(schema *Schema, changedField string, newValue any, state *State) Update {
	update := make(Update)
	record := shared.NormalizeRelation(newValue)
	for _, rule := range schema.Cascades() {
		if rule.Trigger != changedField {
			continue
		}
		if record == nil {
			continue
		}
		overwrite := rule.Primary && state.IsNew
		for target, sourcePath := range rule.Targets {
			if target == changedField {
				continue
			}
			if !overwrite && state.Value(target) != "" {
				continue
			}
			value := record.Field(sourcePath)
			if value == "" && !overwrite {
				continue
			}
			if field, ok := schema.Field(target); ok {
				value = FormatValue(field.Format, value)
			}
			update[target] = value
		}
	}
	return update
}

// ComputeDerived recomputes every derived field from the current state
// and returns the fields whose value changed. It is pure and total:
// missing or unparseable operands contribute zero, never an error.
func ComputeDerived(schema *Schema, state *State) Update {
	update := make(Update)
	for _, rule := range schema.Derived() {
		values := make(map[string]string, len(rule.Inputs))
		for _, input := range rule.Inputs {
			values[input] = state.Value(input)
		}
		computed := rule.Compute(values)
		if computed != state.Value(rule.Target) {
			update[rule.Target] = computed
		}
	}
	return update
}

// AmountTimesRate builds the canonical derived computation: the product
// of a currency field and a percentage field divided by 100, rendered
// as a currency amount.
func AmountTimesRate(amountField, rateField string) func(values map[string]string) string {
	return func(values map[string]string) string {
		amount := ParseAmount(values[amountField])
		rate := ParseAmount(values[rateField])
		result := amount.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
		return FormatDecimal(result)
	}
}
