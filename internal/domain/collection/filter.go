// Package collection implements the in-memory filtering and sorting
// layer behind the CRM list screens. Records arrive as denormalized
// rows whose relations may be embedded objects or one-element arrays;
// both shapes are treated identically.
package collection

import (
	"strings"

	"github.com/crm/backend/internal/domain/shared"
)

// MatchKind selects the predicate applied by a criterion
type MatchKind string

const (
	// MatchText is a case-insensitive substring match
	MatchText MatchKind = "text"
	// MatchExact compares identifiers as strings, avoiding numeric
	// type mismatches between JSON payloads and filter state
	MatchExact MatchKind = "exact"
	// MatchDateRange is an inclusive lexicographic range over ISO dates
	MatchDateRange MatchKind = "date_range"
)

// Criterion is one declarative predicate over a field or relation path
type Criterion struct {
	Kind  MatchKind `json:"kind"`
	Value string    `json:"value,omitempty"`
	From  string    `json:"from,omitempty"`
	To    string    `json:"to,omitempty"`
}

// empty criteria never exclude a record
func (c Criterion) empty() bool {
	switch c.Kind {
	case MatchDateRange:
		return c.From == "" && c.To == ""
	default:
		return c.Value == ""
	}
}

// Criteria maps field names or relation paths (e.g. "prospect.name")
// to predicates. Absent or empty entries match everything.
type Criteria map[string]Criterion

// Filter narrows records to those matching every non-empty criterion.
// The result is always a subset of the input; empty criteria return the
// input unchanged.
func Filter(records []shared.Record, criteria Criteria) []shared.Record {
	active := make(map[string]Criterion, len(criteria))
	for path, criterion := range criteria {
		if !criterion.empty() {
			active[path] = criterion
		}
	}
	if len(active) == 0 {
		return records
	}
	matched := make([]shared.Record, 0, len(records))
	for _, record := range records {
		if matches(record, active) {
			matched = append(matched, record)
		}
	}
	return matched
}

func matches(record shared.Record, criteria map[string]Criterion) bool {
	for path, criterion := range criteria {
		value := record.Field(path)
		switch criterion.Kind {
		case MatchExact:
			if value != criterion.Value {
				return false
			}
		case MatchDateRange:
			if criterion.From != "" && value < criterion.From {
				return false
			}
			if criterion.To != "" && value > criterion.To {
				return false
			}
		default:
			if !strings.Contains(strings.ToLower(value), strings.ToLower(criterion.Value)) {
				return false
			}
		}
	}
	return true
}
