package collection

import (
	"sort"
	"strconv"
	"strings"

	"github.com/crm/backend/internal/domain/shared"
)

// Direction is a sort direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortSpec is the single active sort of a list view. It is mutated in
// place as the user clicks column headers.
type SortSpec struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
	// Numeric keys are compared as floating point, defaulting to 0;
	// everything else compares case-insensitively as text.
	Numeric bool `json:"numeric"`
}

// Apply records a header click: the same key flips direction, a new key
// resets to ascending.
func (s *SortSpec) Apply(key string, numeric bool) {
	if s.Key == key {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.Key = key
	s.Direction = Ascending
	s.Numeric = numeric
}

// Sort returns the records ordered by the spec. The underlying sort is
// stable, so equal keys keep their input order; callers must not rely
// on any further tie-break.
func Sort(records []shared.Record, spec SortSpec) []shared.Record {
	if spec.Key == "" {
		return records
	}
	sorted := make([]shared.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		less := compare(sorted[i], sorted[j], spec) < 0
		if spec.Direction == Descending {
			return compare(sorted[j], sorted[i], spec) < 0
		}
		return less
	})
	return sorted
}

func compare(a, b shared.Record, spec SortSpec) int {
	left := a.Field(spec.Key)
	right := b.Field(spec.Key)
	if spec.Numeric {
		lf := parseFloat(left)
		rf := parseFloat(right)
		switch {
		case lf < rf:
			return -1
		case lf > rf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(left), strings.ToLower(right))
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
