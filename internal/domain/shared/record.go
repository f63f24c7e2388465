package shared

import (
	"strconv"
	"strings"
)

// Record is a loosely shaped entity row as loaded from the backing CRUD
// API. Scalar fields map to strings or numbers; relation fields may
// arrive either as a nested object or as a one-element collection
// wrapping one, depending on the join that produced them.
type Record map[string]any

// NormalizeRelation collapses the two join shapes produced upstream for
// to-one relations: a plain object, or a single-element slice containing
// one. Absent or empty relations normalize to nil.
func NormalizeRelation(value any) Record {
	switch v := value.(type) {
	case nil:
		return nil
	case Record:
		return v
	case map[string]any:
		return Record(v)
	case []any:
		if len(v) == 0 {
			return nil
		}
		return NormalizeRelation(v[0])
	case []map[string]any:
		if len(v) == 0 {
			return nil
		}
		return Record(v[0])
	case []Record:
		if len(v) == 0 {
			return nil
		}
		return v[0]
	default:
		return nil
	}
}

// Get resolves a dot-separated path against the record, normalizing
// every intermediate relation. A missing segment yields nil.
func (r Record) Get(path string) any {
	if r == nil {
		return nil
	}
	segments := strings.Split(path, ".")
	current := r
	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return nil
		}
		if i == len(segments)-1 {
			return value
		}
		current = NormalizeRelation(value)
		if current == nil {
			return nil
		}
	}
	return nil
}

// Field resolves a path like Get and renders the result as a string.
// Numbers are rendered without an exponent so identifier comparisons
// stay purely textual. Missing values yield the empty string.
func (r Record) Field(path string) string {
	return Stringify(r.Get(path))
}

// Stringify renders a scalar record value as a comparison-safe string.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
