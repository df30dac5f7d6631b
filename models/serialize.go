package models

// Serializable is implemented by every entity that can be rendered as a
// JSON response body. Serialize returns a deterministic field set per
// entity type; the primary key is always included and relationships are
// never expanded.
type Serializable interface {
	Serialize() map[string]interface{}
}

// SerializeAll renders every entity of a list endpoint. It always returns a
// non-nil slice so empty tables encode as [] rather than null.
func SerializeAll[T Serializable](items []T) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		out = append(out, it.Serialize())
	}
	return out
}
