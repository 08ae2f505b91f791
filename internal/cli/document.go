package cli

import (
	"sort"

	"github.com/halverson/scribe/internal/emit"
)

// Document adapts a parsed YAML/JSON mapping to the emit engine's
// self-description hook. The engine itself has no mapping capability,
// so this wrapper is the supported path for schema-less documents.
// Keys are emitted in sorted order for deterministic output.
type Document map[string]any

// DescribeFields implements emit.Describer.
func (d Document) DescribeFields(w *emit.FieldWriter) error {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.Field(k, Wrap(d[k])); err != nil {
			return err
		}
	}
	return nil
}

// Wrap prepares a parsed document tree for emission: mappings become
// Documents, sequence elements are wrapped recursively, everything
// else passes through untouched.
func Wrap(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return Document(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Wrap(elem)
		}
		return out
	default:
		return v
	}
}
