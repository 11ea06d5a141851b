package hydrate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is one decoded poll entry. Key names and value shapes vary across
// payload generations, so it stays an open mapping until normalization.
type Record map[string]any

// Decode un-escapes a captured array span when needed, parses it as a JSON
// array, and keeps only the object elements. Hydration payloads intersperse
// the records with string references into the serialized object graph
// (e.g. "$1f:2:props"); those are dropped without error, preserving the
// relative order of the surviving objects.
func Decode(span string, mode EscapingMode) ([]Record, error) {
	if mode == Escaped {
		// Quote un-escaping must run before backslash un-escaping so that
		// collapsing \\ pairs cannot manufacture fresh \" sequences from
		// content that was never quote-escaped.
		span = strings.ReplaceAll(span, `\"`, `"`)
		span = strings.ReplaceAll(span, `\\`, `\`)
	}
	var raw []any
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, fmt.Errorf("parse embedded array: %w", err)
	}
	records := make([]Record, 0, len(raw))
	for _, el := range raw {
		if obj, ok := el.(map[string]any); ok {
			records = append(records, Record(obj))
		}
	}
	return records, nil
}
