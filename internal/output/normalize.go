package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrParse marks model output that does not have the requested JSON shape.
var ErrParse = errors.New("model output is not a JSON array")

// Removed in order; "*" first so "~*~" collapses to "~~" and is then removed.
var emphasisMarkers = []string{"*", "~~"}

// NormalizePlainText strips markdown emphasis markers and surrounding
// whitespace.
func NormalizePlainText(raw string) string {
	if raw == "" {
		return ""
	}
	for _, marker := range emphasisMarkers {
		raw = strings.ReplaceAll(raw, marker, "")
	}
	return strings.TrimSpace(raw)
}

// StripFences removes ``` and ```json code fence markers.
func StripFences(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}

// NormalizeList decodes a JSON array of strings, optionally wrapped in code
// fences. Elements that are not strings are returned as compact JSON.
func NormalizeList(raw string) ([]string, error) {
	cleaned := StripFences(raw)

	var decoded any
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	elements, ok := decoded.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrParse, decoded)
	}

	items := make([]string, 0, len(elements))
	for _, element := range elements {
		items = append(items, stringify(element))
	}
	return items, nil
}

func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(encoded)
	}
}
