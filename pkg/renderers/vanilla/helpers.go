package vanilla

import (
	"fmt"
	"strings"
)

func widthClass(width string) string {
	switch strings.TrimSpace(width) {
	case "1/4":
		return "regform-w-quarter"
	case "3/4":
		return "regform-w-three-quarters"
	default:
		return ""
	}
}

func stringValue(values map[string]any, name string) string {
	raw, ok := values[name]
	if !ok || raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}

func boolValue(values map[string]any, name string) bool {
	switch v := values[name].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "1", "checked":
			return true
		}
	}
	return false
}
