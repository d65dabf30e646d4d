package supabase

import (
	"strconv"
	"strings"
)

func getString(src map[string]any, keys ...string) string {
	for _, key := range keys {
		raw, ok := src[key]
		if !ok || raw == nil {
			continue
		}
		switch value := raw.(type) {
		case string:
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		case float64:
			return strconv.FormatFloat(value, 'f', -1, 64)
		case int64:
			return strconv.FormatInt(value, 10)
		case int:
			return strconv.Itoa(value)
		}
	}
	return ""
}

func getFloat(src map[string]any, key string) (float64, bool) {
	raw, ok := src[key]
	if !ok || raw == nil {
		return 0, false
	}
	switch value := raw.(type) {
	case float64:
		return value, true
	case int64:
		return float64(value), true
	case int:
		return float64(value), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// sanitizeFilterValue strips the characters PostgREST treats as filter
// syntax so user input cannot escape an or=(...) group.
func sanitizeFilterValue(value string) string {
	replacer := strings.NewReplacer(",", " ", "(", " ", ")", " ", "\"", " ")
	return strings.Join(strings.Fields(replacer.Replace(value)), " ")
}
