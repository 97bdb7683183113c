package extractor

import (
	"strconv"
	"strings"
)

// CoerceNumber turns a loosely typed value from a decoded JSON payload into
// a float64. The voice assistant's function-calling layer sends numbers
// sometimes as JSON numbers and sometimes as strings; anything that does not
// parse is reported as absent rather than an error.
func CoerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// CoerceString returns the trimmed string form of a value, or "" when the
// value is absent or not a string.
func CoerceString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
