package vanisher

import (
	"fmt"
	"strconv"
	"strings"
)

// GetInt resolves key and coerces the value to an int. Numeric values
// convert directly (floats truncate), strings must parse as a base-10
// integer. Anything else, including absence, yields def.
func (s *Store) GetInt(key string, def int) int {
	switch v := s.Get(key, nil).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		return def
	default:
		return def
	}
}

// GetFloat resolves key and coerces the value to a float64.
func (s *Store) GetFloat(key string, def float64) float64 {
	switch v := s.Get(key, nil).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}

// GetBool resolves key and coerces the value to a bool. Strings match
// case-insensitively against true/1/yes/on and false/0/no/off; other
// strings yield def. Numbers are true when nonzero.
func (s *Store) GetBool(key string, def bool) bool {
	switch v := s.Get(key, nil).(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1", "on":
			return true
		case "false", "no", "0", "off":
			return false
		}
		return def
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return def
	}
}

// GetString resolves key and stringifies the value. Absence yields def.
func (s *Store) GetString(key string, def string) string {
	v := s.Get(key, nil)
	if v == nil {
		return def
	}
	if str, ok := v.(string); ok {
		return str
	}
	return fmt.Sprint(v)
}

// GetList resolves key and returns the value as a []any. A string
// value (typically an environment override) is split on commas, each
// element trimmed. Anything else yields def.
func (s *Store) GetList(key string, def []any) []any {
	switch v := s.Get(key, nil).(type) {
	case []any:
		return v
	case string:
		parts := splitCSV(v)
		out := make([]any, len(parts))
		for i, p := range parts {
			out[i] = p
		}
		return out
	default:
		return def
	}
}

// GetStrings resolves key as a list of strings, stringifying list
// elements and comma-splitting string values.
func (s *Store) GetStrings(key string, def []string) []string {
	switch v := s.Get(key, nil).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, len(v))
		for i, e := range v {
			out[i] = fmt.Sprint(e)
		}
		return out
	case string:
		return splitCSV(v)
	default:
		return def
	}
}

// GetMap resolves key and returns the value when it is a mapping,
// otherwise def. Environment overrides are strings and never match.
func (s *Store) GetMap(key string, def map[string]any) map[string]any {
	if v, ok := s.Get(key, nil).(map[string]any); ok {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
