package vanisher

import "encoding/json"

// Merge deep-merges other into the store. Keys whose existing and
// incoming values are both mappings merge recursively; every other
// collision is won by the incoming value, including type changes
// (a mapping replaced by a scalar and vice versa). Incoming values
// are deep-copied, so later mutation of other does not leak in.
func (s *Store) Merge(other map[string]any) {
	deepMerge(s.data, other)
	s.autoSaveNow()
}

// Replace swaps the entire tree for a deep copy of m, discarding the
// previous contents. The non-merging counterpart of ImportData.
func (s *Store) Replace(m map[string]any) {
	s.data = deepCopyMap(m)
	s.autoSaveNow()
}

// ImportData merges external data into the store. It accepts an
// already-parsed map[string]any, or JSON text as string or []byte.
// Malformed JSON returns a *ParseError; any other input type returns
// ErrInvalidImport. Merging follows Merge semantics.
func (s *Store) ImportData(data any) error {
	switch d := data.(type) {
	case map[string]any:
		s.Merge(d)
		return nil
	case string:
		return s.importJSON([]byte(d))
	case []byte:
		return s.importJSON(d)
	default:
		return ErrInvalidImport
	}
}

func (s *Store) importJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return &ParseError{Err: err}
	}
	s.Merge(m)
	return nil
}

func deepMerge(dst, src map[string]any) {
	for k, v := range src {
		if sv, ok := v.(map[string]any); ok {
			if dv, ok := dst[k].(map[string]any); ok {
				deepMerge(dv, sv)
				continue
			}
		}
		dst[k] = deepCopyValue(v)
	}
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		return deepCopyMap(vv)
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return v
	}
}
