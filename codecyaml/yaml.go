package codecyaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vanisher/vanisher"
)

func init() {
	vanisher.Register(codec{})
}

type codec struct{}

func (codec) Name() string { return "yaml" }

func (codec) Encode(data map[string]any) ([]byte, error) {
	return yaml.Marshal(data)
}

func (codec) Decode(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return normalizeMap(m)
}

// normalizeMap rewrites yaml.v3 output so nested values use the same
// shapes the store works with (map[string]any all the way down).
// Non-string keys cannot be addressed by dot notation and are
// rejected.
func normalizeMap(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, err
		}
		out[k] = nv
	}
	return out, nil
}

func normalizeValue(v any) (any, error) {
	switch vv := v.(type) {
	case map[string]any:
		return normalizeMap(vv)
	case map[any]any:
		out := make(map[string]any, len(vv))
		for k, e := range vv {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string mapping key %v", k)
			}
			ne, err := normalizeValue(e)
			if err != nil {
				return nil, err
			}
			out[ks] = ne
		}
		return out, nil
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			ne, err := normalizeValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = ne
		}
		return out, nil
	default:
		return v, nil
	}
}
