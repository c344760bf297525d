package codectoml

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/vanisher/vanisher"
)

func init() {
	vanisher.Register(codec{})
}

type codec struct{}

func (codec) Name() string { return "toml" }

func (codec) Encode(data map[string]any) ([]byte, error) {
	// go-toml silently drops nil values; Export promises that
	// unrepresentable stores fail, so reject them up front.
	if err := checkEncodable(data); err != nil {
		return nil, err
	}
	return toml.Marshal(data)
}

func (codec) Decode(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// checkEncodable walks the tree looking for values TOML cannot
// represent (nil has no TOML counterpart).
func checkEncodable(v any) error {
	switch vv := v.(type) {
	case nil:
		return fmt.Errorf("toml has no null value")
	case map[string]any:
		for _, e := range vv {
			if err := checkEncodable(e); err != nil {
				return err
			}
		}
	case []any:
		for _, e := range vv {
			if err := checkEncodable(e); err != nil {
				return err
			}
		}
	}
	return nil
}
