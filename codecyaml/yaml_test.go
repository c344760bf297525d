package codecyaml_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanisher/vanisher"
	_ "github.com/vanisher/vanisher/codecyaml"
)

func TestExportYAML(t *testing.T) {
	st := vanisher.FromMap(map[string]any{
		"server": map[string]any{
			"host": "localhost",
			"port": 8080,
		},
		"tags": []any{"a", "b"},
	}, vanisher.WithEnvOverride(false))

	out, err := st.Export("yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "server:")
	assert.Contains(t, out, "host: localhost")
	assert.Contains(t, out, "port: 8080")
	assert.Contains(t, out, "- a")
}

func TestYAMLRoundTrip(t *testing.T) {
	original := map[string]any{
		"server": map[string]any{
			"host": "localhost",
			"port": 8080,
		},
		"debug": true,
		"tags":  []any{"a", "b"},
	}
	st := vanisher.FromMap(original, vanisher.WithEnvOverride(false))

	out, err := st.Export("yaml")
	require.NoError(t, err)

	decoded, err := vanisher.Decode("yaml", []byte(out))
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeYAML_NestedStructures(t *testing.T) {
	content := `
database:
  host: db.example.com
  port: 5432
features:
  - one
  - two
`
	m, err := vanisher.Decode("yaml", []byte(content))
	require.NoError(t, err)

	st := vanisher.FromMap(m, vanisher.WithEnvOverride(false))
	assert.Equal(t, "db.example.com", st.Get("database.host", nil))
	assert.Equal(t, 5432, st.Get("database.port", nil))
	assert.Equal(t, []any{"one", "two"}, st.Get("features", nil))
}

func TestDecodeYAML_NonStringKeyRejected(t *testing.T) {
	_, err := vanisher.Decode("yaml", []byte("a:\n    1: x\n"))
	require.Error(t, err)

	var parseErr *vanisher.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestDecodeYAML_Malformed(t *testing.T) {
	_, err := vanisher.Decode("yaml", []byte("a: [unclosed"))
	require.Error(t, err)

	var parseErr *vanisher.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestDecodeYAML_EmptyDocument(t *testing.T) {
	m, err := vanisher.Decode("yaml", []byte(""))
	require.NoError(t, err)
	assert.Empty(t, m)
}
