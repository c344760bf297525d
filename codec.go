package vanisher

import (
	"encoding/json"
	"sort"
	"strings"
)

// Codec encodes and decodes a configuration tree in one text format.
// Implementations register themselves with Register, usually from an
// init function, and are selected by name in Export and Decode.
type Codec interface {
	// Name is the lowercase format name (e.g. "yaml").
	Name() string

	// Encode serializes the tree to format text.
	Encode(data map[string]any) ([]byte, error)

	// Decode parses format text into a tree.
	Decode(data []byte) (map[string]any, error)
}

// codecs holds registered codecs by lowercase name. Registration is
// expected at init time; the map is read-only afterwards.
var codecs = make(map[string]Codec)

// codecPackages maps known optional formats to the package whose
// import registers their codec.
var codecPackages = map[string]string{
	"yaml": "github.com/vanisher/vanisher/codecyaml",
	"toml": "github.com/vanisher/vanisher/codectoml",
}

// Register makes a codec available by its Name. Later registrations
// under the same name win. Call from package init; Register is not
// safe for concurrent use.
func Register(c Codec) {
	codecs[strings.ToLower(c.Name())] = c
}

// Export serializes the entire store in the named format. An unknown
// format name returns *UnknownFormatError; a known format without a
// registered codec returns *NoCodecError naming the package to
// import; encoder failures return *EncodeError.
func (s *Store) Export(format string) (string, error) {
	c, err := lookupCodec(format)
	if err != nil {
		return "", err
	}
	out, err := c.Encode(s.data)
	if err != nil {
		return "", &EncodeError{Format: c.Name(), Err: err}
	}
	return string(out), nil
}

// Decode parses text in the named format into a tree, using the same
// codec registry as Export. Parse failures return *ParseError.
func Decode(format string, data []byte) (map[string]any, error) {
	c, err := lookupCodec(format)
	if err != nil {
		return nil, err
	}
	m, err := c.Decode(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return m, nil
}

func lookupCodec(format string) (Codec, error) {
	name := strings.ToLower(format)
	if c, ok := codecs[name]; ok {
		return c, nil
	}
	if pkg, ok := codecPackages[name]; ok {
		return nil, &NoCodecError{Format: name, Package: pkg}
	}
	return nil, &UnknownFormatError{Format: name}
}

// knownFormatList returns every format name this build could serve,
// registered or not, for error messages.
func knownFormatList() string {
	seen := make(map[string]bool, len(codecs)+len(codecPackages))
	for name := range codecs {
		seen[name] = true
	}
	for name := range codecPackages {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// jsonCodec is the built-in JSON codec. Output is indented with four
// spaces to stay diff-friendly for hand-edited config files.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Encode(data map[string]any) ([]byte, error) {
	return json.MarshalIndent(data, "", "    ")
}

func (jsonCodec) Decode(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

func init() {
	Register(jsonCodec{})
}
