package vanisher

import (
	"errors"
	"strings"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")

	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"with path",
			&ParseError{Path: "/etc/app/config.json", Err: inner},
			"vanisher: parse config file /etc/app/config.json: unexpected end of JSON input",
		},
		{
			"without path",
			&ParseError{Err: inner},
			"vanisher: parse config data: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error()\ngot:  %q\nwant: %q", got, tt.want)
			}
			if !errors.Is(tt.err, inner) {
				t.Error("ParseError should unwrap to the inner error")
			}
		})
	}
}

func TestEncodeError_Error(t *testing.T) {
	inner := errors.New("toml has no null value")
	err := &EncodeError{Format: "toml", Err: inner}

	want := "vanisher: encode store as toml: toml has no null value"
	if got := err.Error(); got != want {
		t.Errorf("EncodeError.Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, inner) {
		t.Error("EncodeError should unwrap to the inner error")
	}
}

func TestUnknownFormatError_ListsKnownFormats(t *testing.T) {
	err := &UnknownFormatError{Format: "ini"}

	got := err.Error()
	if !strings.Contains(got, `unsupported format "ini"`) {
		t.Errorf("UnknownFormatError.Error() missing format name: %q", got)
	}
	// json is always registered; yaml and toml are always known.
	for _, name := range []string{"json", "yaml", "toml"} {
		if !strings.Contains(got, name) {
			t.Errorf("UnknownFormatError.Error() should list %q: %q", name, got)
		}
	}
}

func TestNoCodecError_NamesPackage(t *testing.T) {
	err := &NoCodecError{Format: "yaml", Package: "github.com/vanisher/vanisher/codecyaml"}

	want := `vanisher: no codec registered for "yaml" (import github.com/vanisher/vanisher/codecyaml)`
	if got := err.Error(); got != want {
		t.Errorf("NoCodecError.Error() = %q, want %q", got, want)
	}
}
