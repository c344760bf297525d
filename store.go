package vanisher

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vanisher/vanisher/internal/dotpath"
)

// Store is an in-memory hierarchical configuration tree addressed by
// dot-notation keys (e.g. "server.port"). Values are the JSON value
// set: strings, numbers, booleans, nil, []any, and nested
// map[string]any.
//
// Reads never fail: a missing key, or a scalar sitting where a
// mapping was expected, resolves to the caller-supplied default.
// When environment overrides are enabled (the default), a set
// variable named after the key ("server.port" → SERVER_PORT) takes
// precedence over the stored value and is returned as a string;
// typed getters coerce it.
//
// A Store is not safe for concurrent mutation.
type Store struct {
	data        map[string]any
	path        string
	envOverride bool
	autoSave    bool
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithEnvOverride controls whether environment variables override
// stored values at read time. Enabled by default.
func WithEnvOverride(enabled bool) Option {
	return func(s *Store) {
		s.envOverride = enabled
	}
}

// WithAutoSave makes every mutating operation persist the store to
// its backing file, matching callers that treat the file as the
// source of truth. Auto-save is best effort: write failures do not
// surface through the (infallible) mutators. Disabled by default;
// use explicit Save for checked persistence.
func WithAutoSave(enabled bool) Option {
	return func(s *Store) {
		s.autoSave = enabled
	}
}

// New creates an empty Store with no backing file.
func New(opts ...Option) *Store {
	s := &Store{
		data:        make(map[string]any),
		envOverride: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromMap creates a Store holding a deep copy of m.
func FromMap(m map[string]any, opts ...Option) *Store {
	s := New(opts...)
	if m != nil {
		s.data = deepCopyMap(m)
	}
	return s
}

// Path returns the backing file path, or "" for an unbound store.
func (s *Store) Path() string {
	return s.path
}

// File returns the base name of the backing file, or "".
func (s *Store) File() string {
	if s.path == "" {
		return ""
	}
	return filepath.Base(s.path)
}

// SetEnvOverride toggles environment overrides at runtime.
func (s *Store) SetEnvOverride(enabled bool) {
	s.envOverride = enabled
}

// Get resolves key and returns its value, or def when the key is
// absent or an intermediate segment is not a mapping. A matching
// environment variable wins and is returned as the raw string.
func (s *Store) Get(key string, def any) any {
	if v, ok := s.envValue(key); ok {
		return v
	}
	return s.lookup(key, def)
}

// Has reports whether key resolves to a value, either from a
// matching environment variable or from the stored tree.
func (s *Store) Has(key string) bool {
	if _, ok := s.envValue(key); ok {
		return true
	}
	_, ok := s.lookupOK(key)
	return ok
}

// Set writes value at key, creating intermediate mappings as needed.
// A scalar sitting on an intermediate segment is replaced by a
// mapping.
func (s *Store) Set(key string, value any) {
	s.setPath(key, value)
	s.autoSaveNow()
}

// SetAll writes multiple dot-notation keys in one call.
func (s *Store) SetAll(values map[string]any) {
	for key, value := range values {
		s.setPath(key, value)
	}
	s.autoSaveNow()
}

// Delete removes the given keys and returns the removed values,
// keyed by the dot-notation keys that were actually present.
func (s *Store) Delete(keys ...string) map[string]any {
	deleted := make(map[string]any)
	for _, key := range keys {
		if v, ok := s.deletePath(key); ok {
			deleted[key] = v
		}
	}
	s.autoSaveNow()
	return deleted
}

// Keys returns the fully-qualified dot-notation path of every leaf
// value, sorted lexically. Mappings are interior nodes and do not
// appear; an empty mapping contributes nothing.
func (s *Store) Keys() []string {
	var keys []string
	walkLeaves("", s.data, func(path string) {
		keys = append(keys, path)
	})
	sort.Strings(keys)
	return keys
}

// Len returns the number of leaf values in the store.
func (s *Store) Len() int {
	return len(s.Keys())
}

// ToMap returns a deep copy of the underlying tree. Mutating the
// result does not affect the store.
func (s *Store) ToMap() map[string]any {
	return deepCopyMap(s.data)
}

// Clear removes all values. The backing file, if any, stays bound.
func (s *Store) Clear() {
	s.data = make(map[string]any)
	s.autoSaveNow()
}

// String implements fmt.Stringer.
func (s *Store) String() string {
	return fmt.Sprintf("<Store file=%q keys=%d>", s.File(), s.Len())
}

// envValue looks up the environment override for key. Values read
// from the environment are always strings.
func (s *Store) envValue(key string) (string, bool) {
	if !s.envOverride {
		return "", false
	}
	return os.LookupEnv(dotpath.EnvKey(key))
}

// lookup walks the tree along key's segments. Every intermediate
// segment must resolve to a mapping; otherwise def is returned.
// Empty segments ("a..b", "") are ordinary map keys.
func (s *Store) lookup(key string, def any) any {
	if v, ok := s.lookupOK(key); ok {
		return v
	}
	return def
}

func (s *Store) lookupOK(key string) (any, bool) {
	segments := dotpath.Split(key)
	current := s.data
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	v, ok := current[segments[len(segments)-1]]
	return v, ok
}

func (s *Store) setPath(key string, value any) {
	segments := dotpath.Split(key)
	current := s.data
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[seg] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

func (s *Store) deletePath(key string) (any, bool) {
	segments := dotpath.Split(key)
	current := s.data
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	last := segments[len(segments)-1]
	v, ok := current[last]
	if !ok {
		return nil, false
	}
	delete(current, last)
	return v, true
}

// walkLeaves runs a depth-first traversal over the tree, invoking fn
// with the dot-notation path of each non-mapping value.
func walkLeaves(prefix string, m map[string]any, fn func(path string)) {
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			walkLeaves(path, child, fn)
			continue
		}
		fn(path)
	}
}

func (s *Store) autoSaveNow() {
	if !s.autoSave || s.path == "" {
		return
	}
	// Best effort; callers needing a checked write use Save.
	_ = s.SaveTo(s.path)
}
