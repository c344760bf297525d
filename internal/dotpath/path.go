package dotpath

import "strings"

// Split breaks a dot-notation key into its path segments.
// No segment is special-cased: an empty key yields a single empty
// segment, and "a..b" yields a middle empty segment, each of which is
// treated as a literal map key downstream.
// Examples:
//   - "server.port" → ["server", "port"]
//   - "debug" → ["debug"]
//   - "a..b" → ["a", "", "b"]
func Split(key string) []string {
	return strings.Split(key, ".")
}

// Join combines path segments back into a dot-notation key.
// It is the inverse of Split for segments that contain no dots.
func Join(segments []string) string {
	return strings.Join(segments, ".")
}

// EnvKey derives the environment variable name that overrides a
// dot-notation key: dots become underscores, and the result is
// upper-cased.
// Examples:
//   - "server.port" → "SERVER_PORT"
//   - "database.max_conns" → "DATABASE_MAX_CONNS"
func EnvKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
