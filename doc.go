// Package vanisher provides a hierarchical configuration store with
// dot-notation access, environment variable overrides, typed getters,
// deep merging, and multi-format export.
//
// Quick Start:
//
//	cfg, err := vanisher.Open("config.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg.Set("server.port", 8080)
//	port := cfg.GetInt("server.port", 3000) // SERVER_PORT, if set, wins
//	debug := cfg.GetBool("server.debug", false)
//
//	out, err := cfg.Export("yaml")
//
// YAML and TOML support is pluggable; blank-import the codec packages
// to enable those formats:
//
//	import (
//	    _ "github.com/vanisher/vanisher/codectoml"
//	    _ "github.com/vanisher/vanisher/codecyaml"
//	)
//
// A Store is not safe for concurrent use; callers sharing one across
// goroutines must provide their own synchronization.
//
// See example_test.go and README.md for detailed usage.
package vanisher
