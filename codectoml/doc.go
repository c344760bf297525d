// Package codectoml registers the TOML codec with vanisher.
//
// Importing the package is all it takes:
//
//	import _ "github.com/vanisher/vanisher/codectoml"
//
//	out, err := store.Export("toml")
//
// TOML has no null; exporting a store holding nil values fails with
// *vanisher.EncodeError.
package codectoml
