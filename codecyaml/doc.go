// Package codecyaml registers the YAML codec with vanisher.
//
// Importing the package is all it takes:
//
//	import _ "github.com/vanisher/vanisher/codecyaml"
//
//	out, err := store.Export("yaml")
package codecyaml
