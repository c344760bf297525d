// Package main is the entry point for the vanisher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/vanisher/vanisher/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
