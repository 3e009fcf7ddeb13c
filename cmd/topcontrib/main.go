// main is the entry point for the topcontrib CLI.
package main

import (
	"github.com/jordanopensource/topcontrib/cmd"
	"github.com/jordanopensource/topcontrib/internal"
)

func main() {
	if err := cmd.Execute(); err != nil {
		internal.FatalError("Command failed", err)
	}
}
