// Command mascal is the Mascal language's command-line front end: lex,
// parse, and run .mascal source files.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/mascal/cmd/mascal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
