package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exitUsage is the process exit code for a missing positional file
// argument, matching the external-interfaces contract.
const exitUsage = 64

// Version is set by build flags.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "mascal [file]",
	Short: "Mascal language lexer, parser, and interpreter",
	Long: `mascal is the reference toolchain for the Mascal language: a small
imperative scripting language with explicit variable declarations,
arbitrary-precision integers, and a closed error-throwing model.

Running mascal with a single .mascal file argument is equivalent to
"mascal run <file>".`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			c.Println(c.UsageString())
			os.Exit(exitUsage)
		}
		return runScript(args[0])
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("mascal version %s\n", Version))
}
