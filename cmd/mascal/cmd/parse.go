package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.mascal>",
	Short: "Parse a Mascal file and display its AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			printDiagnostic(err)
			os.Exit(1)
		}
		toks, err := tokenize(src)
		if err != nil {
			printDiagnostic(err)
			os.Exit(1)
		}
		tree, err := parser.Parse(toks)
		if err != nil {
			printDiagnostic(err)
			os.Exit(1)
		}
		fmt.Print(ast.Print(tree))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
