package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/mascal/internal/lexer"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/parser"
	"github.com/cwbudde/mascal/internal/runtime"
	"github.com/cwbudde/mascal/internal/semantic"
	"github.com/cwbudde/mascal/internal/token"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file.mascal>",
	Short: "Run a Mascal source file",
	Long: `Run lexes, parses, semantically checks, and executes a .mascal
source file, in that order, stopping at the first error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runScript(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runScript drives the full pipeline — lex, parse, analyze, evaluate — over
// the .mascal file at path, printing any diagnostic to stdout in the red
// ANSI format and exiting non-zero on the first failure. Grounded on the
// DWScript's cmd/dwscript/cmd/run.go runScript, adapted since Mascal has a
// single closed pipeline rather than an optional type-check flag.
func runScript(path string) error {
	src, err := readSource(path)
	if err != nil {
		printDiagnostic(err)
		os.Exit(1)
	}

	tokens, err := tokenize(src)
	if err != nil {
		printDiagnostic(err)
		os.Exit(1)
	}

	tree, err := parser.Parse(tokens)
	if err != nil {
		printDiagnostic(err)
		os.Exit(1)
	}

	if err := semantic.Analyze(tree); err != nil {
		printDiagnostic(err)
		os.Exit(1)
	}

	if err := runtime.RunProgram(tree, os.Stdout); err != nil {
		printDiagnostic(err)
		os.Exit(1)
	}

	return nil
}

// readSource validates path's extension and reads its contents, reporting
// both as an InputError per the closed error-kind set — the pipeline has
// no "file system" error kind of its own.
func readSource(path string) (string, *mascalerr.Error) {
	if !strings.HasSuffix(path, ".mascal") {
		return "", mascalerr.Newf(mascalerr.InputError, token.Position{}, "%q is not a .mascal file", path)
	}
	data, ioErr := os.ReadFile(path)
	if ioErr != nil {
		return "", mascalerr.Newf(mascalerr.InputError, token.Position{}, "cannot read %q: %v", path, ioErr)
	}
	return string(data), nil
}

// tokenize drains the lexer and surfaces its first accumulated error, if
// any, as a LexerError.
func tokenize(src string) ([]token.Token, *mascalerr.Error) {
	l := lexer.New(src)
	toks := l.All()
	if errs := l.Errors(); len(errs) > 0 {
		first := errs[0]
		return nil, mascalerr.New(mascalerr.LexerError, first.Pos, first.Message)
	}
	return toks, nil
}

// printDiagnostic writes err to stdout in the red ANSI diagnostic format.
func printDiagnostic(err *mascalerr.Error) {
	fmt.Println(err.Format(true))
}
