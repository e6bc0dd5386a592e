package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/mascal/internal/token"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex <file.mascal>",
	Short: "Tokenize a Mascal file and print the resulting tokens",
	Long: `Tokenize a .mascal file and print every token, for debugging the
lexer and inspecting how source is split into a token stream.`,
	Args: cobra.ExactArgs(1),
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
		for _, tok := range toks {
			printToken(tok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

// printToken prints one token as "[TYPE] literal", grounded on the
// DWScript's cmd/dwscript/cmd/lex.go printToken.
func printToken(tok token.Token) {
	out := fmt.Sprintf("[%-16s]", tok.Type)
	switch {
	case tok.Type == token.EOF:
		out += " EOF"
	case tok.Literal == "":
		out += fmt.Sprintf(" %s", tok.Type)
	default:
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line+1, tok.Pos.Column+1)
	}
	fmt.Println(out)
}
