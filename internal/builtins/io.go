package builtins

import (
	"fmt"
	"strings"

	"github.com/cwbudde/mascal/internal/ast"
	"github.com/cwbudde/mascal/internal/mascalerr"
	"github.com/cwbudde/mascal/internal/token"
	"github.com/cwbudde/mascal/internal/value"
)

// builtinWrite prints every argument's canonical String() form, space
// separated, followed by a single trailing newline.
func builtinWrite(args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error) {
	vals, err := evalAll(args, r)
	if err != nil {
		return value.Value{}, err
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	fmt.Fprintln(r.Output(), strings.Join(parts, " "))
	return value.NullValue(), nil
}

// builtinRead is a stub: the interpreter has no attached stdin source
// wired up yet, so a call to Read always yields Null.
func builtinRead(args []ast.Expression, r Resolver, pos token.Position) (value.Value, *mascalerr.Error) {
	if len(args) != 0 {
		return value.Value{}, argCountError("Read", 0, len(args), pos)
	}
	return value.NullValue(), nil
}
