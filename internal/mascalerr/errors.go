// Package mascalerr implements Mascal's closed error-kind set and the red
// ANSI diagnostic format printed by the CLI pipeline.
package mascalerr

import (
	"fmt"

	"github.com/cwbudde/mascal/internal/token"
)

// Kind is one of the fourteen closed error categories a Mascal program or
// its toolchain can raise.
type Kind int

const (
	LexerError Kind = iota
	ParserError
	RuntimeError
	OverflowError
	TypeError
	IndexError
	ValueError
	ArgumentError
	UndefinedOperation
	UndefinedErrorType
	InputError
	ContextError
	NonExplicitInfiniteDeclarationError
	UnallowedInfinityOperationError
)

var kindNames = [...]string{
	"LexerError",
	"ParserError",
	"RuntimeError",
	"OverflowError",
	"TypeError",
	"IndexError",
	"ValueError",
	"ArgumentError",
	"UndefinedOperation",
	"UndefinedErrorType",
	"InputError",
	"ContextError",
	"NonExplicitInfiniteDeclarationError",
	"UnallowedInfinityOperationError",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "UnknownError"
	}
	return kindNames[k]
}

// usableThrowKinds is the subset of Kind a `Throw` statement may name.
var usableThrowKinds = map[string]Kind{
	"TypeError":           TypeError,
	"RuntimeError":        RuntimeError,
	"OverflowError":       OverflowError,
	"UndefinedOperation":  UndefinedOperation,
	"IndexError":          IndexError,
	"InputError":          InputError,
	"ArgumentError":       ArgumentError,
	"ValueError":          ValueError,
}

// LookupThrowKind maps a Throw statement's error-kind identifier to a
// Kind. The second return value is false for any name outside the usable
// throw set, including kinds that exist but are never user-throwable
// (LexerError, ParserError, ContextError, and the two infinity-control
// kinds, all of which are only ever raised by the toolchain itself).
func LookupThrowKind(name string) (Kind, bool) {
	k, ok := usableThrowKinds[name]
	return k, ok
}

// Error is Mascal's structured diagnostic: a kind, a message, and the
// 0-based source position it occurred at.
type Error struct {
	Kind    Kind
	Message string
	Pos     token.Position
}

// New constructs an Error.
func New(kind Kind, pos token.Position, message string) *Error {
	return &Error{Kind: kind, Message: message, Pos: pos}
}

// Newf constructs an Error with a formatted message.
func Newf(kind Kind, pos token.Position, format string, args ...interface{}) *Error {
	return New(kind, pos, fmt.Sprintf(format, args...))
}

// Error implements the error interface with the plain (uncolored) form of
// Format.
func (e *Error) Error() string {
	return e.Format(false)
}

// Format renders the diagnostic exactly as the CLI prints it:
//
//	<ErrorKind>: <message>
//	AT LINE: <1-based line>; STARTING IN CHARACTER POSITION: <1-based column>
//
// 0-based Line/Column are converted to 1-based here; storage stays 0-based
// throughout the rest of the pipeline.
func (e *Error) Format(color bool) string {
	body := fmt.Sprintf("%s: %s\nAT LINE: %d; STARTING IN CHARACTER POSITION: %d",
		e.Kind, e.Message, e.Pos.Line+1, e.Pos.Column+1)
	if !color {
		return body
	}
	return "\033[1;31m" + body + "\033[0m"
}
