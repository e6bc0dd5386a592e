// Package ast defines the Abstract Syntax Tree node types produced by the
// parser and walked by the evaluator.
package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/mascal/internal/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action without itself producing a
// value.
type Statement interface {
	Node
	statementNode()
}

// Identifier is a symbolic reference to a variable or function name.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()        {}
func (i *Identifier) TokenLiteral() string   { return i.Token.Literal }
func (i *Identifier) String() string         { return i.Value }
func (i *Identifier) Pos() token.Position    { return i.Token.Pos }

// IntegerLiteral is a decimal integer literal, kept as its raw digit text;
// the parser constructs the actual widening numeric.Int from Literal.
type IntegerLiteral struct {
	Token   token.Token
	Literal string
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Literal }
func (il *IntegerLiteral) Pos() token.Position  { return il.Token.Pos }

// FloatLiteral is a binary64 literal.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FloatLiteral) String() string       { return fl.Token.Literal }
func (fl *FloatLiteral) Pos() token.Position  { return fl.Token.Pos }

// StringLiteral is a quoted string literal with quotes already stripped.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return "\"" + sl.Value + "\"" }
func (sl *StringLiteral) Pos() token.Position  { return sl.Token.Pos }

// BooleanLiteral is a True/False literal.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }
func (bl *BooleanLiteral) Pos() token.Position  { return bl.Token.Pos }

// NullLiteral is the Null literal.
type NullLiteral struct {
	Token token.Token
}

func (nl *NullLiteral) expressionNode()      {}
func (nl *NullLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NullLiteral) String() string       { return "Null" }
func (nl *NullLiteral) Pos() token.Position  { return nl.Token.Pos }

// TypeExpression wraps an unprocessed type descriptor appearing in
// expression position (a bare atomic type keyword, or Typeof's operand
// context).
type TypeExpression struct {
	Token token.Token
	Type  *UnprocessedType
}

func (te *TypeExpression) expressionNode()      {}
func (te *TypeExpression) TokenLiteral() string { return te.Token.Literal }
func (te *TypeExpression) String() string       { return te.Type.String() }
func (te *TypeExpression) Pos() token.Position  { return te.Token.Pos }

// StaticArrayLiteral is a `[…]` array literal.
type StaticArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (al *StaticArrayLiteral) expressionNode()      {}
func (al *StaticArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *StaticArrayLiteral) Pos() token.Position  { return al.Token.Pos }
func (al *StaticArrayLiteral) String() string {
	return "[" + joinExprs(al.Elements) + "]"
}

// DynamicArrayLiteral is a `<<…>>` array literal.
type DynamicArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (al *DynamicArrayLiteral) expressionNode()      {}
func (al *DynamicArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *DynamicArrayLiteral) Pos() token.Position  { return al.Token.Pos }
func (al *DynamicArrayLiteral) String() string {
	return "<<" + joinExprs(al.Elements) + ">>"
}

func joinExprs(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// UnaryExpression is a prefix operation: Not, Minus, or Typeof.
type UnaryExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) Pos() token.Position  { return ue.Token.Pos }
func (ue *UnaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ue.Operator)
	if c := ue.Operator[0]; c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' {
		out.WriteString(" ")
	}
	out.WriteString(ue.Right.String())
	out.WriteString(")")
	return out.String()
}

// BinaryExpression is a binary operation.
type BinaryExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) Pos() token.Position  { return be.Token.Pos }
func (be *BinaryExpression) String() string {
	return "(" + be.Left.String() + " " + be.Operator + " " + be.Right.String() + ")"
}

// GroupedExpression is a parenthesized subexpression.
type GroupedExpression struct {
	Token      token.Token
	Expression Expression
}

func (ge *GroupedExpression) expressionNode()      {}
func (ge *GroupedExpression) TokenLiteral() string { return ge.Token.Literal }
func (ge *GroupedExpression) Pos() token.Position  { return ge.Token.Pos }
func (ge *GroupedExpression) String() string       { return "(" + ge.Expression.String() + ")" }

// CallExpression is a function call, either to a built-in or a user
// function.
type CallExpression struct {
	Token     token.Token
	Function  *Identifier
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) Pos() token.Position  { return ce.Token.Pos }
func (ce *CallExpression) String() string {
	return ce.Function.String() + "(" + joinExprs(ce.Arguments) + ")"
}

// IndexExpression indexes into an array, recording whether `<<…>>` or
// `[…]` was used at the source so the evaluator can check it against the
// operand's declared dynamic flag.
type IndexExpression struct {
	Token     token.Token
	Array     Expression
	Index     Expression
	IsDynamic bool
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) Pos() token.Position  { return ie.Token.Pos }
func (ie *IndexExpression) String() string {
	if ie.IsDynamic {
		return ie.Array.String() + "<<" + ie.Index.String() + ">>"
	}
	return ie.Array.String() + "[" + ie.Index.String() + "]"
}

// MemberExpression is `receiver.member`, restricted at runtime to a call
// on the receiver (the receiver is prepended to the call's arguments).
type MemberExpression struct {
	Token    token.Token
	Receiver Expression
	Member   Expression
}

func (me *MemberExpression) expressionNode()      {}
func (me *MemberExpression) TokenLiteral() string { return me.Token.Literal }
func (me *MemberExpression) Pos() token.Position  { return me.Token.Pos }
func (me *MemberExpression) String() string {
	return me.Receiver.String() + "." + me.Member.String()
}
