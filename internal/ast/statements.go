package ast

import (
	"bytes"

	"github.com/cwbudde/mascal/internal/token"
)

// ExpressionStatement is a statement consisting of a single expression,
// evaluated and discarded.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()     {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() token.Position  { return es.Token.Pos }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String() + ";"
	}
	return ";"
}

// DeclarationStatement is `lhs <- rhs;`. LHS may be a bare Identifier (a
// rebinding) or an IndexExpression chain (an in-place cell write).
type DeclarationStatement struct {
	Token token.Token
	LHS   Expression
	RHS   Expression
}

func (ds *DeclarationStatement) statementNode()     {}
func (ds *DeclarationStatement) TokenLiteral() string { return ds.Token.Literal }
func (ds *DeclarationStatement) Pos() token.Position  { return ds.Token.Pos }
func (ds *DeclarationStatement) String() string {
	return ds.LHS.String() + " <- " + ds.RHS.String() + ";"
}

// ConditionalBranch is one arm of a conditional chain: If, ElseIf, or
// Else. Condition is nil for the Else arm.
type ConditionalBranch struct {
	Condition Expression
	Body      []Statement
}

// ConditionalStatement is the If/ElseIf/Else chain.
type ConditionalStatement struct {
	Token    token.Token
	Branches []*ConditionalBranch
}

func (cs *ConditionalStatement) statementNode()     {}
func (cs *ConditionalStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ConditionalStatement) Pos() token.Position  { return cs.Token.Pos }
func (cs *ConditionalStatement) String() string {
	var out bytes.Buffer
	for i, b := range cs.Branches {
		switch {
		case i == 0:
			out.WriteString("If ")
			out.WriteString(b.Condition.String())
		case b.Condition == nil:
			out.WriteString("Else")
		default:
			out.WriteString("ElseIf ")
			out.WriteString(b.Condition.String())
		}
		out.WriteString(" { ")
		for _, s := range b.Body {
			out.WriteString(s.String())
		}
		out.WriteString(" } ")
	}
	return out.String()
}

// WhileStatement loops while Condition evaluates true.
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      []Statement
}

func (ws *WhileStatement) statementNode()     {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() token.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	var out bytes.Buffer
	out.WriteString("While ")
	out.WriteString(ws.Condition.String())
	out.WriteString(" { ")
	for _, s := range ws.Body {
		out.WriteString(s.String())
	}
	out.WriteString(" }")
	return out.String()
}

// ForStatement is `For variable From from To to [WithStep step] { body }`.
// Step is non-nil always: the parser synthesizes an IntegerLiteral("1")
// when WithStep is absent.
type ForStatement struct {
	Token    token.Token
	Variable *Identifier
	From     Expression
	To       Expression
	Step     Expression
	Body     []Statement
}

func (fs *ForStatement) statementNode()     {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) Pos() token.Position  { return fs.Token.Pos }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("For ")
	out.WriteString(fs.Variable.String())
	out.WriteString(" From ")
	out.WriteString(fs.From.String())
	out.WriteString(" To ")
	out.WriteString(fs.To.String())
	out.WriteString(" WithStep ")
	out.WriteString(fs.Step.String())
	out.WriteString(" { ")
	for _, s := range fs.Body {
		out.WriteString(s.String())
	}
	out.WriteString(" }")
	return out.String()
}

// ThrowStatement is `Throw <ErrorKind>: "message";`.
type ThrowStatement struct {
	Token     token.Token
	ErrorKind string
	Message   string
}

func (ts *ThrowStatement) statementNode()     {}
func (ts *ThrowStatement) TokenLiteral() string { return ts.Token.Literal }
func (ts *ThrowStatement) Pos() token.Position  { return ts.Token.Pos }
func (ts *ThrowStatement) String() string {
	return "Throw " + ts.ErrorKind + ": \"" + ts.Message + "\";"
}
