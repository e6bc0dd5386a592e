package ast

import (
	"strings"

	"github.com/cwbudde/mascal/internal/token"
)

// InfinityControl gates whether a declared integer slot may hold the ±∞
// sentinels. The zero value, DisallowInfinity, is the default for every
// declaration that does not opt in.
type InfinityControl int

const (
	DisallowInfinity InfinityControl = iota
	AllowInfinity
	AllowInfinityExtra
)

// VariableDecl is one entry inside a variable sub-block:
//
//	[Const]? identifier (<…>|[…])* [?]? [ <- expression ]? ;
type VariableDecl struct {
	Token       token.Token
	Name        string
	Atomic      AtomicKind
	IsConstant  bool
	IsNullable  bool
	Infinity    InfinityControl
	Dimensions  []Expression // one size expression per array dimension, outermost first
	IsDynamicAt []bool       // parallel to Dimensions: true if that dimension used <<…>>
	Initializer Expression   // nil if the declaration has no `<- expr`
}

func (vd *VariableDecl) TokenLiteral() string { return vd.Token.Literal }
func (vd *VariableDecl) Pos() token.Position  { return vd.Token.Pos }
func (vd *VariableDecl) String() string {
	var b strings.Builder
	if vd.IsConstant {
		b.WriteString("Const ")
	}
	b.WriteString(vd.Name)
	for i, dim := range vd.Dimensions {
		if vd.IsDynamicAt[i] {
			b.WriteString("<<" + dim.String() + ">>")
		} else {
			b.WriteString("[" + dim.String() + "]")
		}
	}
	if vd.IsNullable {
		b.WriteString("?")
	}
	if vd.Initializer != nil {
		b.WriteString(" <- " + vd.Initializer.String())
	}
	b.WriteString(";")
	return b.String()
}

// IsArray reports whether the declaration has at least one dimension.
func (vd *VariableDecl) IsArray() bool { return len(vd.Dimensions) > 0 }

// VariableBlock is the six parallel, atomic-typed declaration lists that
// make up a `Variables { … }` region. Field order is also the order the
// semantic analyzer and the variable-table builder walk declarations in.
type VariableBlock struct {
	Integers []*VariableDecl
	Floats   []*VariableDecl
	Strings  []*VariableDecl
	Booleans []*VariableDecl
	Dynamics []*VariableDecl
	Types    []*VariableDecl
}

// IterAll returns every declaration across all six sub-blocks, in the
// fixed order integers, floats, strings, booleans, dynamics, types.
func (vb *VariableBlock) IterAll() []*VariableDecl {
	if vb == nil {
		return nil
	}
	all := make([]*VariableDecl, 0, len(vb.Integers)+len(vb.Floats)+len(vb.Strings)+len(vb.Booleans)+len(vb.Dynamics)+len(vb.Types))
	all = append(all, vb.Integers...)
	all = append(all, vb.Floats...)
	all = append(all, vb.Strings...)
	all = append(all, vb.Booleans...)
	all = append(all, vb.Dynamics...)
	all = append(all, vb.Types...)
	return all
}

// ExecutionBlock is a variable block plus the statement list that uses it:
// the body of a program or a function.
type ExecutionBlock struct {
	Variables *VariableBlock
	Body      []Statement
}

// Parameter is one entry of a function's parameter list: `[Mut]? name`.
type Parameter struct {
	Name    string
	Mutable bool
}

// ScopedBlock is either a Program or a Function definition at the top
// level of the AST.
type ScopedBlock interface {
	Node
	scopedBlockNode()
}

// ProgramBlock is `DefineProgram { Variables {...}? Implementation {...} }`.
type ProgramBlock struct {
	Token     token.Token
	Execution *ExecutionBlock
}

func (pb *ProgramBlock) scopedBlockNode()      {}
func (pb *ProgramBlock) TokenLiteral() string  { return pb.Token.Literal }
func (pb *ProgramBlock) Pos() token.Position   { return pb.Token.Pos }
func (pb *ProgramBlock) String() string        { return "DefineProgram { ... }" }

// FunctionBlock is `DefineFunction name(params) [-> type]? { ... }`.
type FunctionBlock struct {
	Token      token.Token
	Name       string
	Parameters []*Parameter
	ReturnType *UnprocessedType // nil if the function declares no return type
	Execution  *ExecutionBlock
}

func (fb *FunctionBlock) scopedBlockNode()     {}
func (fb *FunctionBlock) TokenLiteral() string { return fb.Token.Literal }
func (fb *FunctionBlock) Pos() token.Position  { return fb.Token.Pos }
func (fb *FunctionBlock) String() string       { return "DefineFunction " + fb.Name + "(...) { ... }" }

// AST is the parser's final output: the ordered sequence of scoped blocks
// plus the index of the unique program block.
type AST struct {
	Blocks       []ScopedBlock
	ProgramIndex int // -1 if no program block was found
}

// Program returns the AST's single program block, or nil if none exists.
func (a *AST) Program() *ProgramBlock {
	if a.ProgramIndex < 0 || a.ProgramIndex >= len(a.Blocks) {
		return nil
	}
	pb, _ := a.Blocks[a.ProgramIndex].(*ProgramBlock)
	return pb
}

// Functions returns every FunctionBlock in the AST, in source order.
func (a *AST) Functions() []*FunctionBlock {
	var fns []*FunctionBlock
	for _, b := range a.Blocks {
		if fb, ok := b.(*FunctionBlock); ok {
			fns = append(fns, fb)
		}
	}
	return fns
}

// FindFunction looks up a function definition by name.
func (a *AST) FindFunction(name string) *FunctionBlock {
	for _, b := range a.Blocks {
		if fb, ok := b.(*FunctionBlock); ok && fb.Name == name {
			return fb
		}
	}
	return nil
}
