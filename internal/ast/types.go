package ast

// AtomicKind is the tag of an atomic (non-array) type.
type AtomicKind int

const (
	KindInteger AtomicKind = iota
	KindFloat
	KindString
	KindBoolean
	KindDynamic
	KindType
)

func (k AtomicKind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindDynamic:
		return "Dynamic"
	case KindType:
		return "Type"
	default:
		return "Unknown"
	}
}

// UnprocessedType is a type descriptor as written in source: atomic kinds
// carry no payload, array kinds carry an unevaluated size expression (the
// parser never evaluates array sizes; that happens at runtime, against the
// current variable table, when the type is resolved).
type UnprocessedType struct {
	Atomic AtomicKind
	IsAtom bool

	// Array forms. Element is non-nil exactly when IsAtom is false.
	Element     *UnprocessedType
	Size        Expression // StaticArray size; nil for DynamicArray
	InitialSize Expression // DynamicArray initial length; nil if unspecified
	IsDynamic   bool
}

// String renders e.g. "Integer", "Integer[3]", "Integer<<>>".
func (t *UnprocessedType) String() string {
	if t.IsAtom {
		return t.Atomic.String()
	}
	if t.IsDynamic {
		if t.InitialSize != nil {
			return t.Element.String() + "<<" + t.InitialSize.String() + ">>"
		}
		return t.Element.String() + "<<>>"
	}
	return t.Element.String() + "[" + t.Size.String() + "]"
}

// AtomType constructs an atomic unprocessed type.
func AtomType(kind AtomicKind) *UnprocessedType {
	return &UnprocessedType{Atomic: kind, IsAtom: true}
}
