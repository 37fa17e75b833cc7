package ast

import (
	"fmt"
	"strings"
)

// ModuleId is a dense index into a Program's module vector.
type ModuleId int

// TypeKind tags the variant carried by a Type.
type TypeKind int

const (
	TVoid TypeKind = iota
	TI32
	TU32
	TBool
	TStr
	TPointer
	TFunction
	TStruct
	// TIdentifier is a parser-produced placeholder for an unresolved
	// typename; the Validator eliminates every occurrence. It must never
	// appear in a checked AST.
	TIdentifier
)

func (k TypeKind) String() string {
	switch k {
	case TVoid:
		return "void"
	case TI32:
		return "i32"
	case TU32:
		return "u32"
	case TBool:
		return "bool"
	case TStr:
		return "str"
	case TPointer:
		return "pointer"
	case TFunction:
		return "function"
	case TStruct:
		return "struct"
	case TIdentifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// Type is a tagged variant over every type shape in the language; see
// Equal for the per-kind equality rules.
type Type struct {
	Kind   TypeKind
	Module ModuleId // declaring module

	Inner  *Type   // TPointer
	Return *Type   // TFunction
	Params []*Type // TFunction, ordered

	StructObj *Obj // TStruct: the owning struct object

	IdentName AstString // TIdentifier: the unresolved typename
}

// Primitive constructors. Callers still intern through a Scope/TypeRegistry
// (see typeregistry package); these helpers only build the value.

func NewVoid(mod ModuleId) *Type { return &Type{Kind: TVoid, Module: mod} }
func NewI32(mod ModuleId) *Type  { return &Type{Kind: TI32, Module: mod} }
func NewU32(mod ModuleId) *Type  { return &Type{Kind: TU32, Module: mod} }
func NewBool(mod ModuleId) *Type { return &Type{Kind: TBool, Module: mod} }
func NewStr(mod ModuleId) *Type  { return &Type{Kind: TStr, Module: mod} }

func NewPointer(mod ModuleId, inner *Type) *Type {
	return &Type{Kind: TPointer, Module: mod, Inner: inner}
}

func NewFunction(mod ModuleId, ret *Type, params []*Type) *Type {
	return &Type{Kind: TFunction, Module: mod, Return: ret, Params: params}
}

func NewStruct(mod ModuleId, obj *Obj) *Type {
	return &Type{Kind: TStruct, Module: mod, StructObj: obj}
}

func NewIdentifier(mod ModuleId, name AstString) *Type {
	return &Type{Kind: TIdentifier, Module: mod, IdentName: name}
}

// IsPrimitive reports whether t is one of Void/I32/U32/Bool/Str.
func (t *Type) IsPrimitive() bool {
	switch t.Kind {
	case TVoid, TI32, TU32, TBool, TStr:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether t is an arithmetic primitive.
func (t *Type) IsNumeric() bool {
	return t.Kind == TI32 || t.Kind == TU32
}

// IsSignedNumeric reports whether Negate accepts t.
func (t *Type) IsSignedNumeric() bool {
	return t.Kind == TI32
}

// Equal implements this language's type-equality rules:
//   - primitives are equal across modules by variant;
//   - pointers compare inner types;
//   - functions compare return and parameter types structurally,
//     regardless of declaring module;
//   - structs compare by identity (same declaring module and same
//     struct object);
//   - TIdentifier never appears post-validation and is never equal to
//     anything but an identical placeholder (used only by pre-validation
//     bookkeeping, e.g. duplicate-placeholder detection in tests).
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t == other {
		return true
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TVoid, TI32, TU32, TBool, TStr:
		return true
	case TPointer:
		return t.Inner.Equal(other.Inner)
	case TFunction:
		if !t.Return.Equal(other.Return) {
			return false
		}
		if len(t.Params) != len(other.Params) {
			return false
		}
		for i := range t.Params {
			if !t.Params[i].Equal(other.Params[i]) {
				return false
			}
		}
		return true
	case TStruct:
		return t.Module == other.Module && t.StructObj == other.StructObj
	case TIdentifier:
		return t.Module == other.Module && t.IdentName.Name == other.IdentName.Name
	default:
		return false
	}
}

// Key returns a canonical string uniquely identifying t's structural
// shape, used by Scope's interned type set as a map key. Two Types with
// Equal() == true always produce the same Key().
func (t *Type) Key() string {
	var b strings.Builder
	t.writeKey(&b)
	return b.String()
}

func (t *Type) writeKey(b *strings.Builder) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}
	switch t.Kind {
	case TVoid, TI32, TU32, TBool, TStr:
		b.WriteString(t.Kind.String())
	case TPointer:
		b.WriteString("*")
		t.Inner.writeKey(b)
	case TFunction:
		b.WriteString("fn(")
		for i, p := range t.Params {
			if i > 0 {
				b.WriteString(",")
			}
			p.writeKey(b)
		}
		b.WriteString(")->")
		t.Return.writeKey(b)
	case TStruct:
		fmt.Fprintf(b, "struct#%d@%p", t.Module, t.StructObj)
	case TIdentifier:
		fmt.Fprintf(b, "ident#%d:%s", t.Module, t.IdentName)
	}
}

// String renders t in the language's own type syntax, e.g. "*i32" or
// "fn(i32, i32) -> bool".
func (t *Type) String() string {
	if t == nil {
		return "<unresolved>"
	}
	switch t.Kind {
	case TVoid, TI32, TU32, TBool, TStr:
		return t.Kind.String()
	case TPointer:
		return "*" + t.Inner.String()
	case TFunction:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = p.String()
		}
		return fmt.Sprintf("fn(%s) -> %s", strings.Join(parts, ", "), t.Return.String())
	case TStruct:
		if t.StructObj != nil {
			return t.StructObj.Name.String()
		}
		return "struct"
	case TIdentifier:
		return t.IdentName.String()
	default:
		return "?"
	}
}
