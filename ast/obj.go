package ast

import "ilctools.dev/ilc/sourcemap"

// ObjKind tags the kind-specific payload carried by an Obj.
type ObjKind int

const (
	ObjVar ObjKind = iota
	ObjFn
	ObjStruct
	ObjExternFn
)

func (k ObjKind) String() string {
	switch k {
	case ObjVar:
		return "var"
	case ObjFn:
		return "fn"
	case ObjStruct:
		return "struct"
	case ObjExternFn:
		return "extern fn"
	default:
		return "unknown"
	}
}

// AttributeKind tags an Attribute's variant. Currently only Source
// exists.
type AttributeKind int

const (
	AttrSource AttributeKind = iota
)

// Attribute is parsed `#[name(argument)]` metadata attached to a
// declaration. Source names the C symbol an extern function binds to;
// SourceAttr additionally carries an optional ABI version tag recognised
// by the #[abi("vX.Y.Z")] companion attribute.
type Attribute struct {
	Kind AttributeKind
	Arg  AstString
	ABI  string // semver string from a companion #[abi("vX.Y.Z")], or ""
}

// Obj is the compile-time descriptor of a variable, function, struct, or
// extern function: a single tagged-variant struct rather than a
// macro-generated inheritance hierarchy; kind-specific fields are simply
// left zero when unused.
type Obj struct {
	Kind     ObjKind
	Loc      sourcemap.Location
	Name     AstString
	DataType *Type // nil until the Validator resolves it

	// ObjFn
	Params     []*Obj // Var objects, owned by the function's own scope
	ReturnType *Type
	Body       *BlockStmt
	Defers     []*DeferInfo // populated during validation, enqueue order

	// ObjStruct
	Scope ScopeId

	// ObjExternFn
	ExternParams     []*Obj
	ExternReturnType *Type
	SourceAttr       Attribute
}

// DeferInfo records one deferred statement queued during validation of a
// function body, plus the capture set the back-end needs to snapshot
// referenced variables at enqueue time.
type DeferInfo struct {
	Stmt     *DeferStmt
	Captures []*Obj // free variable objects referenced by Stmt.Body, in order of first reference
}
