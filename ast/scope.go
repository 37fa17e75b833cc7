package ast

// ScopeDepth encodes a scope's position in the lexical hierarchy: the
// module scope is -1, a struct scope is 0, the outermost block scope (a
// function/method body) is 1, and each nested block adds one.
type ScopeDepth int16

const (
	DepthModule ScopeDepth = -1
	DepthStruct ScopeDepth = 0
	DepthBlock  ScopeDepth = 1
)

// ScopeKind determines what declaration kinds a scope may host.
type ScopeKind int

const (
	ScopeKindModule ScopeKind = iota
	ScopeKindStruct
	ScopeKindBlock
)

// ScopeId identifies a scope within its module. EmptyScopeId is never a
// valid scope.
type ScopeId struct {
	Module ModuleId
	Index  int
}

var EmptyScopeId = ScopeId{Module: -1, Index: -1}

// IsEmpty reports whether id is the sentinel EmptyScopeId.
func (id ScopeId) IsEmpty() bool {
	return id.Module < 0
}

// Scope is a lexical container for objects and interned types, linked to
// a parent and zero or more children by ScopeId (never by pointer, so
// the ownership tree stays strictly acyclic).
type Scope struct {
	Kind  ScopeKind
	Depth ScopeDepth

	Objects []*Obj // every object owned by this scope, in declaration order

	vars    map[string]*Obj
	fns     map[string]*Obj
	structs map[string]*Obj

	types map[string]*Type // interned by Type.Key()

	Parent   ScopeId
	Children []ScopeId
}

func newScope(kind ScopeKind, depth ScopeDepth, parent ScopeId) *Scope {
	return &Scope{
		Kind:    kind,
		Depth:   depth,
		Parent:  parent,
		vars:    make(map[string]*Obj),
		fns:     make(map[string]*Obj),
		structs: make(map[string]*Obj),
		types:   make(map[string]*Type),
	}
}

// table returns the kind-indexed lookup table for k, or nil if objects of
// kind k cannot be declared directly (ObjExternFn objects are stored
// alongside ObjFn in the function table, since both are callable names).
func (s *Scope) table(k ObjKind) map[string]*Obj {
	switch k {
	case ObjVar:
		return s.vars
	case ObjFn, ObjExternFn:
		return s.fns
	case ObjStruct:
		return s.structs
	default:
		return nil
	}
}

// ScopeTree is the per-module tree of scopes: module scope (always index
// 0) at the root, struct and block scopes nested beneath it.
type ScopeTree struct {
	module ModuleId
	scopes []*Scope
}

// NewScopeTree returns a ScopeTree for module mod, already containing the
// module scope at index 0.
func NewScopeTree(mod ModuleId) *ScopeTree {
	t := &ScopeTree{module: mod}
	root := newScope(ScopeKindModule, DepthModule, EmptyScopeId)
	t.scopes = append(t.scopes, root)
	return t
}

// Root returns the module scope's ScopeId.
func (t *ScopeTree) Root() ScopeId {
	return ScopeId{Module: t.module, Index: 0}
}

// Push creates a new child scope of parent and returns its ScopeId.
func (t *ScopeTree) Push(parent ScopeId, kind ScopeKind, depth ScopeDepth) ScopeId {
	if parent.Module != t.module {
		panic("ast: scope parent belongs to a different module")
	}
	sc := newScope(kind, depth, parent)
	idx := len(t.scopes)
	t.scopes = append(t.scopes, sc)
	id := ScopeId{Module: t.module, Index: idx}
	t.at(parent).Children = append(t.at(parent).Children, id)
	return id
}

func (t *ScopeTree) at(id ScopeId) *Scope {
	if id.Module != t.module || id.Index < 0 || id.Index >= len(t.scopes) {
		panic("ast: invalid ScopeId for this module")
	}
	return t.scopes[id.Index]
}

// Scope returns the Scope for id.
func (t *ScopeTree) Scope(id ScopeId) *Scope {
	return t.at(id)
}

// AddObject inserts obj into scope id's owning sequence and kind table.
// It returns false without modifying anything if an object of the same
// kind and name already exists directly in that scope (the caller emits
// the duplicate-definition diagnostic).
func (t *ScopeTree) AddObject(id ScopeId, obj *Obj) bool {
	sc := t.at(id)
	tbl := sc.table(obj.Kind)
	name := obj.Name.Name.String()
	if tbl != nil {
		if _, exists := tbl[name]; exists {
			return false
		}
		tbl[name] = obj
	}
	sc.Objects = append(sc.Objects, obj)
	return true
}

// Lookup walks from id toward the root, returning the first object named
// name. If kind is non-nil only that kind's table is consulted at each
// scope; otherwise variables, then functions, then structs are tried in
// that order.
func (t *ScopeTree) Lookup(id ScopeId, name string, kind *ObjKind) *Obj {
	for cur := id; !cur.IsEmpty(); {
		sc := t.at(cur)
		if kind != nil {
			if tbl := sc.table(*kind); tbl != nil {
				if obj, ok := tbl[name]; ok {
					return obj
				}
			}
		} else {
			if obj, ok := sc.vars[name]; ok {
				return obj
			}
			if obj, ok := sc.fns[name]; ok {
				return obj
			}
			if obj, ok := sc.structs[name]; ok {
				return obj
			}
		}
		cur = sc.Parent
	}
	return nil
}

// LookupLocal looks up name only within scope id, without walking to
// parents. Used for struct field/method resolution, where the search
// must not escape the struct's own scope.
func (t *ScopeTree) LookupLocal(id ScopeId, name string, kind ObjKind) *Obj {
	sc := t.at(id)
	tbl := sc.table(kind)
	if tbl == nil {
		return nil
	}
	return tbl[name]
}

// AddType interns ty into scope id's type set, returning the existing
// equal instance if one was already interned, or ty itself if this is
// the first request for its shape. Caller-provided storage for ty is
// consumed: once passed to AddType, it must not be mutated further.
func (t *ScopeTree) AddType(id ScopeId, ty *Type) *Type {
	sc := t.at(id)
	key := ty.Key()
	if existing, ok := sc.types[key]; ok {
		return existing
	}
	sc.types[key] = ty
	return ty
}
