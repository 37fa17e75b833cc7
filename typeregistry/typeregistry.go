// Package typeregistry installs the language's primitive types once on
// the root module and interns pointer/function/struct types lazily on
// first reference. Interning itself is delegated to
// ast.ScopeTree.AddType; this package only knows which scope to ask and
// owns the primitive singletons.
package typeregistry

import "ilctools.dev/ilc/ast"

// Registry resolves primitive types for the root module and provides the
// lazy interning helpers used by the parser and validator.
type Registry struct {
	rootModule ast.ModuleId
	rootScope  ast.ScopeId
	tree       *ast.ScopeTree

	voidT, i32T, u32T, boolT, strT *ast.Type
}

// New installs the primitive types into rootScope of tree (the root
// module's module scope) and returns a Registry.
func New(tree *ast.ScopeTree, rootModule ast.ModuleId, rootScope ast.ScopeId) *Registry {
	r := &Registry{rootModule: rootModule, rootScope: rootScope, tree: tree}
	r.voidT = tree.AddType(rootScope, ast.NewVoid(rootModule))
	r.i32T = tree.AddType(rootScope, ast.NewI32(rootModule))
	r.u32T = tree.AddType(rootScope, ast.NewU32(rootModule))
	r.boolT = tree.AddType(rootScope, ast.NewBool(rootModule))
	r.strT = tree.AddType(rootScope, ast.NewStr(rootModule))
	return r
}

func (r *Registry) Void() *ast.Type { return r.voidT }
func (r *Registry) I32() *ast.Type  { return r.i32T }
func (r *Registry) U32() *ast.Type  { return r.u32T }
func (r *Registry) Bool() *ast.Type { return r.boolT }
func (r *Registry) Str() *ast.Type  { return r.strT }

// Primitive resolves typename against the primitive set, resolvable by
// name from any scope in any module, or returns nil if typename does not
// name a primitive.
func (r *Registry) Primitive(typename string) *ast.Type {
	switch typename {
	case "void":
		return r.voidT
	case "i32":
		return r.i32T
	case "u32":
		return r.u32T
	case "bool":
		return r.boolT
	case "str":
		return r.strT
	default:
		return nil
	}
}

// Pointer interns (or returns the previously interned) pointer type to
// inner within scope.
func (r *Registry) Pointer(scope ast.ScopeId, inner *ast.Type) *ast.Type {
	mod := scope.Module
	return r.tree.AddType(scope, ast.NewPointer(mod, inner))
}

// Function interns (or returns the previously interned) function type
// within scope.
func (r *Registry) Function(scope ast.ScopeId, ret *ast.Type, params []*ast.Type) *ast.Type {
	mod := scope.Module
	return r.tree.AddType(scope, ast.NewFunction(mod, ret, params))
}

// Struct interns (or returns the previously interned) struct type for obj
// within scope. Struct types compare by identity (same declaring module,
// same object), so interning here mainly guarantees a stable handle is
// reused when the same struct name is referenced repeatedly.
func (r *Registry) Struct(scope ast.ScopeId, obj *ast.Obj) *ast.Type {
	mod := scope.Module
	return r.tree.AddType(scope, ast.NewStruct(mod, obj))
}
