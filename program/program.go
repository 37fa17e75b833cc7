// Package program aggregates modules into a Program and exposes them to
// downstream code generation.
package program

import (
	"ilctools.dev/ilc/ast"
	"ilctools.dev/ilc/strtab"
	"ilctools.dev/ilc/typeregistry"
)

// Module owns one arena, one scope tree, its own type registry handle,
// and its top-level variable declarations.
type Module struct {
	Id     ast.ModuleId
	Name   ast.AstString
	Arena  *ast.Arena
	Scopes *ast.ScopeTree
	Types  *typeregistry.Registry

	// Globals is every module-level `var` declaration, in source order.
	Globals []*ast.VarDeclStmt
}

// ModuleScope returns this module's module-level (root) ScopeId.
func (m *Module) ModuleScope() ast.ScopeId {
	return m.Scopes.Root()
}

// Program owns the shared StringTable and the ordered module vector.
// Only a single root module is ever populated by this front-end, but the
// vector shape is kept so a future multi-file front-end can populate
// more without changing this type.
type Program struct {
	Strings *strtab.StringTable
	Modules []*Module

	// BuildID identifies this particular compile invocation. The CLI
	// prints it in the AST dump header and the success summary line, for
	// golden-file correlation across parallel test runs.
	BuildID string
}

// New returns an empty Program with a fresh StringTable.
func New() *Program {
	return &Program{Strings: strtab.New()}
}

// NewModule creates and registers a new Module, installing primitive
// types into its module scope.
func (p *Program) NewModule(name ast.AstString) *Module {
	id := ast.ModuleId(len(p.Modules))
	scopes := ast.NewScopeTree(id)
	root := scopes.Root()
	m := &Module{
		Id:     id,
		Name:   name,
		Arena:  ast.NewArena(),
		Scopes: scopes,
		Types:  typeregistry.New(scopes, id, root),
	}
	p.Modules = append(p.Modules, m)
	return m
}

// RootModule returns the first module added to the program, or nil if
// none has been added yet.
func (p *Program) RootModule() *Module {
	if len(p.Modules) == 0 {
		return nil
	}
	return p.Modules[0]
}

// Module returns the module identified by id.
func (p *Program) Module(id ast.ModuleId) *Module {
	return p.Modules[id]
}
