// Package backend defines the contract a code generator implements to
// consume a checked Program. Only the contract lives here — no C
// emission or any other concrete code generator; Emit merely guarantees
// the consumption ORDER the back-end is entitled to rely on.
package backend

import (
	"ilctools.dev/ilc/ast"
	deferlower "ilctools.dev/ilc/defer"
	"ilctools.dev/ilc/program"
)

// Backend receives a checked Program through a fixed sequence of calls.
// It must not mutate anything reachable from prog; it may keep its own
// auxiliary tables keyed by interned name or object identity.
type Backend interface {
	BeginProgram(prog *program.Program) error
	BeginModule(mod *program.Module) error

	// DeclareStruct is called once per struct object in a module's scope,
	// in dependency order: a struct is always declared before any struct
	// that contains it by value. obj.Scope gives the backend access to
	// the struct's own fields and methods.
	DeclareStruct(mod *program.Module, obj *ast.Obj) error

	// DeclareVar is called once per module-scope variable object.
	DeclareVar(mod *program.Module, obj *ast.Obj) error

	// ForwardDeclareFn and DefineFn together implement the "functions
	// twice" rule: every function and extern function is forward-declared
	// first, then (for functions with a body) defined. DefineFn is never
	// called for extern functions, which have no body or defers.
	ForwardDeclareFn(mod *program.Module, obj *ast.Obj) error
	DefineFn(mod *program.Module, obj *ast.Obj, plan *deferlower.ExitPlan) error

	EndModule(mod *program.Module) error
	EndProgram(prog *program.Program) error
}

// Emit drives b over prog in a fixed, back-end-relied-on order. plans
// supplies each function's computed defer exit plan (see package
// deferlower); Emit looks a function's plan up by object identity.
// Extern functions are forward-declared only.
func Emit(prog *program.Program, plans map[*ast.Obj]*deferlower.ExitPlan, b Backend) error {
	if err := b.BeginProgram(prog); err != nil {
		return err
	}
	for _, mod := range prog.Modules {
		if err := emitModule(mod, plans, b); err != nil {
			return err
		}
	}
	return b.EndProgram(prog)
}

func emitModule(mod *program.Module, plans map[*ast.Obj]*deferlower.ExitPlan, b Backend) error {
	if err := b.BeginModule(mod); err != nil {
		return err
	}

	objs := mod.Scopes.Scope(mod.ModuleScope()).Objects
	var structs, vars, fns []*ast.Obj
	for _, obj := range objs {
		switch obj.Kind {
		case ast.ObjStruct:
			structs = append(structs, obj)
		case ast.ObjVar:
			vars = append(vars, obj)
		case ast.ObjFn, ast.ObjExternFn:
			fns = append(fns, obj)
		}
	}

	for _, s := range topoSortStructs(mod, structs) {
		if err := b.DeclareStruct(mod, s); err != nil {
			return err
		}
	}
	for _, v := range vars {
		if err := b.DeclareVar(mod, v); err != nil {
			return err
		}
	}
	for _, fn := range fns {
		if err := b.ForwardDeclareFn(mod, fn); err != nil {
			return err
		}
	}
	for _, fn := range fns {
		if fn.Kind != ast.ObjFn {
			continue // extern functions have no body to define
		}
		if err := b.DefineFn(mod, fn, plans[fn]); err != nil {
			return err
		}
	}

	return b.EndModule(mod)
}

// topoSortStructs orders structs so that a struct precedes any struct
// that contains it by value. Validated input is assumed acyclic (the
// Validator already rejects struct recursion); the visiting-state guard
// below only prevents a hang if that invariant is somehow violated by
// the time the back-end runs.
func topoSortStructs(mod *program.Module, structs []*ast.Obj) []*ast.Obj {
	const (
		unvisited = iota
		visiting
		done
	)
	state := map[*ast.Obj]int{}
	var order []*ast.Obj

	var visit func(obj *ast.Obj)
	visit = func(obj *ast.Obj) {
		if state[obj] != unvisited {
			return
		}
		state[obj] = visiting
		for _, field := range mod.Scopes.Scope(obj.Scope).Objects {
			if field.Kind != ast.ObjVar {
				continue
			}
			if ft := field.DataType; ft != nil && ft.Kind == ast.TStruct {
				visit(ft.StructObj)
			}
		}
		state[obj] = done
		order = append(order, obj)
	}
	for _, s := range structs {
		visit(s)
	}
	return order
}
