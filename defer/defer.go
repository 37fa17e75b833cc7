// Package deferlower computes, for every function in a checked Program,
// the back-end-ready exit plan: the function's deferred statements in
// LIFO execution order, and whether the function needs an implicit
// trailing epilogue inserted after its last statement (a block whose
// ControlFlow already joins to AlwaysReturns needs none).
//
// The Validator (package validator) is the one that populates each
// function Obj's Defers slice and computes each Defer's capture set
// during its single walk of the checked tree; this package does not
// re-walk statements. Its only job is the exit-shape decision: every
// `return` (and any implicit fall-through) targets one sentinel exit per
// function, and the defer chain runs once, immediately before it, in
// reverse of enqueue order.
//
// Named deferlower, not defer, because `defer` is a Go keyword and
// cannot name a package.
package deferlower

import (
	"ilctools.dev/ilc/ast"
	"ilctools.dev/ilc/program"
)

// ExitPlan is the back-end-facing shape of one function's exit: the
// order its deferred bodies run in, and whether a trailing epilogue must
// be synthesized because control can fall off the end of the body.
type ExitPlan struct {
	Fn *ast.Obj

	// RunOrder is Fn.Defers reversed: the order deferred bodies actually
	// execute in at any exit, last-enqueued first.
	RunOrder []*ast.DeferInfo

	// NeedsImplicitExit is true when Fn.Body's joined ControlFlow is not
	// AlwaysReturns, meaning the back-end must insert a fall-through jump
	// to the exit label after the last statement.
	NeedsImplicitExit bool
}

// Plan computes the ExitPlan for a single function.
func Plan(fn *ast.Obj) *ExitPlan {
	p := &ExitPlan{Fn: fn}
	p.RunOrder = make([]*ast.DeferInfo, len(fn.Defers))
	for i, d := range fn.Defers {
		p.RunOrder[len(fn.Defers)-1-i] = d
	}
	if fn.Body != nil {
		p.NeedsImplicitExit = fn.Body.Flow != ast.CFAlwaysReturns
	}
	return p
}

// PlanProgram computes an ExitPlan for every Fn object (free functions and
// methods) across every module of prog, keyed by object identity so a
// back-end can look a function's plan up as it emits its body.
func PlanProgram(prog *program.Program) map[*ast.Obj]*ExitPlan {
	plans := map[*ast.Obj]*ExitPlan{}
	for _, mod := range prog.Modules {
		scope := mod.ModuleScope()
		for _, obj := range mod.Scopes.Scope(scope).Objects {
			switch obj.Kind {
			case ast.ObjFn:
				plans[obj] = Plan(obj)
			case ast.ObjStruct:
				for _, field := range mod.Scopes.Scope(obj.Scope).Objects {
					if field.Kind == ast.ObjFn {
						plans[field] = Plan(field)
					}
				}
			}
		}
	}
	return plans
}
