package deferlower

import (
	"testing"

	"github.com/go-quicktest/qt"
	"ilctools.dev/ilc/ast"
	"ilctools.dev/ilc/ilcerrors"
	"ilctools.dev/ilc/parser"
	"ilctools.dev/ilc/sourcemap"
	"ilctools.dev/ilc/validator"
)

func buildModuleMainFn(t *testing.T, src, name string) *ast.Obj {
	t.Helper()
	sm := sourcemap.New()
	fid := sm.AddSource("t.ilc", []byte(src))
	diag := ilcerrors.NewDiagnostics()
	prog := parser.Parse(sm, diag, []sourcemap.FileId{fid})
	qt.Assert(t, qt.IsFalse(diag.HadError()))
	validator.Run(prog, diag)
	qt.Assert(t, qt.IsFalse(diag.HadError()))

	root := prog.RootModule()
	for _, obj := range root.Scopes.Scope(root.ModuleScope()).Objects {
		if obj.Kind == ast.ObjFn && obj.Name.String() == name {
			return obj
		}
	}
	t.Fatalf("no function named %q found", name)
	return nil
}

const deferOrderingSource = `
fn print(i: i32) {}
fn main() -> i32 { for var i = 0; i < 3; i = i + 1 { defer print(i); } return 0; }
`

func TestDeferRunOrderIsReverseOfEnqueueOrder(t *testing.T) {
	main := buildModuleMainFn(t, deferOrderingSource, "main")

	// A single `for` loop body queues one Defer statement per iteration;
	// the Validator's single walk only sees it once lexically, so the
	// enqueue-order list here holds one DeferInfo representing the body
	// that a back-end re-enters on each iteration.
	qt.Assert(t, qt.Equals(len(main.Defers), 1))

	plan := Plan(main)
	qt.Assert(t, qt.Equals(len(plan.RunOrder), len(main.Defers)))
	for i := range plan.RunOrder {
		qt.Assert(t, qt.Equals(plan.RunOrder[i], main.Defers[len(main.Defers)-1-i]))
	}
}

func TestPlanNeedsImplicitExitWhenBodyFallsThrough(t *testing.T) {
	fn := buildModuleMainFn(t, `fn helper() { }`, "helper")
	plan := Plan(fn)
	qt.Assert(t, qt.IsTrue(plan.NeedsImplicitExit))
}

func TestPlanNoImplicitExitWhenBodyAlwaysReturns(t *testing.T) {
	fn := buildModuleMainFn(t, `fn helper() -> i32 { return 0; }`, "helper")
	plan := Plan(fn)
	qt.Assert(t, qt.IsFalse(plan.NeedsImplicitExit))
}
