package validator

import (
	"testing"

	"github.com/go-quicktest/qt"
	"ilctools.dev/ilc/ast"
	"ilctools.dev/ilc/ilcerrors"
	"ilctools.dev/ilc/parser"
	"ilctools.dev/ilc/program"
	"ilctools.dev/ilc/sourcemap"
)

func parseAndValidate(t *testing.T, src string) (*program.Program, *ilcerrors.Diagnostics) {
	t.Helper()
	sm := sourcemap.New()
	fid := sm.AddSource("t.ilc", []byte(src))
	diag := ilcerrors.NewDiagnostics()
	prog := parser.Parse(sm, diag, []sourcemap.FileId{fid})
	qt.Assert(t, qt.IsFalse(diag.HadError()), qt.Commentf("unexpected parse error"))
	Run(prog, diag)
	return prog, diag
}

func TestResolvesIdentifierToVariable(t *testing.T) {
	prog, diag := parseAndValidate(t, `fn main() -> i32 { var x = 1; return x; }`)
	qt.Assert(t, qt.IsFalse(diag.HadError()))

	root := prog.RootModule()
	fn := root.Scopes.Scope(root.ModuleScope()).Objects[0]
	ret := fn.Body.Nodes[1].(*ast.ReturnStmt)
	v, ok := ret.Expr.(*ast.VariableExpr)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v.Obj.Name.String(), "x"))
}

func TestEveryExpressionHasNonNilDataTypeAfterValidation(t *testing.T) {
	prog, diag := parseAndValidate(t, `
struct Point { x: i32; fn sum() -> i32 { return x + 1; } }
fn helper(p: i32) -> i32 { return p; }
fn main() -> i32 {
	var x = 1 + 2 * 3;
	if x > 0 { x = helper(x); } else { x = -x; }
	while x < 10 { defer main(); x = x + 1; }
	return x;
}
`)
	qt.Assert(t, qt.IsFalse(diag.HadError()))
	assertEveryExpressionTyped(t, prog)
}

// assertEveryExpressionTyped walks every function body reachable from the
// program's root module (module-scope functions, struct methods, and
// globals) and fails the test if any expression node's Type() is nil.
func assertEveryExpressionTyped(t *testing.T, prog *program.Program) {
	t.Helper()
	root := prog.RootModule()
	for _, g := range root.Globals {
		walkStmtAssertTyped(t, g)
	}
	walkScopeAssertTyped(t, root.Scopes, root.ModuleScope())
}

func walkScopeAssertTyped(t *testing.T, tree *ast.ScopeTree, id ast.ScopeId) {
	t.Helper()
	sc := tree.Scope(id)
	for _, obj := range sc.Objects {
		if obj.Kind == ast.ObjFn && obj.Body != nil {
			walkStmtAssertTyped(t, obj.Body)
		}
	}
	for _, child := range sc.Children {
		walkScopeAssertTyped(t, tree, child)
	}
}

func walkStmtAssertTyped(t *testing.T, s ast.StmtNode) {
	t.Helper()
	switch n := s.(type) {
	case *ast.VarDeclStmt:
		if n.Initializer != nil {
			walkExprAssertTyped(t, n.Initializer)
		}
	case *ast.BlockStmt:
		for _, child := range n.Nodes {
			walkStmtAssertTyped(t, child)
		}
	case *ast.IfStmt:
		walkExprAssertTyped(t, n.Condition)
		walkStmtAssertTyped(t, n.Then)
		if n.Else != nil {
			walkStmtAssertTyped(t, n.Else)
		}
	case *ast.ExpectStmt:
		walkExprAssertTyped(t, n.Condition)
		if n.Then != nil {
			walkStmtAssertTyped(t, n.Then)
		}
	case *ast.WhileStmt:
		if n.Initializer != nil {
			walkStmtAssertTyped(t, n.Initializer)
		}
		walkExprAssertTyped(t, n.Condition)
		if n.Increment != nil {
			walkExprAssertTyped(t, n.Increment)
		}
		walkStmtAssertTyped(t, n.Body)
	case *ast.ReturnStmt:
		if n.Expr != nil {
			walkExprAssertTyped(t, n.Expr)
		}
	case *ast.ExprStmt:
		walkExprAssertTyped(t, n.Expr)
	case *ast.DeferStmt:
		walkStmtAssertTyped(t, n.Body)
	}
}

func walkExprAssertTyped(t *testing.T, e ast.ExprNode) {
	t.Helper()
	qt.Assert(t, qt.IsNotNil(e.Type()), qt.Commentf("%T at %v has nil Type()", e, e.Pos()))
	switch n := e.(type) {
	case *ast.UnaryExpr:
		walkExprAssertTyped(t, n.Operand)
	case *ast.BinaryExpr:
		walkExprAssertTyped(t, n.LHS)
		walkExprAssertTyped(t, n.RHS)
	case *ast.CallExpr:
		walkExprAssertTyped(t, n.Callee)
		for _, arg := range n.Arguments {
			walkExprAssertTyped(t, arg)
		}
	}
}

func TestRecursiveStructIsRejectedAtFieldLocation(t *testing.T) {
	_, diag := parseAndValidate(t, `struct A { a: A; } fn main() -> i32 { return 0; }`)
	qt.Assert(t, qt.IsTrue(diag.HadError()))
	qt.Assert(t, qt.Equals(len(diag.Entries()), 1))
	qt.Assert(t, qt.Equals(diag.Entries()[0].Code, ilcerrors.Semantic))
	// "struct A { " is 11 bytes; the field "a: A;" starts at offset 11.
	qt.Assert(t, qt.Equals(diag.Entries()[0].Loc.Start, 11))
}

func TestDuplicateTopLevelDefinitionReportsAtSecondDeclaration(t *testing.T) {
	sm := sourcemap.New()
	src := `fn foo() {} fn foo() {} fn main() -> i32 { return 0; }`
	fid := sm.AddSource("t.ilc", []byte(src))
	diag := ilcerrors.NewDiagnostics()
	prog := parser.Parse(sm, diag, []sourcemap.FileId{fid})
	qt.Assert(t, qt.IsTrue(diag.HadError()))

	second := diag.Entries()[0]
	qt.Assert(t, qt.Equals(second.Code, ilcerrors.Structural))

	pos := sm.Position(fid, second.Loc.Start)
	// "fn foo() {} " is 12 bytes; the second "fn foo" starts at offset 12.
	qt.Assert(t, qt.Equals(pos.Column, 13))

	Run(prog, diag)
}

func TestStructFieldResolvesWithinStructScopeOnly(t *testing.T) {
	_, diag := parseAndValidate(t, `
struct Point { x: i32; fn get() -> i32 { return x; } }
fn main() -> i32 { return 0; }
`)
	qt.Assert(t, qt.IsFalse(diag.HadError()))
}
