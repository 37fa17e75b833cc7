package parser

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"ilctools.dev/ilc/ast"
	"ilctools.dev/ilc/validator"
)

func TestDumpModuleArithmeticShape(t *testing.T) {
	prog, diag := parseSource(t, `fn main() -> i32 { return 1 + 2 * 3; }`)
	qt.Assert(t, qt.IsFalse(diag.HadError()))

	root := prog.RootModule()
	out := ast.DumpModule(root.Id, root.Name, root.Scopes)

	qt.Assert(t, qt.IsTrue(strings.Contains(out, "Return")))
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "Add(Number 1, Multiply(Number 2, Number 3))")))
}

// TestDumpIsStableAcrossRepeatedRenders asserts that dumping the same
// validated module twice produces byte-identical text: no map iteration
// or pointer address leaks into the output.
func TestDumpIsStableAcrossRepeatedRenders(t *testing.T) {
	prog, diag := parseSource(t, `
struct Point { x: i32; y: i32; fn sum() -> i32 { return x + y; } }
fn main() -> i32 { var p = 1; for var i = 0; i < 3; i = i + 1 { defer main(); } return p; }
`)
	qt.Assert(t, qt.IsFalse(diag.HadError()))
	validator.Run(prog, diag)
	qt.Assert(t, qt.IsFalse(diag.HadError()), qt.Commentf("unexpected validation error"))

	root := prog.RootModule()
	first := ast.DumpModule(root.Id, root.Name, root.Scopes)
	second := ast.DumpModule(root.Id, root.Name, root.Scopes)
	qt.Assert(t, qt.Equals(first, second))

	countNodes := func(s string) int {
		n := 0
		for _, line := range strings.Split(s, "\n") {
			if strings.TrimSpace(line) != "" {
				n++
			}
		}
		return n
	}
	qt.Assert(t, qt.Equals(countNodes(first), countNodes(second)))
}
