package typecheck

import (
	"testing"

	"github.com/go-quicktest/qt"
	"ilctools.dev/ilc/ilcerrors"
	"ilctools.dev/ilc/parser"
	"ilctools.dev/ilc/sourcemap"
	"ilctools.dev/ilc/validator"
)

func checkSource(t *testing.T, src string) *ilcerrors.Diagnostics {
	t.Helper()
	sm := sourcemap.New()
	fid := sm.AddSource("t.ilc", []byte(src))
	diag := ilcerrors.NewDiagnostics()
	prog := parser.Parse(sm, diag, []sourcemap.FileId{fid})
	qt.Assert(t, qt.IsFalse(diag.HadError()), qt.Commentf("unexpected parse error"))
	validator.Run(prog, diag)
	qt.Assert(t, qt.IsFalse(diag.HadError()), qt.Commentf("unexpected validation error"))
	Run(prog, diag)
	return diag
}

func TestArithmeticEndToEndTypeChecksClean(t *testing.T) {
	diag := checkSource(t, `fn main() -> i32 { return 1 + 2 * 3; }`)
	qt.Assert(t, qt.IsFalse(diag.HadError()))
}

func TestReturnTypeMismatchIsReported(t *testing.T) {
	diag := checkSource(t, `fn main() -> i32 { return "hi"; }`)
	qt.Assert(t, qt.IsTrue(diag.HadError()))
	qt.Assert(t, qt.Equals(len(diag.Entries()), 1))
	qt.Assert(t, qt.Equals(diag.Entries()[0].Code, ilcerrors.Semantic))
}

func TestMissingMainReportsNoEntryPointWithoutLocation(t *testing.T) {
	diag := checkSource(t, `fn helper() {}`)
	qt.Assert(t, qt.IsTrue(diag.HadError()))
	qt.Assert(t, qt.Equals(len(diag.Entries()), 1))
	entry := diag.Entries()[0]
	qt.Assert(t, qt.Equals(entry.Code, ilcerrors.Semantic))
	qt.Assert(t, qt.IsTrue(entry.Loc.IsEmpty()))
}

func TestCallArgumentArityMismatchIsReported(t *testing.T) {
	diag := checkSource(t, `
fn add(a: i32, b: i32) -> i32 { return a + b; }
fn main() -> i32 { return add(1); }
`)
	qt.Assert(t, qt.IsTrue(diag.HadError()))
}
