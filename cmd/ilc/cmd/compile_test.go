package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ilc")
	qt.Assert(t, qt.IsNil(os.WriteFile(path, []byte(src), 0o644)))
	return path
}

func TestRunFrontendArithmeticEndToEnd(t *testing.T) {
	path := writeSource(t, `fn main() -> i32 { return 1 + 2 * 3; }`)
	res, err := runFrontend(path, newProgressLogger(false))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(res.Diag.HadError()))
	qt.Assert(t, qt.IsTrue(strings.Contains(res.Prog.BuildID, "-")))
}

func TestRunFrontendRecursiveStructFails(t *testing.T) {
	path := writeSource(t, `struct A { a: A; } fn main() -> i32 { return 0; }`)
	res, err := runFrontend(path, newProgressLogger(false))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(res.Diag.HadError()))
}

func TestRunFrontendDuplicateDefinitionFails(t *testing.T) {
	path := writeSource(t, `fn foo() {} fn foo() {} fn main() -> i32 { return 0; }`)
	res, err := runFrontend(path, newProgressLogger(false))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(res.Diag.HadError()))
}

func TestRunFrontendMissingFileReturnsError(t *testing.T) {
	_, err := runFrontend(filepath.Join(t.TempDir(), "missing.ilc"), newProgressLogger(false))
	qt.Assert(t, qt.IsNotNil(err))
}

func TestRunCompileDumpsStableASTFormat(t *testing.T) {
	path := writeSource(t, `fn main() -> i32 { return 1 + 2 * 3; }`)

	r, w, err := os.Pipe()
	qt.Assert(t, qt.IsNil(err))
	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	code := runCompile(path, true, false)
	w.Close()
	qt.Assert(t, qt.Equals(code, 0))

	var out strings.Builder
	buf := make([]byte, 4096)
	for {
		n, readErr := r.Read(buf)
		out.Write(buf[:n])
		if readErr != nil {
			break
		}
	}

	qt.Assert(t, qt.IsTrue(strings.Contains(out.String(), "Add(Number 1, Multiply(Number 2, Number 3))")))
}

func TestRunCompileReturnsNonZeroOnDiagnostics(t *testing.T) {
	path := writeSource(t, `fn main() -> i32 { return "hi"; }`)
	code := runCompile(path, false, false)
	qt.Assert(t, qt.Equals(code, 1))
}
