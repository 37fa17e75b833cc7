package cmd

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestScript runs every golden CLI session under testdata/script: each
// .txtar file drives `ilc` as a subprocess-like command (see TestMain)
// and asserts its stdout/stderr/exit code against the script.
func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"ilc": Main,
	}))
}
