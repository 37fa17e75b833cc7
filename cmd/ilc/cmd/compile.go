package cmd

import (
	"fmt"
	"os"

	"ilctools.dev/ilc/ilcerrors"
)

// runCompile drives the shared front-end pipeline for path and reports the
// outcome. Without -d/--dump_ast there is no back-end to hand the checked
// Program to (back-end internals are out of scope for this front-end), so
// success is reported as a one-line summary rather than emitted code.
func runCompile(path string, dump bool, verbose bool) int {
	log := newProgressLogger(verbose)

	res, err := runFrontend(path, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ilc: %v\n", err)
		return 1
	}

	if res.Diag.HadError() {
		ilcerrors.Print(os.Stderr, res.Diag, res.SM)
		return 1
	}

	if dump {
		dumpAST(os.Stdout, res)
		return 0
	}

	fmt.Fprintf(os.Stdout, "ok: %s compiled with no errors (build %s)\n", path, res.Prog.BuildID)
	return 0
}
