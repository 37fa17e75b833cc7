package cmd

import (
	"log"
	"os"

	"ilctools.dev/ilc/ilcerrors"
	"ilctools.dev/ilc/internal/buildid"
	"ilctools.dev/ilc/parser"
	"ilctools.dev/ilc/program"
	"ilctools.dev/ilc/sourcemap"
	"ilctools.dev/ilc/typecheck"
	"ilctools.dev/ilc/validator"
)

// progressLogger prints phase-boundary notes to stderr when -v is set,
// using plain stdlib log rather than a structured logging package at
// the CLI boundary (see DESIGN.md).
type progressLogger struct {
	verbose bool
	l       *log.Logger
}

func newProgressLogger(verbose bool) *progressLogger {
	return &progressLogger{verbose: verbose, l: log.New(os.Stderr, "ilc: ", 0)}
}

func (p *progressLogger) Phase(name string) {
	if p.verbose {
		p.l.Printf("%s", name)
	}
}

// frontendResult bundles everything the dump and compile subcommands need
// after running the shared pipeline once.
type frontendResult struct {
	Prog *program.Program
	Diag *ilcerrors.Diagnostics
	SM   *sourcemap.SourceMap
}

// runFrontend lexes, parses, validates, and type-checks the single file at
// path. Each phase only runs if the previous one recorded no errors, so
// the pipeline skips phases downstream of any phase that emitted at
// least one error.
func runFrontend(path string, log *progressLogger) (*frontendResult, error) {
	sm := sourcemap.New()
	fid, err := sm.AddFile(path)
	if err != nil {
		return nil, err
	}

	diag := ilcerrors.NewDiagnostics()

	log.Phase("parsing " + path)
	prog := parser.Parse(sm, diag, []sourcemap.FileId{fid})
	prog.BuildID = buildid.New()

	if !diag.HadError() {
		log.Phase("resolving names and types")
		validator.Run(prog, diag)
	}
	if !diag.HadError() {
		log.Phase("type-checking")
		typecheck.Run(prog, diag)
	}

	return &frontendResult{Prog: prog, Diag: diag, SM: sm}, nil
}
