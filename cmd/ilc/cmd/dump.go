package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"

	"ilctools.dev/ilc/ast"
)

// dumpAST writes res's root module in the stable structured textual form
// used for golden-file testing. Setting ILC_DUMP_FORMAT=go switches to a
// kr/pretty rendering of the raw Go object graph instead — a debug
// escape hatch, not the stable golden format (grounded on
// cue/parser/parser_test.go's use of kr/pretty for debug object diffs).
func dumpAST(w io.Writer, res *frontendResult) {
	mod := res.Prog.RootModule()
	if mod == nil {
		return
	}
	if os.Getenv("ILC_DUMP_FORMAT") == "go" {
		pretty.Fprintf(w, "%# v\n", mod)
		return
	}
	fmt.Fprintf(w, "# build %s\n", res.Prog.BuildID)
	fmt.Fprint(w, ast.DumpModule(mod.Id, mod.Name, mod.Scopes))
}
