// Command ilc is the compiler front-end driver: it lexes, parses,
// validates, and type-checks one source file, optionally dumping the
// checked AST instead of handing it to a back-end.
package main

import (
	"os"

	"ilctools.dev/ilc/cmd/ilc/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
