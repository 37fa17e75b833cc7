package cmd

import "github.com/spf13/pflag"

// flagName is a distinct string type so flag lookups can't accidentally
// be passed an unrelated string literal, mirroring cmd/cue/cmd/flags.go.
type flagName string

const (
	flagDumpAST flagName = "dump_ast"
	flagVerbose flagName = "verbose"
)

func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolP(string(flagDumpAST), "d", false,
		"dump the checked AST instead of handing it to a back-end")
	f.BoolP(string(flagVerbose), "v", false,
		"print phase progress to stderr")
}

func flagBool(f *pflag.FlagSet, name flagName) bool {
	v, _ := f.GetBool(string(name))
	return v
}
