// Package cmd implements the ilc command-line driver, grounded on
// cmd/cue/cmd's cobra-based Command wrapper (root.go, flags.go) but
// reduced to a single-file, single-subcommand surface: `-d/--dump_ast`,
// `-h/--help`, and a positional source path defaulting to `test.ilc`.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Command wraps *cobra.Command the way cmd/cue/cmd.Command does, so
// future subcommands can be added without changing the embedding call
// sites.
type Command struct {
	*cobra.Command

	// exitCode carries runCompile's result out of RunE, since cobra's
	// Execute only reports a Go error, not an arbitrary process exit code.
	exitCode int
}

// New constructs the root command.
func New(args []string) *Command {
	c := &Command{}
	root := &cobra.Command{
		Use:   "ilc [flags] [path]",
		Short: "ilc compiles a single source file's front-end stages",
		Args:  cobra.MaximumNArgs(1),

		// We print diagnostics ourselves via ilcerrors.Print; a second
		// generic error line or the full usage banner on every failure
		// would just be noise.
		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cc *cobra.Command, posArgs []string) error {
			path := "test.ilc"
			if len(posArgs) == 1 {
				path = posArgs[0]
			}
			dump := flagBool(cc.Flags(), flagDumpAST)
			verbose := flagBool(cc.Flags(), flagVerbose)
			c.exitCode = runCompile(path, dump, verbose)
			return nil
		},
	}
	addGlobalFlags(root.Flags())
	root.SetArgs(args)
	c.Command = root
	return c
}

// Main runs the ilc tool and returns the process exit code.
func Main() int {
	c := New(os.Args[1:])
	if err := c.Execute(); err != nil {
		return 2
	}
	return c.exitCode
}
