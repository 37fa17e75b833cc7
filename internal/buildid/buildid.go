// Package buildid generates a stable per-invocation identifier attached
// to a Program and printed with its dumped AST, so golden-file tests
// that run compiles in parallel can correlate output back to a single
// run.
package buildid

import "github.com/google/uuid"

// New returns a freshly generated build identifier.
func New() string {
	return uuid.NewString()
}
