package ast

import (
	"ilctools.dev/ilc/sourcemap"
	"ilctools.dev/ilc/strtab"
)

// AstString pairs an interned name with the source location where it was
// written.
type AstString struct {
	Loc  sourcemap.Location
	Name strtab.InternedString
}

func (s AstString) String() string {
	return s.Name.String()
}
