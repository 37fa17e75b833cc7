package sourcemap

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestPositionResolvesLineAndColumn(t *testing.T) {
	sm := New()
	fid := sm.AddSource("t.ilc", []byte("fn main() {\n  return 1;\n}\n"))

	pos := sm.Position(fid, 0)
	qt.Assert(t, qt.Equals(pos.Line, 1))
	qt.Assert(t, qt.Equals(pos.Column, 1))

	// offset of 'return' on the second line.
	returnOffset := 14
	pos = sm.Position(fid, returnOffset)
	qt.Assert(t, qt.Equals(pos.Line, 2))
	qt.Assert(t, qt.Equals(pos.Column, 3))
}

func TestLineReturnsRawBytesWithoutTrailingNewline(t *testing.T) {
	sm := New()
	fid := sm.AddSource("t.ilc", []byte("first\nsecond\nthird"))

	qt.Assert(t, qt.Equals(string(sm.Line(fid, 1)), "first"))
	qt.Assert(t, qt.Equals(string(sm.Line(fid, 2)), "second"))
	qt.Assert(t, qt.Equals(string(sm.Line(fid, 3)), "third"))
	qt.Assert(t, qt.IsNil(sm.Line(fid, 4)))
}

func TestLocationMergeAcrossEmptySentinel(t *testing.T) {
	fid := FileId(0)
	a := Location{Start: 3, End: 7, File: fid}

	qt.Assert(t, qt.Equals(EMPTY.Merge(a), a))
	qt.Assert(t, qt.Equals(a.Merge(EMPTY), a))

	b := Location{Start: 1, End: 5, File: fid}
	merged := a.Merge(b)
	qt.Assert(t, qt.Equals(merged, Location{Start: 1, End: 7, File: fid}))
}

func TestSliceReturnsLocationBytes(t *testing.T) {
	sm := New()
	fid := sm.AddSource("t.ilc", []byte("1 + 2 * 3"))
	loc := Location{Start: 0, End: 1, File: fid}
	qt.Assert(t, qt.Equals(string(sm.Slice(loc)), "1"))
	qt.Assert(t, qt.IsNil(sm.Slice(EMPTY)))
}
