// Package sourcemap owns source file contents and resolves byte offsets
// to human-readable line and column positions for diagnostics.
package sourcemap

import (
	"fmt"
	"os"
)

// FileId is a dense index into a SourceMap.
type FileId int

// NoFile is the FileId that does not refer to any file.
const NoFile FileId = -1

// Location is a half-open byte span [Start, End) within a single file.
// EMPTY is used for synthetic or primitive definitions that have no
// source position.
type Location struct {
	Start int
	End   int
	File  FileId
}

// EMPTY is the sentinel Location used when there is no source position.
var EMPTY = Location{Start: 0, End: 0, File: NoFile}

// IsEmpty reports whether loc is the EMPTY sentinel.
func (loc Location) IsEmpty() bool {
	return loc.File == NoFile
}

// Merge returns the smallest Location that encloses both loc and other.
// Both must refer to the same file; Merge panics otherwise, since merging
// across files indicates a compiler bug rather than bad input.
func (loc Location) Merge(other Location) Location {
	if loc.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return loc
	}
	if loc.File != other.File {
		panic("sourcemap: cannot merge locations from different files")
	}
	start, end := loc.Start, loc.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Location{Start: start, End: end, File: loc.File}
}

type file struct {
	path  string
	bytes []byte
	// lineStarts[i] is the byte offset of the first byte of line i+1.
	lineStarts []int
}

// Position is a resolved, human-readable source position.
type Position struct {
	Path   string
	Line   int // 1-based
	Column int // 1-based, counted in bytes
}

func (p Position) String() string {
	if p.Path == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Path, p.Line, p.Column)
}

// SourceMap owns the bytes of every file added to it and answers
// offset-to-position queries for diagnostics rendering.
type SourceMap struct {
	files []*file
}

// New returns an empty SourceMap.
func New() *SourceMap {
	return &SourceMap{}
}

// AddFile reads path and registers its contents, returning a stable FileId.
func (sm *SourceMap) AddFile(path string) (FileId, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NoFile, fmt.Errorf("sourcemap: %w", err)
	}
	return sm.AddSource(path, data), nil
}

// AddSource registers already-read contents under path, returning a stable
// FileId. Used for in-memory sources such as those built by tests.
func (sm *SourceMap) AddSource(path string, data []byte) FileId {
	f := &file{path: path, bytes: data}
	f.computeLineStarts()
	sm.files = append(sm.files, f)
	return FileId(len(sm.files) - 1)
}

func (f *file) computeLineStarts() {
	f.lineStarts = []int{0}
	for i, b := range f.bytes {
		if b == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
}

// Path returns the path under which id was registered.
func (sm *SourceMap) Path(id FileId) string {
	return sm.file(id).path
}

// Bytes returns the full contents of file id.
func (sm *SourceMap) Bytes(id FileId) []byte {
	return sm.file(id).bytes
}

// Slice returns the bytes in loc, assuming loc.File is a valid file in sm.
func (sm *SourceMap) Slice(loc Location) []byte {
	if loc.IsEmpty() {
		return nil
	}
	b := sm.Bytes(loc.File)
	if loc.Start < 0 || loc.End > len(b) || loc.Start > loc.End {
		return nil
	}
	return b[loc.Start:loc.End]
}

func (sm *SourceMap) file(id FileId) *file {
	if id < 0 || int(id) >= len(sm.files) {
		panic("sourcemap: invalid FileId")
	}
	return sm.files[id]
}

// NumFiles returns the number of files currently registered.
func (sm *SourceMap) NumFiles() int {
	return len(sm.files)
}

// Position resolves offset within file id to a 1-based line/column.
func (sm *SourceMap) Position(id FileId, offset int) Position {
	f := sm.file(id)
	line := lineForOffset(f.lineStarts, offset)
	col := offset - f.lineStarts[line] + 1
	return Position{Path: f.path, Line: line + 1, Column: col}
}

// lineForOffset returns the 0-based line index containing offset, via
// binary search over line start offsets.
func lineForOffset(lineStarts []int, offset int) int {
	lo, hi := 0, len(lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// Line returns the raw bytes of the 1-based line number in file id, without
// a trailing newline. Returns nil if the line does not exist.
func (sm *SourceMap) Line(id FileId, line int) []byte {
	f := sm.file(id)
	if line < 1 || line > len(f.lineStarts) {
		return nil
	}
	start := f.lineStarts[line-1]
	end := len(f.bytes)
	if line < len(f.lineStarts) {
		end = f.lineStarts[line] - 1 // exclude the '\n'
	}
	if end > 0 && end <= len(f.bytes) && f.bytes[end-1] == '\r' {
		end--
	}
	if start > end {
		start = end
	}
	return f.bytes[start:end]
}
