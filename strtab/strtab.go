// Package strtab interns identifiers and string literals so that equal
// byte sequences compare identity-equal for the lifetime of the Program.
package strtab

import "fmt"

// InternedString is a stable handle into a StringTable. Equality between
// two handles from the same table is identity equality.
type InternedString struct {
	table *StringTable
	index int
}

// String returns the underlying bytes as a string.
func (s InternedString) String() string {
	if s.table == nil {
		return ""
	}
	return s.table.strings[s.index]
}

// Valid reports whether s was produced by a StringTable.Intern call.
func (s InternedString) Valid() bool {
	return s.table != nil
}

// StringTable interns byte sequences, handing back identity-stable
// handles. Its lifetime is tied to the owning Program and it is shared
// read-only by every module in that program.
type StringTable struct {
	strings []string
	index   map[string]int
}

// New returns an empty StringTable.
func New() *StringTable {
	return &StringTable{index: make(map[string]int)}
}

// Intern returns the InternedString for b, allocating a new entry only if
// b has not been seen before in this table. The input bytes are copied;
// ownership of b is not taken.
func (t *StringTable) Intern(b []byte) InternedString {
	return t.InternString(string(b))
}

// InternString is Intern for an already-materialized Go string, avoiding a
// redundant copy when the caller already has one.
func (t *StringTable) InternString(s string) InternedString {
	if idx, ok := t.index[s]; ok {
		return InternedString{table: t, index: idx}
	}
	idx := len(t.strings)
	t.strings = append(t.strings, s)
	t.index[s] = idx
	return InternedString{table: t, index: idx}
}

// Internf formats according to format and args, then interns the result.
func (t *StringTable) Internf(format string, args ...any) InternedString {
	return t.InternString(fmt.Sprintf(format, args...))
}

// Len returns the number of distinct strings interned so far.
func (t *StringTable) Len() int {
	return len(t.strings)
}
