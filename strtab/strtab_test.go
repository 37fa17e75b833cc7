package strtab

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestInternIdentity(t *testing.T) {
	tab := New()
	a := tab.InternString("foo")
	b := tab.InternString("foo")
	qt.Assert(t, qt.Equals(a, b))
	qt.Assert(t, qt.Equals(a.String(), "foo"))
}

func TestInternDistinctStrings(t *testing.T) {
	tab := New()
	a := tab.InternString("foo")
	b := tab.InternString("bar")
	qt.Assert(t, qt.IsFalse(a == b))
	qt.Assert(t, qt.Equals(tab.Len(), 2))
}

func TestInternBytesSharesEntryWithString(t *testing.T) {
	tab := New()
	a := tab.InternString("foo")
	b := tab.Intern([]byte("foo"))
	qt.Assert(t, qt.Equals(a, b))
	qt.Assert(t, qt.Equals(tab.Len(), 1))
}

func TestZeroValueIsInvalid(t *testing.T) {
	var s InternedString
	qt.Assert(t, qt.IsFalse(s.Valid()))
	qt.Assert(t, qt.Equals(s.String(), ""))
}
