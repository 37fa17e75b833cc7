// Package ilcerrors defines the diagnostic taxonomy shared by every phase
// of the compiler front-end, and the accumulating sink each phase is
// handed by the driver.
package ilcerrors

import (
	"fmt"

	"ilctools.dev/ilc/sourcemap"
)

// Kind distinguishes a hint from a hard error. Rendering differs only in
// the label printed; accumulation and counting treat both uniformly.
type Kind int

const (
	Error Kind = iota
	Hint
)

func (k Kind) String() string {
	switch k {
	case Error:
		return "error"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Code classifies *why* a diagnostic was raised. It does not affect
// control flow; it exists so callers (and tests) can assert on the class
// of failure without string-matching messages.
type Code int

const (
	// Lexical: unknown character, unterminated literal.
	Lexical Code = iota
	// Syntactic: expected-token mismatches, invalid assignment target,
	// unexpected end of input.
	Syntactic
	// Structural: duplicate definition, unknown identifier/typename,
	// wrong declaration context.
	Structural
	// Semantic: type mismatch, arity mismatch, return mismatch,
	// non-boolean condition, recursive struct, missing main.
	Semantic
	// Internal: invariant violations. Never expected on valid input;
	// the driver treats these as fatal.
	Internal
)

func (c Code) String() string {
	switch c {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntactic"
	case Structural:
		return "structural"
	case Semantic:
		return "semantic"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Diagnostic is a single accumulated error or hint. It implements error
// so it can be returned or wrapped with the standard errors package.
type Diagnostic struct {
	Kind    Kind
	Code    Code
	Loc     sourcemap.Location // sourcemap.EMPTY if positionless
	Message string
}

func (d *Diagnostic) Error() string {
	return d.Message
}

// Diagnostics is the single appendable sink threaded by reference through
// every compiler phase; writes are never concurrent.
type Diagnostics struct {
	entries   []*Diagnostic
	errCount  int
	hintCount int
}

// NewDiagnostics returns an empty collector.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Addf appends a formatted error diagnostic at loc.
func (d *Diagnostics) Addf(code Code, loc sourcemap.Location, format string, args ...any) *Diagnostic {
	diag := &Diagnostic{Kind: Error, Code: code, Loc: loc, Message: fmt.Sprintf(format, args...)}
	d.entries = append(d.entries, diag)
	d.errCount++
	return diag
}

// Hintf appends a formatted hint diagnostic at loc.
func (d *Diagnostics) Hintf(code Code, loc sourcemap.Location, format string, args ...any) *Diagnostic {
	diag := &Diagnostic{Kind: Hint, Code: code, Loc: loc, Message: fmt.Sprintf(format, args...)}
	d.entries = append(d.entries, diag)
	d.hintCount++
	return diag
}

// HadError reports whether any Error-kind diagnostic has been recorded.
// The driver consults this between phases and halts the pipeline if set.
func (d *Diagnostics) HadError() bool {
	return d.errCount > 0
}

// Entries returns all accumulated diagnostics in insertion order.
func (d *Diagnostics) Entries() []*Diagnostic {
	return d.entries
}

// ErrorCount returns the number of Error-kind diagnostics recorded.
func (d *Diagnostics) ErrorCount() int {
	return d.errCount
}
