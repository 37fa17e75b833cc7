package lexer

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"ilctools.dev/ilc/ilcerrors"
	"ilctools.dev/ilc/sourcemap"
	"ilctools.dev/ilc/token"
)

func scanAll(t *testing.T, src string) ([]Token, *ilcerrors.Diagnostics) {
	t.Helper()
	sm := sourcemap.New()
	fid := sm.AddSource("t.ilc", []byte(src))
	diag := ilcerrors.NewDiagnostics()
	l := New(sm, diag, fid)

	var toks []Token
	for {
		tok := l.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, diag
}

func kinds(toks []Token) []token.Token {
	ks := make([]token.Token, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks, diag := scanAll(t, "fn main struct foo123")
	qt.Assert(t, qt.IsFalse(diag.HadError()))
	want := []token.Token{token.FN, token.IDENT, token.STRUCT, token.IDENT, token.EOF}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
	qt.Assert(t, qt.Equals(toks[1].Lit, "main"))
	qt.Assert(t, qt.Equals(toks[3].Lit, "foo123"))
}

func TestScanNumberStripsUnderscoreSeparators(t *testing.T) {
	toks, diag := scanAll(t, "1_000_000")
	qt.Assert(t, qt.IsFalse(diag.HadError()))
	qt.Assert(t, qt.Equals(toks[0].Kind, token.NUMBER))
	qt.Assert(t, qt.Equals(toks[0].Lit, "1000000"))
}

func TestScanStringLiteral(t *testing.T) {
	toks, diag := scanAll(t, `"hello world"`)
	qt.Assert(t, qt.IsFalse(diag.HadError()))
	qt.Assert(t, qt.Equals(toks[0].Kind, token.STRING))
	qt.Assert(t, qt.Equals(toks[0].Lit, "hello world"))
}

func TestScanUnterminatedStringRecordsLexicalDiagnostic(t *testing.T) {
	_, diag := scanAll(t, `"unterminated`)
	qt.Assert(t, qt.IsTrue(diag.HadError()))
	qt.Assert(t, qt.Equals(diag.Entries()[0].Code, ilcerrors.Lexical))
}

func TestScanSkipsLineComments(t *testing.T) {
	toks, diag := scanAll(t, "1 // a comment\n+ 2")
	qt.Assert(t, qt.IsFalse(diag.HadError()))
	want := []token.Token{token.NUMBER, token.PLUS, token.NUMBER, token.EOF}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestScanMultiCharOperators(t *testing.T) {
	toks, diag := scanAll(t, "-> => == != <= >= += -= ...")
	qt.Assert(t, qt.IsFalse(diag.HadError()))
	want := []token.Token{
		token.ARROW, token.FATARROW, token.EQEQ, token.BANGEQ,
		token.LTEQ, token.GTEQ, token.PLUSEQ, token.MINUSEQ,
		token.ELLIPSIS, token.EOF,
	}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestScanUnknownCharacterYieldsGarbageAndDiagnostic(t *testing.T) {
	toks, diag := scanAll(t, "1 ` 2")
	qt.Assert(t, qt.IsTrue(diag.HadError()))
	want := []token.Token{token.NUMBER, token.GARBAGE, token.NUMBER, token.EOF}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}
