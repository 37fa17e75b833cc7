package lexer

import (
	"ilctools.dev/ilc/ilcerrors"
	"ilctools.dev/ilc/sourcemap"
	"ilctools.dev/ilc/token"
)

// Stream chains the Lexers of several files so that, from the parser's
// point of view, source text flows seamlessly across file boundaries and
// EOF is reported only once every file has been consumed.
type Stream struct {
	sm    *sourcemap.SourceMap
	diag  *ilcerrors.Diagnostics
	files []sourcemap.FileId
	idx   int
	cur   *Lexer
}

// NewStream returns a Stream over files, in order.
func NewStream(sm *sourcemap.SourceMap, diag *ilcerrors.Diagnostics, files []sourcemap.FileId) *Stream {
	s := &Stream{sm: sm, diag: diag, files: files}
	if len(files) > 0 {
		s.cur = New(sm, diag, files[0])
	}
	return s
}

// Scan returns the next token, transparently advancing across file
// boundaries; it yields token.EOF only once every file is exhausted.
func (s *Stream) Scan() Token {
	for {
		if s.cur == nil {
			return Token{Kind: token.EOF}
		}
		tok := s.cur.Scan()
		if tok.Kind != token.EOF {
			return tok
		}
		s.idx++
		if s.idx >= len(s.files) {
			s.cur = nil
			return tok
		}
		s.cur = New(s.sm, s.diag, s.files[s.idx])
	}
}
