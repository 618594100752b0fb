// Copyright (C) 2026 M. Finley. All Rights Reserved.

package jtext

import (
	"fmt"
	"strings"

	"go4.org/mem"
)

// Scan performs a single left-to-right pass over src and converts it into a
// token sequence. Scanning never stops early: every lexical error found is
// accumulated into the returned ErrorList, a best-effort token is still
// emitted for most malformed lexemes, and the sequence is always terminated
// by one EOF token.
func Scan(src string) ([]Token, ErrorList) {
	s := &scanner{src: src, line: 1}
	for !s.atEnd() {
		s.start = s.pos
		s.scanToken()
	}
	s.emit(EOF, "")
	return s.toks, s.errs
}

// A scanner holds the state of one pass over a source buffer. It is
// single-use; Scan constructs one per call.
type scanner struct {
	src        string
	start, pos int // start of current lexeme, current offset
	line       int // 1-based, incremented at each newline

	toks []Token
	errs ErrorList
}

func (s *scanner) scanToken() {
	switch ch := s.advance(); ch {
	case ' ', '\r', '\t':
		// Discard whitespace.
	case '\n':
		s.line++
	case '{', '}', '[', ']', ',', ':':
		t, _ := selfDelim(ch)
		s.emit(t, "")
	case '"':
		s.scanString()
	case 't':
		s.scanKeyword(True, litTrue)
	case 'f':
		s.scanKeyword(False, litFalse)
	case 'n':
		s.scanKeyword(Null, litNull)
	default:
		if isNumStart(ch) {
			s.scanNumber(ch)
		} else {
			s.errorf("unexpected character %q", ch)
		}
	}
}

// scanString consumes a string literal whose opening quote has already been
// consumed. The content between the quotes is kept verbatim: no escape
// sequences are recognized, so a backslash is ordinary content and cannot
// protect a following quote. A newline inside the literal advances the line
// counter without terminating it. Reaching end of input emits no token.
func (s *scanner) scanString() {
	for !s.atEnd() {
		switch s.src[s.pos] {
		case '"':
			s.pos++
			s.emit(String, s.src[s.start+1:s.pos-1])
			return
		case '\n':
			s.line++
		}
		s.pos++
	}
	s.errorf("unterminated string")
}

// scanNumber consumes a number literal whose first character has already
// been consumed. Violations of the number grammar are recorded as lexical
// errors, but the lexeme is still consumed in full and a Number token is
// emitted for it.
func (s *scanner) scanNumber(first byte) {
	// Integer part. A leading minus requires at least one digit after it.
	if n := s.digits(); first == '-' && n == 0 {
		s.errorf("no integer digits")
	}
	if hasExtraLeadingZeroes(s.src[s.start:s.pos]) {
		s.errorf("extra leading zeroes")
	}

	// If a decimal point follows, consume a fractional part.
	if !s.atEnd() && s.src[s.pos] == '.' {
		s.pos++
		if s.digits() == 0 {
			s.errorf("no digits after decimal point")
		}
	}

	// If an exponent follows, consume it.
	if !s.atEnd() && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		s.pos++
		if !s.atEnd() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}
		if s.digits() == 0 {
			s.errorf("missing exponent digits")
		}
	}

	s.emit(Number, s.src[s.start:s.pos])
}

// Keyword tails, following the already-consumed first letter.
var (
	litTrue  = mem.S("rue")
	litFalse = mem.S("alse")
	litNull  = mem.S("ull")
)

// scanKeyword consumes the tail of a keyword literal whose first letter has
// already been consumed. On a mismatch the unmatched input is left in place
// and a token of the keyword kind is still emitted, so that scanning can
// continue past the mistake.
func (s *scanner) scanKeyword(kind Kind, tail mem.RO) {
	if !s.tryMatch(tail) {
		s.errorf("malformed %s constant", kind)
	}
	s.emit(kind, "")
}

// tryMatch consumes input bytes as long as they match want, reporting
// whether the whole of want was matched.
func (s *scanner) tryMatch(want mem.RO) bool {
	for i := 0; i < want.Len(); i++ {
		if s.atEnd() || s.src[s.pos] != want.At(i) {
			return false
		}
		s.pos++
	}
	return true
}

// digits consumes a run of decimal digits and reports how many were found.
func (s *scanner) digits() (n int) {
	for !s.atEnd() && isDigit(s.src[s.pos]) {
		s.pos++
		n++
	}
	return
}

func (s *scanner) advance() byte {
	ch := s.src[s.pos]
	s.pos++
	return ch
}

func (s *scanner) atEnd() bool { return s.pos >= len(s.src) }

// emit appends a token at the scanner's current line. The text is copied so
// that the token does not pin the source buffer.
func (s *scanner) emit(kind Kind, text string) {
	s.toks = append(s.toks, Token{Kind: kind, Text: strings.Clone(text), Line: s.line})
}

func (s *scanner) errorf(msg string, args ...any) {
	s.errs = append(s.errs, &Error{
		Kind:    LexicalError,
		Line:    s.line,
		Message: fmt.Sprintf(msg, args...),
	})
}

func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }

// hasExtraLeadingZeroes reports whether the integer part of the number in
// text has redundant leading zeroes, disallowed by the grammar.
//
// OK: 0, -0, 0.5. Bad: 00, 01, -01.
func hasExtraLeadingZeroes(text string) bool {
	text = strings.TrimPrefix(text, "-")
	return len(text) > 1 && text[0] == '0'
}
