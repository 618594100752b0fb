// Copyright (C) 2026 M. Finley. All Rights Reserved.

package jtext_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mfinley/jtext"
)

func kinds(toks []jtext.Token) []jtext.Kind {
	out := make([]jtext.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScan(t *testing.T) {
	tests := []struct {
		input string
		want  []jtext.Kind
	}{
		// Empty inputs
		{"", []jtext.Kind{jtext.EOF}},
		{"  ", []jtext.Kind{jtext.EOF}},
		{"\n\n  \n", []jtext.Kind{jtext.EOF}},
		{"\t  \r\n \t  \r\n", []jtext.Kind{jtext.EOF}},

		// Constants
		{"true false null", []jtext.Kind{jtext.True, jtext.False, jtext.Null, jtext.EOF}},

		// Punctuation
		{"{ [ ] } , :", []jtext.Kind{
			jtext.LBrace, jtext.LSquare, jtext.RSquare, jtext.RBrace, jtext.Comma, jtext.Colon,
			jtext.EOF,
		}},

		// Strings
		{`"" "a b c"`, []jtext.Kind{jtext.String, jtext.String, jtext.EOF}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []jtext.Kind{
			jtext.Number, jtext.Number, jtext.Number,
			jtext.Number, jtext.Number, jtext.Number, jtext.Number,
			jtext.EOF,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jtext.Kind{
			jtext.LBrace, jtext.True, jtext.Comma, jtext.String, jtext.Colon,
			jtext.Number, jtext.Null, jtext.LSquare, jtext.RSquare, jtext.RBrace,
			jtext.EOF,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jtext.Kind{
			jtext.LBrace,
			jtext.String, jtext.Colon, jtext.True, jtext.Comma,
			jtext.String, jtext.Colon,
			jtext.LSquare,
			jtext.Null, jtext.Comma, jtext.Number, jtext.Comma, jtext.Number,
			jtext.RSquare,
			jtext.RBrace,
			jtext.EOF,
		}},
		{`"a",1,true
       false["b"]
       `, []jtext.Kind{
			jtext.String, jtext.Comma, jtext.Number, jtext.Comma, jtext.True,
			jtext.False, jtext.LSquare, jtext.String, jtext.RSquare,
			jtext.EOF,
		}},
	}

	for _, test := range tests {
		got, errs := jtext.Scan(test.input)
		if len(errs) != 0 {
			t.Errorf("Scan %#q: unexpected errors: %v", test.input, errs)
		}
		if diff := cmp.Diff(test.want, kinds(got)); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanText(t *testing.T) {
	tests := []struct {
		input string
		want  []jtext.Token
	}{
		// String content is copied verbatim between the quotes.
		{`"abacaba"`, []jtext.Token{
			{Kind: jtext.String, Text: "abacaba", Line: 1},
			{Kind: jtext.EOF, Line: 1},
		}},
		{`""`, []jtext.Token{
			{Kind: jtext.String, Line: 1},
			{Kind: jtext.EOF, Line: 1},
		}},

		// Numbers keep their raw source text.
		{`-1.5E-3`, []jtext.Token{
			{Kind: jtext.Number, Text: "-1.5E-3", Line: 1},
			{Kind: jtext.EOF, Line: 1},
		}},

		// A newline inside a string advances the line counter without
		// terminating the literal.
		{"\"a\nb\" 1", []jtext.Token{
			{Kind: jtext.String, Text: "a\nb", Line: 2},
			{Kind: jtext.Number, Text: "1", Line: 2},
			{Kind: jtext.EOF, Line: 2},
		}},

		// Tokens record the line they were produced on.
		{"{\n\"a\": 1\n}", []jtext.Token{
			{Kind: jtext.LBrace, Line: 1},
			{Kind: jtext.String, Text: "a", Line: 2},
			{Kind: jtext.Colon, Line: 2},
			{Kind: jtext.Number, Text: "1", Line: 2},
			{Kind: jtext.RBrace, Line: 3},
			{Kind: jtext.EOF, Line: 3},
		}},
	}

	for _, test := range tests {
		got, errs := jtext.Scan(test.input)
		if len(errs) != 0 {
			t.Errorf("Scan %#q: unexpected errors: %v", test.input, errs)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		input     string
		wantKinds []jtext.Kind
		wantErrs  jtext.ErrorList
	}{
		// Number grammar violations still emit a Number token.
		{"01", []jtext.Kind{jtext.Number, jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: "extra leading zeroes"},
		}},
		{"00", []jtext.Kind{jtext.Number, jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: "extra leading zeroes"},
		}},
		{"-01", []jtext.Kind{jtext.Number, jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: "extra leading zeroes"},
		}},
		{"1.", []jtext.Kind{jtext.Number, jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: "no digits after decimal point"},
		}},
		{"1e", []jtext.Kind{jtext.Number, jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: "missing exponent digits"},
		}},
		{"1e+", []jtext.Kind{jtext.Number, jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: "missing exponent digits"},
		}},
		{"-", []jtext.Kind{jtext.Number, jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: "no integer digits"},
		}},

		// Keyword misspellings still emit the keyword token; unmatched
		// input is rescanned.
		{"tru5", []jtext.Kind{jtext.True, jtext.Number, jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: "malformed true constant"},
		}},
		{"falze", []jtext.Kind{jtext.False, jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: "malformed false constant"},
			{Kind: jtext.LexicalError, Line: 1, Message: "unexpected character 'z'"},
			{Kind: jtext.LexicalError, Line: 1, Message: "unexpected character 'e'"},
		}},
		{"nul", []jtext.Kind{jtext.Null, jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: "malformed null constant"},
		}},

		// Stray characters.
		{"@", []jtext.Kind{jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: `unexpected character '@'`},
		}},

		// Unterminated strings emit no token.
		{`"abc`, []jtext.Kind{jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: "unterminated string"},
		}},
		{"\"abc\ndef", []jtext.Kind{jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 2, Message: "unterminated string"},
		}},

		// A backslash does not escape the closing quote: the string ends at
		// the quote, the rest is rescanned, and the pass continues to the
		// end of the buffer collecting every error on the way.
		{`"a\"b"`, []jtext.Kind{jtext.String, jtext.EOF}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 1, Message: "unexpected character 'b'"},
			{Kind: jtext.LexicalError, Line: 1, Message: "unterminated string"},
		}},

		// Errors report the scanner's current line.
		{"{\n01,\n@\n}", []jtext.Kind{
			jtext.LBrace, jtext.Number, jtext.Comma, jtext.RBrace, jtext.EOF,
		}, jtext.ErrorList{
			{Kind: jtext.LexicalError, Line: 2, Message: "extra leading zeroes"},
			{Kind: jtext.LexicalError, Line: 3, Message: `unexpected character '@'`},
		}},
	}

	for _, test := range tests {
		got, errs := jtext.Scan(test.input)
		if diff := cmp.Diff(test.wantKinds, kinds(got)); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
		if diff := cmp.Diff(test.wantErrs, errs); diff != "" {
			t.Errorf("Input: %#q\nErrors: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanValidNumbers(t *testing.T) {
	for _, input := range []string{"0", "0.5", "-0", "1e10", "-1.5E-3", "42", "9e-2", "0.0001"} {
		toks, errs := jtext.Scan(input)
		if len(errs) != 0 {
			t.Errorf("Scan %#q: unexpected errors: %v", input, errs)
		}
		want := []jtext.Kind{jtext.Number, jtext.EOF}
		if diff := cmp.Diff(want, kinds(toks)); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", input, diff)
		}
		if toks[0].Text != input {
			t.Errorf("Scan %#q: token text %#q, want the raw lexeme", input, toks[0].Text)
		}
	}
}

func TestErrorStrings(t *testing.T) {
	e1 := &jtext.Error{Kind: jtext.LexicalError, Line: 3, Message: "unterminated string"}
	if got, want := e1.Error(), "line 3: lexical error: unterminated string"; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
	e2 := &jtext.Error{Kind: jtext.SemanticError, Line: 1, Message: `duplicate object key "a"`}

	tests := []struct {
		el   jtext.ErrorList
		want string
	}{
		{nil, "no errors"},
		{jtext.ErrorList{e1}, "line 3: lexical error: unterminated string"},
		{jtext.ErrorList{e2, e1}, `line 1: semantic error: duplicate object key "a" (and 1 more errors)`},
	}
	for _, test := range tests {
		if got := test.el.Error(); got != test.want {
			t.Errorf("ErrorList: got %q, want %q", got, test.want)
		}
	}
}
