// Copyright (C) 2026 M. Finley. All Rights Reserved.

package jtext

import "strings"

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Number              // number literal
	String              // quoted string
	True                // constant: true
	False               // constant: false
	Null                // constant: null
	EOF                 // end of input
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
	EOF:     "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical unit of the input. Text holds the raw source
// text of a Number token, or the undecoded content between the quotes of a
// String token; it is empty for all other kinds. Line is the 1-based source
// line on which the token was emitted.
//
// A Token owns its text independently of the source buffer.
type Token struct {
	Kind Kind
	Text string
	Line int
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Kind, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
