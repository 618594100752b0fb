// Copyright (C) 2026 M. Finley. All Rights Reserved.

package jtext

import "fmt"

// ErrorKind classifies an Error.
type ErrorKind int

// Constants defining the valid ErrorKind values.
const (
	LexicalError  ErrorKind = 1 + iota // malformed lexeme or stray character
	SyntaxError                        // unexpected or missing token
	SemanticError                      // duplicate object key
)

var errorKindStr = [...]string{
	LexicalError:  "lexical error",
	SyntaxError:   "syntax error",
	SemanticError: "semantic error",
}

func (k ErrorKind) String() string {
	if k < LexicalError || k > SemanticError {
		return "error"
	}
	return errorKindStr[k]
}

// An Error describes a single problem found in the input, located by the
// 1-based source line on which it was detected: the scanner's current line
// for lexical errors, the offending token's line for syntax and semantic
// errors.
type Error struct {
	Kind    ErrorKind
	Line    int
	Message string
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Message)
}

// An ErrorList is a collection of errors accumulated over one scan of the
// input, in source order.
type ErrorList []*Error

// Error satisfies the error interface. It reports the first error in the
// list, with a count of any that follow.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", el[0], len(el)-1)
}
