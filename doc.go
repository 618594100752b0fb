// Copyright (C) 2026 M. Finley. All Rights Reserved.

// Package jtext implements the lexical layer of a small JSON text engine.
//
// # Scanning
//
// Scan converts a source buffer into a token sequence in a single pass:
//
//	toks, errs := jtext.Scan(input)
//	if len(errs) != 0 {
//	   log.Fatalf("Scanning failed: %v", errs)
//	}
//
// The scanner always completes its pass over the buffer, accumulating every
// lexical error it finds rather than stopping at the first one, and
// terminates the sequence with one EOF token. Each token records the 1-based
// source line on which it was produced.
//
// The grammar recognized here deviates from RFC 8259 JSON in one documented
// way: backslash escape sequences inside strings are not interpreted. String
// content is copied verbatim between the quotes, so a backslash immediately
// before a quote ends the literal rather than escaping it.
//
// # Errors
//
// All problems are reported as *Error values carrying a kind (lexical,
// syntax, or semantic) and the source line where they were detected.
// Lexical errors are collected exhaustively into an ErrorList; parsing (see
// the ast subpackage) stops at the first syntax or semantic error.
//
// # Parsing
//
// The ast subpackage consumes the token sequence and builds a value tree;
// see its documentation for the parser and serializer.
package jtext
