// Copyright (C) 2026 M. Finley. All Rights Reserved.

package ast

import (
	"fmt"
	"strconv"

	"github.com/mfinley/jtext"
)

// A Parser holds configuration for parsing. The zero value is ready to use
// and matches the defaults of Parse. A Parser holds no state across calls
// and may be shared freely.
type Parser struct {
	// MaxDepth bounds how deeply values may nest. The top-level value is at
	// depth 1, the elements of a top-level array or object at depth 2, and
	// so on; a value nested deeper than MaxDepth is a syntax error. Zero
	// means no explicit bound beyond the host call stack.
	MaxDepth int
}

// Parse scans and parses src as a single JSON document. It fails if the
// scanner reported any lexical error (all of them are returned as a
// jtext.ErrorList, and parsing is not attempted), or with the first syntax
// or semantic error the parser detects. It is equivalent to the Parse
// method on a zero Parser.
func Parse(src string) (Value, error) { return (&Parser{}).Parse(src) }

// Valid reports whether src is a well-formed JSON document.
func Valid(src string) bool {
	_, err := Parse(src)
	return err == nil
}

// Parse scans and parses src as a single JSON document.
func (p *Parser) Parse(src string) (Value, error) {
	toks, errs := jtext.Scan(src)
	if len(errs) != 0 {
		return nil, errs
	}
	return p.ParseTokens(toks)
}

// ParseTokens parses a scanned token sequence as a single JSON document.
// The sequence must represent exactly one value: anything between the end
// of that value and the end of input is a syntax error.
func (p *Parser) ParseTokens(toks []jtext.Token) (Value, error) {
	ps := &parseState{toks: toks, maxDepth: p.MaxDepth}
	v, ok := ps.parseValue(1)
	if ok {
		if tok := ps.peek(); tok.Kind != jtext.EOF {
			ps.syntaxError(tok.Line, "trailing content: unexpected %v", tok.Kind)
		}
	}
	if len(ps.errs) != 0 {
		return nil, ps.errs[0]
	}
	return v, nil
}

// A parseState is the single-use state of one ParseTokens call. Failed
// productions return ok == false after recording at least one error; the
// first recorded error is the one the caller sees.
type parseState struct {
	toks     []jtext.Token
	pos      int
	maxDepth int
	errs     []*jtext.Error
}

func (ps *parseState) parseValue(depth int) (Value, bool) {
	if ps.maxDepth > 0 && depth > ps.maxDepth {
		ps.syntaxError(ps.peek().Line, "values nested deeper than %d", ps.maxDepth)
		return nil, false
	}
	tok := ps.peek()
	switch tok.Kind {
	case jtext.String:
		ps.advance()
		return String(tok.Text), true
	case jtext.Number:
		ps.advance()
		n, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			// Reachable only through a caller-built token sequence; tokens
			// from Scan with malformed numbers never get this far.
			ps.syntaxError(tok.Line, "invalid number literal %q", tok.Text)
			return nil, false
		}
		return Number(n), true
	case jtext.True:
		ps.advance()
		return Bool(true), true
	case jtext.False:
		ps.advance()
		return Bool(false), true
	case jtext.Null:
		ps.advance()
		return Null, true
	case jtext.LBrace:
		return ps.parseObject(depth)
	case jtext.LSquare:
		return ps.parseArray(depth)
	case jtext.EOF:
		ps.syntaxError(tok.Line, "unexpected end of input")
		return nil, false
	default:
		ps.syntaxError(tok.Line, "unexpected %v", tok.Kind)
		return nil, false
	}
}

// parseObject consumes an object.
// Precondition: the current token is "{".
func (ps *parseState) parseObject(depth int) (Value, bool) {
	ps.advance()
	obj := make(Object)
	for {
		if ps.tryMatch(jtext.RBrace) {
			return obj, true
		}
		if len(obj) > 0 {
			if tok := ps.peek(); !ps.tryMatch(jtext.Comma) {
				ps.syntaxError(tok.Line, "expected %v between members, got %v", jtext.Comma, tok.Kind)
				return nil, false
			}
		}
		if !ps.parseMember(obj, depth) {
			return nil, false
		}
	}
}

// parseMember consumes a single "key": value member and inserts it into
// obj. A missing colon is reported but does not stop the member from being
// parsed; the recorded error still fails the overall call.
func (ps *parseState) parseMember(obj Object, depth int) bool {
	key := ps.peek()
	if key.Kind != jtext.String {
		ps.syntaxError(key.Line, "expected object key, got %v", key.Kind)
		return false
	}
	ps.advance()
	if tok := ps.peek(); !ps.tryMatch(jtext.Colon) {
		// Keep going: parsing the value anyway localizes the message
		// better than aborting on the separator.
		ps.syntaxError(tok.Line, "expected %v after object key, got %v", jtext.Colon, tok.Kind)
	}
	v, ok := ps.parseValue(depth + 1)
	if !ok {
		return false
	}
	if _, dup := obj[key.Text]; dup {
		ps.semanticError(key.Line, "duplicate object key %q", key.Text)
		return false
	}
	obj[key.Text] = v
	return true
}

// parseArray consumes an array.
// Precondition: the current token is "[".
func (ps *parseState) parseArray(depth int) (Value, bool) {
	ps.advance()
	arr := Array{}
	for {
		if ps.tryMatch(jtext.RSquare) {
			return arr, true
		}
		if len(arr) > 0 {
			if tok := ps.peek(); !ps.tryMatch(jtext.Comma) {
				ps.syntaxError(tok.Line, "expected %v between elements, got %v", jtext.Comma, tok.Kind)
				return nil, false
			}
		}
		v, ok := ps.parseValue(depth + 1)
		if !ok {
			return nil, false
		}
		arr = append(arr, v)
	}
}

// peek returns the current token without consuming it. Token sequences from
// Scan always end in EOF; a synthetic EOF token covers caller-built
// sequences that do not.
func (ps *parseState) peek() jtext.Token {
	if ps.pos < len(ps.toks) {
		return ps.toks[ps.pos]
	}
	line := 1
	if n := len(ps.toks); n > 0 {
		line = ps.toks[n-1].Line
	}
	return jtext.Token{Kind: jtext.EOF, Line: line}
}

func (ps *parseState) advance() {
	if ps.pos < len(ps.toks) {
		ps.pos++
	}
}

// tryMatch consumes the current token if it has the wanted kind.
func (ps *parseState) tryMatch(kind jtext.Kind) bool {
	if ps.peek().Kind == kind {
		ps.advance()
		return true
	}
	return false
}

func (ps *parseState) syntaxError(line int, msg string, args ...any) {
	ps.errs = append(ps.errs, &jtext.Error{
		Kind:    jtext.SyntaxError,
		Line:    line,
		Message: fmt.Sprintf(msg, args...),
	})
}

func (ps *parseState) semanticError(line int, msg string, args ...any) {
	ps.errs = append(ps.errs, &jtext.Error{
		Kind:    jtext.SemanticError,
		Line:    line,
		Message: fmt.Sprintf(msg, args...),
	})
}
