// Copyright (C) 2026 M. Finley. All Rights Reserved.

// Package ast defines a value tree for JSON documents, a recursive-descent
// parser that constructs trees from source text, and a serializer that
// renders a tree back to text.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// A Value is a single JSON value: Null, a Bool, a Number, a String, an
// Array, or an Object. Values form trees in which each child is exclusively
// owned by its parent; a tree is immutable by convention once constructed.
type Value interface {
	// JSON renders the value as JSON text.
	JSON() string
}

// Null is the JSON null constant.
var Null nullValue

type nullValue struct{}

// JSON satisfies the Value interface.
func (nullValue) JSON() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// A Number is a numeric value. All JSON numbers, integral or not, are
// represented as 64-bit floats.
type Number float64

// JSON satisfies the Value interface. The rendering is the default Go
// formatting of the underlying float; it is not guaranteed to be the
// shortest representation that round-trips.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// A String is a string value. The content is raw text: it is rendered
// wrapped in quotes with no escaping applied, mirroring the scanner, which
// does not interpret escape sequences. A String containing a quote or
// backslash therefore does not survive a serialize/parse round trip.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return `"` + string(s) + `"` }

// An Array is an ordered sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// An Object maps member keys to values. Keys are unique; the parser rejects
// a duplicate rather than overwriting. Enumeration order is Go map iteration
// order, which does not preserve input order and is not stable across runs.
type Object map[string]Value

// JSON satisfies the Value interface. Members render as "key": value in
// enumeration order.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for key, v := range o {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteByte('"')
		sb.WriteString(key)
		sb.WriteString(`": `)
		sb.WriteString(v.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// ToValue converts a plain Go value into the corresponding Value. It
// understands nil, bool, string, int, int64, float64, []any, and
// map[string]any, and passes through anything that is already a Value.
// ToValue panics if v is of any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		out := make(Object, len(t))
		for key, elt := range t {
			out[key] = ToValue(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
