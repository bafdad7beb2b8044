// Released under an MIT license. See LICENSE.

// Package token is shared by the loon lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/loon-lang/loon/internal/common/struct/loc"
)

// Class is a token's type.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source *loc.T
	value  string
}

type token = T

// Token classes. Single-rune tokens, '(' and ')', are their own class.
const (
	Error Class = unicode.MaxRune + iota

	Number
	String
	Symbol
)

// New creates a new token.
func New(class Class, value string, source *loc.T) *T {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// Is returns true if the token's class matches one of the classes cs.
func (t *token) Is(cs ...Class) bool {
	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Source returns the location where the token appeared.
func (t *token) Source() *loc.T {
	return t.source
}

// String returns a description of the token. Used when debugging.
func (t *token) String() string {
	label := ""

	switch t.class {
	case Error:
		label = "Error"
	case Number:
		label = "Number"
	case String:
		label = "String"
	case Symbol:
		label = "Symbol"
	default:
		label = strconv.QuoteRune(rune(t.class))
	}

	return label + "(" + strconv.Quote(t.value) + ")"
}

// Value returns the token's text.
func (t *token) Value() string {
	return t.value
}
