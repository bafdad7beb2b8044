// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the loon language.
package parser

import (
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/struct/loc"
	"github.com/loon-lang/loon/internal/common/struct/token"
	"github.com/loon-lang/loon/internal/common/type/list"
	"github.com/loon-lang/loon/internal/common/type/num"
	"github.com/loon-lang/loon/internal/common/type/str"
	"github.com/loon-lang/loon/internal/common/type/sym"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(cell.I)    // Function to call to emit a parsed form.
	item  func() *token.T // Function to call to get another token.
	last  loc.T           // Location of the most recent token.
	token *token.T        // Token lookahead.
}

// Error is a parse failure with the location where it occurred.
type Error struct {
	Reason string
	Source loc.T
}

func (e *Error) Error() string {
	return e.Source.String() + ": " + e.Reason
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits forms until there are no more tokens.
// Malformed input is reported as an *Error, never as a crash.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}

		err = e
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.emit(p.form())
	}

	return nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) fail(reason string) {
	panic(&Error{Reason: reason, Source: p.last})
}

func (p *T) form() cell.I {
	t := p.peek()
	if t == nil {
		p.fail("unexpected end of input")
	}

	switch {
	case t.Is('('):
		p.consume()

		return p.rest()
	case t.Is(token.Number):
		return num.New(p.consume().Value())
	case t.Is(token.String):
		v := p.consume().Value()

		// The lexer includes the enclosing quotes.
		return str.New(v[1 : len(v)-1])
	case t.Is(token.Symbol):
		return sym.New(p.consume().Value())
	case t.Is(token.Error):
		p.fail(t.Value())
	}

	p.fail("unexpected '" + t.Value() + "'")

	return nil
}

func (p *T) peek() *token.T {
	if p.ahead == 0 {
		p.token = p.item()
		p.ahead = 1
	}

	if p.token != nil {
		p.last = *p.token.Source()
	}

	return p.token
}

// rest parses the remainder of a parenthesized form, building a proper
// list. The opening '(' has already been consumed.
func (p *T) rest() cell.I {
	elements := []cell.I{}

	for {
		t := p.peek()
		if t == nil {
			p.fail("expected ')'")
		}

		if t.Is(')') {
			p.consume()

			break
		}

		elements = append(elements, p.form())
	}

	return list.New(elements...)
}
