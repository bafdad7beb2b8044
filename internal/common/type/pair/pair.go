// Released under an MIT license. See LICENSE.

// Package pair provides loon's cons cell type.
package pair

import (
	"github.com/loon-lang/loon/internal/common"
	"github.com/loon-lang/loon/internal/common/fault"
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/interface/literal"
	"github.com/loon-lang/loon/internal/common/interface/truth"
)

const name = "cons"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list
	// and is loon's canonical false value.
	Null cell.I
)

// T (pair) is a cons cell. Pairs are immutable once constructed and
// shared by reference; a cdr returns the existing tail, never a copy.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Bool returns the boolean value of the pair p. Only Null is false.
func (p *pair) Bool() bool {
	return cell.I(p) != Null
}

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	if cell.I(p) == Null || c == Null {
		return cell.I(p) == c
	}

	q := To(c)

	return p.car.Equal(q.car) && p.cdr.Equal(q.cdr)
}

// Literal returns the literal representation of the pair p.
// Proper lists render as "(a b c)" and dotted tails as "(a b . c)".
func (p *pair) Literal() string {
	if cell.I(p) == Null {
		return "()"
	}

	s := "(" + literal.String(p.car)

	tail := p.cdr
	for tail != Null {
		q, ok := tail.(*pair)
		if !ok {
			s += " . " + literal.String(tail)

			break
		}

		s += " " + literal.String(q.car)
		tail = q.cdr
	}

	return s + ")"
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// A non-pair value, including Null, causes a TypeMismatch fault.
func Car(c cell.I) cell.I {
	return demand(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// A non-pair value, including Null, causes a TypeMismatch fault.
func Cdr(c cell.I) cell.I {
	return demand(c).cdr
}

// Is returns true if c is a *T. Note that Null is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic(fault.Type(name, c.Name()))
}

func demand(c cell.I) *pair {
	if c == Null {
		panic(fault.Type(name, "nil"))
	}

	return To(c)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)

	// The pair type has a truth value.
	_ = truth.I(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
