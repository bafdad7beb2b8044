// Released under an MIT license. See LICENSE.

// Package num provides loon's number type, a 64-bit float.
package num

import (
	"errors"
	"strconv"

	"github.com/loon-lang/loon/internal/common"
	"github.com/loon-lang/loon/internal/common/fault"
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/interface/literal"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num cell from a string.
// The string must be a valid number; the lexer guarantees this.
// Literals beyond float64's range keep ParseFloat's IEEE value,
// an infinity or zero.
func New(s string) cell.I {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("'" + s + "' is not a valid number")
	}

	return Float(v)
}

// Float wraps the float64 v as a num.
func Float(v float64) cell.I {
	n := num(v)

	return &n
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return Float(float64(i))
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Float() == To(c).Float()
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return strconv.FormatFloat(float64(*n), 'g', -1, 64)
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it faults.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic(fault.Type(name, c.Name()))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
