// Released under an MIT license. See LICENSE.

// Package validate provides argument validation helpers for builtins
// and special forms. Validation failures are signalled as faults.
package validate

import (
	"github.com/loon-lang/loon/internal/common/fault"
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/type/list"
	"github.com/loon-lang/loon/internal/common/type/num"
)

// Fixed returns the elements of args, faulting with WrongArity unless
// there are exactly n of them.
func Fixed(args cell.I, n int) []cell.I {
	elements := list.Elements(args)
	if len(elements) != n {
		panic(fault.Arity(n, len(elements)))
	}

	return elements
}

// AtLeast returns the elements of args, faulting with WrongArity unless
// there are at least min of them.
func AtLeast(args cell.I, min int) []cell.I {
	elements := list.Elements(args)
	if len(elements) < min {
		panic(fault.AtLeast(min, len(elements)))
	}

	return elements
}

// Number returns the float64 value of c, faulting with TypeMismatch if
// c is not a number.
func Number(c cell.I) float64 {
	return num.To(c).Float()
}
