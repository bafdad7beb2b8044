// Released under an MIT license. See LICENSE.

// Package truth defines the interface for loon types that have a truth value.
package truth

import (
	"github.com/loon-lang/loon/internal/common/interface/cell"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell.
// Types without an explicit truth value are true; only nil is false.
func Value(c cell.I) bool {
	if b, ok := c.(I); ok {
		return b.Bool()
	}

	return true
}
