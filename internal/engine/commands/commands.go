// Released under an MIT license. See LICENSE.

// Package commands provides loon's pure native functions. Each
// receives its already-evaluated argument list and is responsible for
// its own arity and type checks.
package commands

import (
	"github.com/loon-lang/loon/internal/common/interface/cell"
)

// Functions returns the native functions that do not need access to
// the evaluator.
func Functions() map[string]func(cell.I) cell.I {
	return map[string]func(cell.I) cell.I{
		"add":  add,
		"car":  car,
		"cdr":  cdr,
		"cons": cons,
		"div":  div,
		"eq":   eq,
		"list": listOf,
		"mul":  mul,
		"sub":  sub,
	}
}
