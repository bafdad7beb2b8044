// Released under an MIT license. See LICENSE.

// Package fault provides loon's typed evaluation failures.
//
// Core code signals a failure by panicking with a *T. The public entry
// points in the engine and reader recover these panics and return them
// as errors. No fault may terminate the process.
package fault

import (
	"strconv"
)

// Kind identifies the category of an evaluation failure.
type Kind int

// Evaluation failure kinds.
const (
	UnboundVariable Kind = iota
	UnboundFunction
	WrongArity
	TypeMismatch
	NotCallable
)

// T (fault) is a typed evaluation failure.
type T struct {
	kind Kind

	atLeast  bool   // WrongArity: expected is a minimum, not an exact count.
	expected int    // WrongArity: the expected argument count.
	got      int    // WrongArity: the actual argument count.
	have     string // TypeMismatch, NotCallable: the kind passed.
	name     string // UnboundVariable, UnboundFunction: the offending name.
	want     string // TypeMismatch: the kind expected.
}

type fault = T

// Arity creates a WrongArity fault for an exact argument count.
func Arity(expected, got int) *fault {
	return &fault{kind: WrongArity, expected: expected, got: got}
}

// AtLeast creates a WrongArity fault for a minimum argument count.
func AtLeast(expected, got int) *fault {
	return &fault{kind: WrongArity, atLeast: true, expected: expected, got: got}
}

// NoFunction creates an UnboundFunction fault for the name k.
func NoFunction(k string) *fault {
	return &fault{kind: UnboundFunction, name: k}
}

// Type creates a TypeMismatch fault.
func Type(want, have string) *fault {
	return &fault{kind: TypeMismatch, want: want, have: have}
}

// Unbound creates an UnboundVariable fault for the name k.
func Unbound(k string) *fault {
	return &fault{kind: UnboundVariable, name: k}
}

// Uncallable creates a NotCallable fault for a value of kind have.
func Uncallable(have string) *fault {
	return &fault{kind: NotCallable, have: have}
}

// Error returns the failure's message.
func (f *fault) Error() string {
	switch f.kind {
	case UnboundVariable:
		return "unbound variable '" + f.name + "'"
	case UnboundFunction:
		return "unbound function '" + f.name + "'"
	case WrongArity:
		s := count(f.expected, "argument", "s")
		if f.atLeast {
			s = "at least " + s
		}

		return "expected " + s + ", passed " + strconv.Itoa(f.got)
	case TypeMismatch:
		return "expected " + f.want + ", passed " + f.have
	case NotCallable:
		return f.have + " is not callable"
	}

	return "unknown failure"
}

// Expected returns the expected argument count for a WrongArity fault.
func (f *fault) Expected() int {
	return f.expected
}

// Got returns the actual argument count for a WrongArity fault.
func (f *fault) Got() int {
	return f.got
}

// Kind returns the failure's category.
func (f *fault) Kind() Kind {
	return f.kind
}

func count(n int, label, p string) string {
	if n == 1 {
		p = ""
	}

	return strconv.Itoa(n) + " " + label + p
}
