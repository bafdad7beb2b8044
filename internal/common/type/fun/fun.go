// Released under an MIT license. See LICENSE.

// Package fun provides loon's function cell types: native functions
// and closures. Functions compare by identity only; two functions are
// never structurally equal.
package fun

import (
	"strings"

	"github.com/loon-lang/loon/internal/common"
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/interface/literal"
	"github.com/loon-lang/loon/internal/common/struct/hash"
)

// Do is the signature shared by all native function implementations.
// It receives the evaluated argument list and returns a result cell.
type Do func(args cell.I) cell.I

// Native is a host-provided function exposed under a name in the
// function table.
type Native struct {
	do    Do
	label string
}

// Closure is a user function: a parameter list, a body, and a snapshot
// of the variable bindings visible when the closure was created.
type Closure struct {
	body   cell.I
	params []string
	saved  *hash.T
}

// MakeNative creates a native function cell.
func MakeNative(label string, do Do) cell.I {
	return &Native{do: do, label: label}
}

// MakeClosure creates a closure cell.
func MakeClosure(params []string, body cell.I, saved *hash.T) cell.I {
	return &Closure{body: body, params: params, saved: saved}
}

// Is returns true if c is a native function or a closure.
func Is(c cell.I) bool {
	switch c.(type) {
	case *Native, *Closure:
		return true
	}

	return false
}

// Call invokes the native function f with the evaluated arguments args.
func (f *Native) Call(args cell.I) cell.I {
	return f.do(args)
}

// Equal returns true only if c is the native function f itself.
func (f *Native) Equal(c cell.I) bool {
	return cell.I(f) == c
}

// Label returns the name the native function f was registered under.
func (f *Native) Label() string {
	return f.label
}

// Literal returns the literal representation of the native function f.
func (f *Native) Literal() string {
	return "(native " + f.label + ")"
}

// Name returns the type name for the native function f.
func (f *Native) Name() string {
	return "native"
}

// String returns the text representation of the native function f.
func (f *Native) String() string {
	return f.Literal()
}

// Body returns the closure's body form.
func (f *Closure) Body() cell.I {
	return f.body
}

// Equal returns true only if c is the closure f itself.
func (f *Closure) Equal(c cell.I) bool {
	return cell.I(f) == c
}

// Literal returns the literal representation of the closure f.
func (f *Closure) Literal() string {
	return "(closure (" + strings.Join(f.params, " ") + "))"
}

// Name returns the type name for the closure f.
func (f *Closure) Name() string {
	return "closure"
}

// Params returns the closure's parameter names.
func (f *Closure) Params() []string {
	return f.params
}

// Saved returns the variable bindings captured when f was created.
func (f *Closure) Saved() *hash.T {
	return f.saved
}

// String returns the text representation of the closure f.
func (f *Closure) String() string {
	return f.Literal()
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var n Native

	var c Closure

	// Both function types are cells.
	_ = cell.I(&n)
	_ = cell.I(&c)

	// Both function types have literal representations.
	_ = literal.I(&n)
	_ = literal.I(&c)

	// Both function types are stringers.
	_ = common.Stringer(&n)
	_ = common.Stringer(&c)
}
