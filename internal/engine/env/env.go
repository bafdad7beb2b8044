// Released under an MIT license. See LICENSE.

// Package env provides loon's environment type: the mutable variable
// bindings of an evaluation session plus the native function table.
package env

import (
	"sort"

	"github.com/loon-lang/loon/internal/common/fault"
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/struct/hash"
	"github.com/loon-lang/loon/internal/common/type/pair"
	"github.com/loon-lang/loon/internal/common/type/sym"
)

// T (env) holds variable bindings and the function table.
//
// The variable bindings are mutable and swapped wholesale for closure
// invocation; the function table is fixed at construction and shared
// read-only for the life of the environment.
type T struct {
	funs map[string]cell.I
	vars *hash.T
}

type env = T

// New creates an environment with the function table funs and the
// standard bindings nil and t.
func New(funs map[string]cell.I) *T {
	e := &env{funs: funs, vars: hash.New()}

	e.vars.Set("nil", pair.Null)
	e.vars.Set("t", sym.True)

	return e
}

// Define inserts or overwrites the binding for the name k.
func (e *env) Define(k string, v cell.I) {
	e.vars.Set(k, v)
}

// Function retrieves the function registered under the name k,
// faulting with UnboundFunction if there is none.
func (e *env) Function(k string) cell.I {
	f, ok := e.funs[k]
	if !ok {
		panic(fault.NoFunction(k))
	}

	return f
}

// Lookup retrieves the value bound to the name k, faulting with
// UnboundVariable if there is none.
func (e *env) Lookup(k string) cell.I {
	r := e.vars.Get(k)
	if r == nil {
		panic(fault.Unbound(k))
	}

	return r.Get()
}

// Names returns the sorted names in the function table.
func (e *env) Names() []string {
	names := make([]string, 0, len(e.funs))
	for k := range e.funs {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Scoped runs body with the variable bindings replaced by bindings.
// The caller's bindings are restored on every exit path, including
// faults raised while evaluating body.
func (e *env) Scoped(bindings *hash.T, body func() cell.I) cell.I {
	saved := e.vars
	e.vars = bindings

	defer func() {
		e.vars = saved
	}()

	return body()
}

// Snapshot returns a copy of the current variable bindings.
// Later changes to the environment are not visible in the copy.
func (e *env) Snapshot() *hash.T {
	return e.vars.Copy()
}
