// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed loon code.
package engine

import (
	"sort"

	"github.com/loon-lang/loon/internal/common/fault"
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/interface/truth"
	"github.com/loon-lang/loon/internal/common/type/fun"
	"github.com/loon-lang/loon/internal/common/type/list"
	"github.com/loon-lang/loon/internal/common/type/pair"
	"github.com/loon-lang/loon/internal/common/type/sym"
	"github.com/loon-lang/loon/internal/common/validate"
	"github.com/loon-lang/loon/internal/engine/commands"
	"github.com/loon-lang/loon/internal/engine/env"
)

// T (engine) evaluates loon forms against an environment.
//
// An engine is a single evaluation session. Independent sessions must
// each own their own engine; the function table built by New is never
// mutated afterward and so may be shared between them.
type T struct {
	env     *env.T
	special map[string]func(args cell.I) cell.I
}

type engine = T

// New creates a new engine with all native functions registered and
// nil and t pre-bound.
func New() *T {
	t := &engine{}

	funs := map[string]cell.I{}
	for name, do := range commands.Functions() {
		funs[name] = fun.MakeNative(name, do)
	}

	// apply and funcall dispatch an already-evaluated callable and so
	// need access to the evaluator itself.
	funs["apply"] = fun.MakeNative("apply", t.apply)
	funs["funcall"] = fun.MakeNative("funcall", t.apply)

	t.env = env.New(funs)

	// Special forms receive their arguments unevaluated. This table is
	// distinct from the function table and is checked first.
	t.special = map[string]func(args cell.I) cell.I{
		"if":     t.cond,
		"lambda": t.lambda,
		"quote":  t.quote,
	}

	return t
}

// Define binds the name k to the value v in the engine's environment.
func (t *engine) Define(k string, v cell.I) {
	t.env.Define(k, v)
}

// Evaluate evaluates the form c. Failures are reported as *fault.T
// errors; malformed input never terminates the process.
func (t *engine) Evaluate(c cell.I) (r cell.I, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}

		f, ok := p.(*fault.T)
		if !ok {
			panic(p)
		}

		r, err = nil, f
	}()

	return t.eval(c), nil
}

// Names returns the sorted names callable in a form's head position.
func (t *engine) Names() []string {
	names := t.env.Names()
	for k := range t.special {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// apply treats its first argument as a callable and the rest as the
// arguments to pass it. Both apply and funcall go through the general
// pre-evaluation path, so everything has already been evaluated; they
// exist to let already-bound values be dispatched dynamically.
func (t *engine) apply(args cell.I) cell.I {
	v := validate.AtLeast(args, 1)

	return t.invoke(v[0], list.New(v[1:]...))
}

// call evaluates the call form c.
func (t *engine) call(c cell.I) cell.I {
	head := pair.Car(c)
	args := pair.Cdr(c)

	switch {
	case sym.Is(head):
		name := sym.To(head).String()

		if special, ok := t.special[name]; ok {
			return special(args)
		}

		return t.invoke(t.env.Function(name), t.evalArgs(args))
	case fun.Is(head):
		return t.invoke(head, t.evalArgs(args))
	case pair.Is(head) && head != pair.Null:
		return t.invoke(t.eval(head), t.evalArgs(args))
	}

	name := head.Name()
	if head == pair.Null {
		name = "nil"
	}

	panic(fault.Uncallable(name))
}

// cond is the if special form. The branch not taken is never
// evaluated; anything other than nil counts as true.
func (t *engine) cond(args cell.I) cell.I {
	v := validate.Fixed(args, 3)

	if truth.Value(t.eval(v[0])) {
		return t.eval(v[1])
	}

	return t.eval(v[2])
}

func (t *engine) eval(c cell.I) cell.I {
	if c == pair.Null {
		return c
	}

	switch {
	case sym.Is(c):
		return t.env.Lookup(sym.To(c).String())
	case pair.Is(c):
		return t.call(c)
	}

	// Numbers, strings and functions are self-evaluating.
	return c
}

// evalArgs evaluates every element of args left-to-right and builds a
// fresh argument list. Shared structure in the values themselves is
// preserved.
func (t *engine) evalArgs(args cell.I) cell.I {
	elements := list.Elements(args)

	evaluated := make([]cell.I, len(elements))
	for i, c := range elements {
		evaluated[i] = t.eval(c)
	}

	return list.New(evaluated...)
}

// invoke calls the callable f with the evaluated argument list args.
func (t *engine) invoke(f, args cell.I) cell.I {
	switch f := f.(type) {
	case *fun.Native:
		return f.Call(args)
	case *fun.Closure:
		actual := list.Elements(args)
		params := f.Params()

		if len(actual) != len(params) {
			panic(fault.Arity(len(params), len(actual)))
		}

		// Parameters are bound over a copy of the captured snapshot so
		// that no call can leak bindings back into the closure.
		bindings := f.Saved().Copy()
		for i, name := range params {
			bindings.Set(name, actual[i])
		}

		return t.env.Scoped(bindings, func() cell.I {
			return t.eval(f.Body())
		})
	}

	name := f.Name()
	if f == pair.Null {
		name = "nil"
	}

	panic(fault.Uncallable(name))
}

// lambda constructs a closure capturing a snapshot of the current
// variable bindings. It does not invoke it.
func (t *engine) lambda(args cell.I) cell.I {
	v := validate.Fixed(args, 2)

	return fun.MakeClosure(params(v[0]), v[1], t.env.Snapshot())
}

// quote returns its single argument unevaluated.
func (t *engine) quote(args cell.I) cell.I {
	v := validate.Fixed(args, 1)

	return v[0]
}

// params checks that c is a proper list of symbols and returns the
// symbol names.
func params(c cell.I) []string {
	names := []string{}

	for c != pair.Null {
		if !pair.Is(c) {
			panic(fault.Type("parameter list", c.Name()))
		}

		head := pair.Car(c)
		if !sym.Is(head) {
			panic(fault.Type("symbol", head.Name()))
		}

		names = append(names, sym.To(head).String())
		c = pair.Cdr(c)
	}

	return names
}
