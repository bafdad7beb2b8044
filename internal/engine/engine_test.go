package engine

import (
	"math"
	"testing"

	"github.com/loon-lang/loon/internal/common/fault"
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/type/list"
	"github.com/loon-lang/loon/internal/common/type/num"
	"github.com/loon-lang/loon/internal/common/type/pair"
	"github.com/loon-lang/loon/internal/common/type/str"
	"github.com/loon-lang/loon/internal/common/type/sym"
	"github.com/loon-lang/loon/internal/reader"
)

func run(t *testing.T, e *T, text string) cell.I {
	t.Helper()

	c, err := reader.One("test", text)
	if err != nil {
		t.Fatalf("parsing %q: %s", text, err)
	}

	r, err := e.Evaluate(c)
	if err != nil {
		t.Fatalf("evaluating %q: %s", text, err)
	}

	return r
}

func fails(t *testing.T, e *T, text string, kind fault.Kind) {
	t.Helper()

	c, err := reader.One("test", text)
	if err != nil {
		t.Fatalf("parsing %q: %s", text, err)
	}

	_, err = e.Evaluate(c)
	if err == nil {
		t.Fatalf("evaluating %q: expected failure", text)
	}

	f, ok := err.(*fault.T)
	if !ok {
		t.Fatalf("evaluating %q: expected *fault.T, got %T", text, err)
	}

	if f.Kind() != kind {
		t.Fatalf("evaluating %q: expected kind %d, got %d (%s)", text, kind, f.Kind(), f)
	}
}

func expect(t *testing.T, e *T, text string, expected cell.I) {
	t.Helper()

	if r := run(t, e, text); !r.Equal(expected) {
		t.Fatalf("evaluating %q: unexpected result", text)
	}
}

func TestSelfEvaluation(t *testing.T) {
	e := New()

	expect(t, e, "12", num.Int(12))
	expect(t, e, "-3.5", num.Float(-3.5))
	expect(t, e, `"hi"`, str.New("hi"))
	expect(t, e, "()", pair.Null)
	expect(t, e, "nil", pair.Null)
	expect(t, e, "t", sym.True)
}

func TestVariables(t *testing.T) {
	e := New()

	e.Define("a", num.Int(1))
	e.Define("b", num.Int(2))

	expect(t, e, "a", num.Int(1))
	expect(t, e, "b", num.Int(2))

	fails(t, e, "nosuch", fault.UnboundVariable)
}

func TestArithmetic(t *testing.T) {
	e := New()

	expect(t, e, "(add 3 4 5)", num.Int(12))
	expect(t, e, "(sub 1 2)", num.Int(-1))
	expect(t, e, "(sub 3 4 5)", num.Int(-6))
	expect(t, e, "(mul 3 4 5)", num.Int(60))
	expect(t, e, "(div 60 3 4)", num.Int(5))
	expect(t, e, "(mul (add 3 4) (sub 9 1))", num.Int(56))
	expect(t, e, "(add 9 (add 10 11))", num.Int(30))

	fails(t, e, "(add 1)", fault.WrongArity)
	fails(t, e, `(add 1 "x")`, fault.TypeMismatch)
}

func TestDivisionByZero(t *testing.T) {
	e := New()

	// IEEE semantics: dividing by zero yields an infinity.
	r := run(t, e, "(div 1 0)")
	if !math.IsInf(num.To(r).Float(), 1) {
		t.Fatalf("expected +Inf, got %s", num.To(r))
	}

	r = run(t, e, "(div -1 0)")
	if !math.IsInf(num.To(r).Float(), -1) {
		t.Fatalf("expected -Inf, got %s", num.To(r))
	}
}

func TestListOperations(t *testing.T) {
	e := New()

	expect(t, e, "(list 1 2 3)", list.New(num.Int(1), num.Int(2), num.Int(3)))
	expect(t, e, "(list)", pair.Null)
	expect(t, e, "(car (cdr (list 1 2 3)))", num.Int(2))
	expect(t, e, "(cons 1 2)", pair.Cons(num.Int(1), num.Int(2)))
	expect(t, e, "(cons 1 (list 2))", list.New(num.Int(1), num.Int(2)))

	fails(t, e, "(car nil)", fault.TypeMismatch)
	fails(t, e, "(cdr nil)", fault.TypeMismatch)
	fails(t, e, "(car 1)", fault.TypeMismatch)
	fails(t, e, "(car)", fault.WrongArity)
}

func TestQuote(t *testing.T) {
	e := New()

	expect(t, e, "(quote a)", sym.New("a"))
	expect(t, e, "(quote (1 2))", list.New(num.Int(1), num.Int(2)))
	expect(t, e, "(quote (lambda (a b) (add a b)))",
		list.New(sym.New("lambda"),
			list.New(sym.New("a"), sym.New("b")),
			list.New(sym.New("add"), sym.New("a"), sym.New("b"))))

	fails(t, e, "(quote)", fault.WrongArity)
	fails(t, e, "(quote 1 2)", fault.WrongArity)
}

func TestEq(t *testing.T) {
	e := New()

	expect(t, e, "(eq 1 1)", sym.True)
	expect(t, e, "(eq 1 2)", pair.Null)
	expect(t, e, "(eq 2 1)", pair.Null)
	expect(t, e, `(eq "a" "a")`, sym.True)
	expect(t, e, "(eq nil (quote ()))", sym.True)
	expect(t, e, "(eq (list 1 2) (quote (1 2)))", sym.True)

	e.Define("a", num.Int(24))
	e.Define("b", num.Int(42))

	// eq is symmetric.
	expect(t, e, "(eq a b)", pair.Null)
	expect(t, e, "(eq b a)", pair.Null)
	expect(t, e, "(eq a a)", sym.True)
	expect(t, e, "(eq (list a b) (quote (24 42)))", sym.True)
}

func TestIf(t *testing.T) {
	e := New()

	expect(t, e, `(if (eq t nil) "TRUE" "FALSE")`, str.New("FALSE"))
	expect(t, e, `(if (eq t t) "TRUE" "FALSE")`, str.New("TRUE"))

	// Anything other than nil is true, including zero.
	expect(t, e, "(if 0 1 2)", num.Int(1))
	expect(t, e, "(if (quote ()) 1 2)", num.Int(2))

	fails(t, e, "(if t 1)", fault.WrongArity)
}

func TestIfShortCircuit(t *testing.T) {
	e := New()

	// The branch not taken would fail if it were evaluated.
	expect(t, e, "(if nil (car nil) 2)", num.Int(2))
	expect(t, e, "(if t 1 (car nil))", num.Int(1))
}

func TestLambda(t *testing.T) {
	e := New()

	expect(t, e, "((lambda (a b) (add a b)) 1 2)", num.Int(3))
	expect(t, e, "((lambda () 42))", num.Int(42))

	fails(t, e, "((lambda (a) a) 1 2)", fault.WrongArity)
	fails(t, e, "((lambda (a) a))", fault.WrongArity)
	fails(t, e, "(lambda (a))", fault.WrongArity)
	fails(t, e, "(lambda (1) 2)", fault.TypeMismatch)
	fails(t, e, "(lambda 1 2)", fault.TypeMismatch)
}

func TestLambdaCapture(t *testing.T) {
	e := New()

	e.Define("a", num.Int(1))

	f := run(t, e, "(lambda () a)")
	e.Define("f", f)

	// Rebinding a after the lambda was created must not change the
	// value a resolves to inside the lambda's body.
	e.Define("a", num.Int(2))

	expect(t, e, "(apply f)", num.Int(1))
	expect(t, e, "a", num.Int(2))
}

func TestLambdaScopeRestored(t *testing.T) {
	e := New()

	e.Define("x", num.Int(5))

	// Parameter bindings do not leak into the caller's scope, even
	// when the body fails.
	expect(t, e, "(apply (lambda (q) q) 1)", num.Int(1))
	fails(t, e, "q", fault.UnboundVariable)

	fails(t, e, "(apply (lambda (q) (car q)) 1)", fault.TypeMismatch)
	expect(t, e, "x", num.Int(5))
}

func TestApply(t *testing.T) {
	e := New()

	expect(t, e, "(apply (lambda (a b) (add a b)) 1 2)", num.Int(3))
	expect(t, e, `(apply (lambda () (car (list "good"))))`, str.New("good"))
	expect(t, e, "(apply (lambda (fun) (apply fun 1)) (lambda (n) (add 1 n)))", num.Int(2))
	expect(t, e, "(funcall (lambda (a b) (add a b)) 1 2)", num.Int(3))

	fails(t, e, "(apply)", fault.WrongArity)
	fails(t, e, "(apply 1)", fault.NotCallable)
}

func TestCallFaults(t *testing.T) {
	e := New()

	fails(t, e, "(nosuch 1)", fault.UnboundFunction)
	fails(t, e, "((add 1 2) 3)", fault.NotCallable)
	fails(t, e, "(() 1)", fault.NotCallable)
}

func TestNestedHead(t *testing.T) {
	e := New()

	// A nested call form in head position is evaluated first.
	expect(t, e, "((if t (lambda (a) a) (lambda (a) 0)) 7)", num.Int(7))
}

func TestSelfApplicationRecursion(t *testing.T) {
	e := New()

	expect(t, e, `
((lambda (n)
   ((lambda (sub_f) (apply sub_f sub_f n))
    (lambda (rec n) (if (eq n 0)
                        0
                        (apply rec rec (sub n 1))))))
 100)`, num.Int(0))
}

func TestFibonacci(t *testing.T) {
	e := New()

	expect(t, e, `
((lambda (n)
   ((lambda (FIB) (apply FIB FIB n))
    (lambda (FIB n)
      (if (eq n 0)
          0
          (if (eq n 1)
              1
              (add (apply FIB FIB (sub n 1))
                   (apply FIB FIB (sub n 2))))))))
 10)`, num.Int(55))
}

func TestFunctionEquality(t *testing.T) {
	e := New()

	f := run(t, e, "(lambda (a) a)")
	g := run(t, e, "(lambda (a) a)")

	e.Define("f", f)
	e.Define("g", g)

	// Functions are only equal to themselves.
	expect(t, e, "(eq f f)", sym.True)
	expect(t, e, "(eq f g)", pair.Null)
}
