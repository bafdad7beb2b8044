package fault

import (
	"testing"
)

func TestArityDetails(t *testing.T) {
	f := Arity(2, 3)

	if f.Kind() != WrongArity {
		t.Fatalf("expected WrongArity, got %d", f.Kind())
	}

	if f.Expected() != 2 || f.Got() != 3 {
		t.Fatalf("expected 2/3, got %d/%d", f.Expected(), f.Got())
	}

	if s := f.Error(); s != "expected 2 arguments, passed 3" {
		t.Fatalf("unexpected message %q", s)
	}
}

func TestAtLeastDetails(t *testing.T) {
	f := AtLeast(1, 0)

	if f.Kind() != WrongArity {
		t.Fatalf("expected WrongArity, got %d", f.Kind())
	}

	if f.Expected() != 1 || f.Got() != 0 {
		t.Fatalf("expected 1/0, got %d/%d", f.Expected(), f.Got())
	}

	if s := f.Error(); s != "expected at least 1 argument, passed 0" {
		t.Fatalf("unexpected message %q", s)
	}
}

func TestMessages(t *testing.T) {
	for _, c := range []struct {
		f        *T
		kind     Kind
		expected string
	}{
		{Unbound("x"), UnboundVariable, "unbound variable 'x'"},
		{NoFunction("f"), UnboundFunction, "unbound function 'f'"},
		{Type("number", "string"), TypeMismatch, "expected number, passed string"},
		{Uncallable("nil"), NotCallable, "nil is not callable"},
	} {
		if c.f.Kind() != c.kind {
			t.Fatalf("%q: expected kind %d, got %d", c.expected, c.kind, c.f.Kind())
		}

		if s := c.f.Error(); s != c.expected {
			t.Fatalf("expected %q, got %q", c.expected, s)
		}
	}
}
