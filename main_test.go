package main

import (
	"testing"

	"github.com/loon-lang/loon/internal/engine"
	"github.com/loon-lang/loon/internal/reader"
)

func TestInput(t *testing.T) {
	e := engine.New()

	forms, err := reader.All("loon", `
(add 3 4 5)
(mul (add 3 4) (sub 9 1))
(car (cdr (list 1 2 3)))
(if (eq 1 2) "same" "different")
((lambda (a b) (add a b)) 1 2)
(apply (lambda (a b) (add a b)) 1 2)
`)
	if err != nil {
		t.Fatalf("unexpected parse error: %s", err)
	}

	for _, c := range forms {
		if _, err := e.Evaluate(c); err != nil {
			t.Fatalf("unexpected evaluation error: %s", err)
		}
	}
}
