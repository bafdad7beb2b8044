/*
Loon is a minimal Lisp dialect. Source text is parsed into atoms and
cons lists and evaluated under a lexically-scoped environment with
first-class functions. The following forms behave as expected:

    (add 3 4 5)
    (mul (add 3 4) (sub 9 1))
    (car (cdr (list 1 2 3)))
    (cons 1 2)
    (quote (a b c))
    (if (eq 1 2) "same" "different")
    ((lambda (a b) (add a b)) 1 2)
    (apply (lambda (a b) (add a b)) 1 2)

For more detail, see: https://github.com/loon-lang/loon

Loon is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/loon-lang/loon/internal/common/interface/literal"
	"github.com/loon-lang/loon/internal/engine"
	"github.com/loon-lang/loon/internal/reader"
	"github.com/loon-lang/loon/internal/system/options"
	"github.com/loon-lang/loon/internal/ui"
)

func batch(e *engine.T, label, text string) error {
	forms, err := reader.All(label, text)
	if err != nil {
		return err
	}

	for _, c := range forms {
		r, err := e.Evaluate(c)
		if err != nil {
			return err
		}

		fmt.Println(literal.String(r))
	}

	return nil
}

func main() {
	options.Parse()

	e := engine.New()
	u := ui.New(e)

	if path := options.Script(); path != "" {
		if _, err := u.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "loon: error loading %s: %s\n", path, err)
			os.Exit(1)
		}

		fmt.Printf("Loaded file: %s\n", path)
	}

	if command := options.Command(); command != "" {
		if err := batch(e, "command", command); err != nil {
			fmt.Fprintf(os.Stderr, "loon: %s\n", err)
			os.Exit(1)
		}

		return
	}

	if options.Interactive() {
		u.Run()

		return
	}

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loon: %s\n", err)
		os.Exit(1)
	}

	if err := batch(e, "stdin", string(text)); err != nil {
		fmt.Fprintf(os.Stderr, "loon: %s\n", err)
		os.Exit(1)
	}
}
