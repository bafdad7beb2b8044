// Released under an MIT license. See LICENSE.

// Package reader encapsulates the loon lexer and parser.
package reader

import (
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/struct/loc"
	"github.com/loon-lang/loon/internal/reader/lexer"
	"github.com/loon-lang/loon/internal/reader/parser"
)

// All parses every top-level form in text. Label can be a file name or
// other identifier.
func All(label, text string) ([]cell.I, error) {
	l := lexer.New(label)
	l.Scan(text)

	var forms []cell.I

	err := parser.New(func(c cell.I) {
		forms = append(forms, c)
	}, l.Token).Parse()
	if err != nil {
		return nil, err
	}

	return forms, nil
}

// One parses exactly one form from text. Leading and trailing
// whitespace is tolerated; any trailing non-whitespace input is an
// error, as is an empty text.
func One(label, text string) (cell.I, error) {
	forms, err := All(label, text)
	if err != nil {
		return nil, err
	}

	source := loc.T{Char: 1, Line: 1, Name: label}

	switch len(forms) {
	case 0:
		return nil, &parser.Error{Reason: "empty input", Source: source}
	case 1:
		return forms[0], nil
	}

	return nil, &parser.Error{Reason: "unexpected trailing input", Source: source}
}
