// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/type/pair"
)

// New creates a new proper list composed of all of the elements in
// elements, folding right-to-left onto Null. No existing structure is
// mutated; shared tails remain shared.
func New(elements ...cell.I) cell.I {
	c := pair.Null

	for i := len(elements) - 1; i >= 0; i-- {
		c = pair.Cons(elements[i], c)
	}

	return c
}

// Elements walks list forward and returns its elements in order.
// Iteration stops at Null. A dotted list does not fail: its non-Null,
// non-pair tail is returned as the final element. The list must be
// non-circular.
func Elements(list cell.I) []cell.I {
	elements := []cell.I{}

	for list != pair.Null {
		if !pair.Is(list) {
			elements = append(elements, list)

			break
		}

		elements = append(elements, pair.Car(list))
		list = pair.Cdr(list)
	}

	return elements
}

// Length returns the number of elements in list.
// A dotted tail counts as a final element, matching Elements.
// The list must be non-circular.
func Length(list cell.I) int {
	length := 0

	for list != pair.Null {
		length++

		if !pair.Is(list) {
			break
		}

		list = pair.Cdr(list)
	}

	return length
}

// Reverse creates a new list with the elements of list in reverse order.
// The list must be a non-circular proper list.
func Reverse(list cell.I) cell.I {
	reversed := pair.Null

	for list != pair.Null {
		reversed = pair.Cons(pair.Car(list), reversed)

		list = pair.Cdr(list)
	}

	return reversed
}
