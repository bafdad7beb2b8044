// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/type/num"
	"github.com/loon-lang/loon/internal/common/validate"
)

func add(args cell.I) cell.I {
	v := validate.AtLeast(args, 2)

	sum := validate.Number(v[0])
	for _, c := range v[1:] {
		sum += validate.Number(c)
	}

	return num.Float(sum)
}

// div follows IEEE 754 semantics: dividing by zero yields an infinity,
// not a failure.
func div(args cell.I) cell.I {
	v := validate.AtLeast(args, 2)

	quotient := validate.Number(v[0])
	for _, c := range v[1:] {
		quotient /= validate.Number(c)
	}

	return num.Float(quotient)
}

func mul(args cell.I) cell.I {
	v := validate.AtLeast(args, 2)

	product := validate.Number(v[0])
	for _, c := range v[1:] {
		product *= validate.Number(c)
	}

	return num.Float(product)
}

func sub(args cell.I) cell.I {
	v := validate.AtLeast(args, 2)

	difference := validate.Number(v[0])
	for _, c := range v[1:] {
		difference -= validate.Number(c)
	}

	return num.Float(difference)
}
