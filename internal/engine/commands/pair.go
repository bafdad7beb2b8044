// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/type/pair"
	"github.com/loon-lang/loon/internal/common/validate"
)

func car(args cell.I) cell.I {
	v := validate.Fixed(args, 1)

	return pair.Car(v[0])
}

func cdr(args cell.I) cell.I {
	v := validate.Fixed(args, 1)

	return pair.Cdr(v[0])
}

func cons(args cell.I) cell.I {
	v := validate.Fixed(args, 2)

	return pair.Cons(v[0], v[1])
}
