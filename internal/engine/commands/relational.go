// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/type/create"
	"github.com/loon-lang/loon/internal/common/validate"
)

// eq is structural equality: two independently constructed lists with
// equal elements in equal order are eq. Functions are only eq to
// themselves.
func eq(args cell.I) cell.I {
	v := validate.Fixed(args, 2)

	return create.Bool(v[0].Equal(v[1]))
}
