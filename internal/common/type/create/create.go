// Released under an MIT license. See LICENSE.

// Package create provides helper functions for creating loon types.
package create

import (
	"github.com/loon-lang/loon/internal/common/interface/cell"
	"github.com/loon-lang/loon/internal/common/type/pair"
	"github.com/loon-lang/loon/internal/common/type/sym"
)

// Bool returns the loon value corresponding to the value of the boolean a.
func Bool(a bool) cell.I {
	if a {
		return sym.True
	}

	return pair.Null
}
