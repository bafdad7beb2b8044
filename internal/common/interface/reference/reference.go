// Released under an MIT license. See LICENSE.

// Package reference defines the interface for loon's variable type.
package reference

import (
	"github.com/loon-lang/loon/internal/common/interface/cell"
)

// I (reference) is a reference to a cell.
type I interface {
	Copy() I
	Get() cell.I
	Set(c cell.I)
}
