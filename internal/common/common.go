// Released under an MIT license. See LICENSE.

// Package common defines common interfaces.
package common

import (
	"fmt"
)

type Stringer = fmt.Stringer
