//go:build faces5

package sym

import "github.com/toughmanshawn/rob-twophase/internal/cubie"

// Sizes for the five-face variant. Only the symmetries that leave the B
// face alone remain usable, so the reduction is 4x instead of 16x.
const (
	NSymsSub   = 4
	NFSliceSym = 255664
	NCPermSym  = 10368
)

// rotationCube is the symmetry the search splits parallel work on: a
// quarter-turn around the F-B axis (U4 viewed through URF3), order 4.
func rotationCube() cubie.Cube {
	inv := cubie.Inverse(cubie.URF3Cube)
	return cubie.Mul(cubie.Mul(inv, cubie.U4Cube), cubie.URF3Cube)
}
