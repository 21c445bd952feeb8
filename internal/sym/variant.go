//go:build !faces5

package sym

import "github.com/toughmanshawn/rob-twophase/internal/cubie"

// Sizes for the full six-face reduction.
const (
	// NSymsSub is the size of the reduction subgroup: the symmetries
	// that keep the UD-slice usable for phase two.
	NSymsSub = 16
	// NFSliceSym and NCPermSym are the resulting symmetry-class counts.
	NFSliceSym = 64430
	NCPermSym  = 2768
)

// rotationCube is the symmetry the search splits parallel work on: the
// third-turn around the URF-DBL diagonal, order 3.
func rotationCube() cubie.Cube {
	return cubie.URF3Cube
}
