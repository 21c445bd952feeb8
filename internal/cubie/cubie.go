// Package cubie models the cube at the permutation level: where each
// corner and edge cubie sits and how it is twisted or flipped. Moves and
// symmetries are cubes too, so applying either is a single composition.
package cubie

import "fmt"

// Corner slot indices.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge slot indices. The four UD-slice edges occupy the last four slots,
// which the slice coordinate relies on.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

const (
	NCorners = 8
	NEdges   = 12
)

// Cube is a cube state (or a move, or a symmetry) at the cubie level.
// CP[i] and EP[i] name the cubie sitting in slot i; CO and EO give its
// twist (0-2) and flip (0-1).
//
// Corner orientations >= 3 are a reserved encoding for orientation under
// a mirrored frame. They appear in mirror symmetries and transiently
// inside compositions involving them, never in a persisted puzzle state;
// Verify rejects them.
type Cube struct {
	CP [NCorners]uint8
	CO [NCorners]uint8
	EP [NEdges]uint8
	EO [NEdges]uint8
}

// Solved returns the identity cube.
func Solved() Cube {
	var c Cube
	for i := 0; i < NCorners; i++ {
		c.CP[i] = uint8(i)
	}
	for i := 0; i < NEdges; i++ {
		c.EP[i] = uint8(i)
	}
	return c
}

// MulCorners composes the corner parts of a and b into dst: dst is a with
// the transform b applied. The orientation arithmetic covers the mirrored
// encoding (values >= 3), which is what makes composition with mirror
// symmetries total.
func MulCorners(a, b, dst *Cube) {
	for i := 0; i < NCorners; i++ {
		dst.CP[i] = a.CP[b.CP[i]]
		oa := int(a.CO[b.CP[i]])
		ob := int(b.CO[i])
		var o int
		switch {
		case oa < 3 && ob < 3:
			o = oa + ob
			if o >= 3 {
				o -= 3
			}
		case oa < 3 && ob >= 3:
			o = oa + ob
			if o >= 6 {
				o -= 3
			}
		case oa >= 3 && ob < 3:
			o = oa - ob
			if o < 3 {
				o += 3
			}
		default:
			o = oa - ob
			if o < 0 {
				o += 3
			}
		}
		dst.CO[i] = uint8(o)
	}
}

// MulEdges composes the edge parts of a and b into dst.
func MulEdges(a, b, dst *Cube) {
	for i := 0; i < NEdges; i++ {
		dst.EP[i] = a.EP[b.EP[i]]
		dst.EO[i] = (a.EO[b.EP[i]] + b.EO[i]) & 1
	}
}

// Mul returns a with the transform b applied.
func Mul(a, b Cube) Cube {
	var c Cube
	MulCorners(&a, &b, &c)
	MulEdges(&a, &b, &c)
	return c
}

// Inverse returns the transform undoing c.
func Inverse(c Cube) Cube {
	var inv Cube
	for i := 0; i < NEdges; i++ {
		inv.EP[c.EP[i]] = uint8(i)
	}
	for i := 0; i < NEdges; i++ {
		inv.EO[i] = c.EO[inv.EP[i]]
	}
	for i := 0; i < NCorners; i++ {
		inv.CP[c.CP[i]] = uint8(i)
	}
	for i := 0; i < NCorners; i++ {
		o := int(c.CO[inv.CP[i]])
		if o >= 3 {
			inv.CO[i] = uint8(o)
			continue
		}
		o = -o
		if o < 0 {
			o += 3
		}
		inv.CO[i] = uint8(o)
	}
	return inv
}

// Verify checks that c is a reachable puzzle state: both permutation
// vectors are permutations of equal parity, orientations are in their
// persisted ranges and sum to zero modulo their order.
func (c *Cube) Verify() error {
	var cseen, eseen [12]bool
	cosum, eosum := 0, 0
	for i := 0; i < NCorners; i++ {
		if c.CP[i] >= NCorners || cseen[c.CP[i]] {
			return fmt.Errorf("cubie: corner permutation slot %d invalid", i)
		}
		cseen[c.CP[i]] = true
		if c.CO[i] >= 3 {
			return fmt.Errorf("cubie: corner orientation %d out of range at slot %d", c.CO[i], i)
		}
		cosum += int(c.CO[i])
	}
	for i := 0; i < NEdges; i++ {
		if c.EP[i] >= NEdges || eseen[c.EP[i]] {
			return fmt.Errorf("cubie: edge permutation slot %d invalid", i)
		}
		eseen[c.EP[i]] = true
		if c.EO[i] >= 2 {
			return fmt.Errorf("cubie: edge orientation %d out of range at slot %d", c.EO[i], i)
		}
		eosum += int(c.EO[i])
	}
	if cosum%3 != 0 {
		return fmt.Errorf("cubie: corner orientations sum to %d, not divisible by 3", cosum)
	}
	if eosum%2 != 0 {
		return fmt.Errorf("cubie: edge orientations sum to %d, not even", eosum)
	}
	if permParity(c.CP[:]) != permParity(c.EP[:]) {
		return fmt.Errorf("cubie: corner and edge permutation parity differ")
	}
	return nil
}

func permParity(p []uint8) int {
	parity := 0
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				parity ^= 1
			}
		}
	}
	return parity
}
