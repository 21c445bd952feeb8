// Package coord maps cubie-level states to the dense integer coordinates
// the search runs on, and back to canonical representative states. Every
// coordinate has an extract function (state to integer) and a reconstruct
// function (integer to state); reconstruct only touches the vectors the
// coordinate is defined over.
package coord

import "github.com/toughmanshawn/rob-twophase/internal/cubie"

// Coordinate ranges.
const (
	NTwist   = 2187 // 3^7 corner orientations
	NFlip    = 2048 // 2^11 edge orientations
	NSlice   = 495  // C(12,4) UD-slice edge locations
	NFSlice  = NFlip * NSlice
	NCPerm   = 40320 // 8! corner permutations
	NUDEdges = 40320 // 8! UD-edge permutations within phase two
	NSPerm   = 24    // 4! slice-edge permutations within phase two
)

// FSliceCoord packs a slice location and an edge-orientation value into
// the combined phase-one coordinate.
func FSliceCoord(flip, slice int) int { return slice*NFlip + flip }

// FSliceParts is the inverse of FSliceCoord.
func FSliceParts(fslice int) (flip, slice int) { return fslice % NFlip, fslice / NFlip }

// Twist extracts the corner orientation coordinate.
func Twist(c *cubie.Cube) int {
	t := 0
	for i := 0; i < cubie.NCorners-1; i++ {
		t = 3*t + int(c.CO[i])
	}
	return t
}

// SetTwist writes the corner orientations encoding t; the last corner
// absorbs the parity.
func SetTwist(c *cubie.Cube, t int) {
	sum := 0
	for i := cubie.NCorners - 2; i >= 0; i-- {
		c.CO[i] = uint8(t % 3)
		sum += t % 3
		t /= 3
	}
	c.CO[cubie.NCorners-1] = uint8((3 - sum%3) % 3)
}

// Flip extracts the edge orientation coordinate.
func Flip(c *cubie.Cube) int {
	f := 0
	for i := 0; i < cubie.NEdges-1; i++ {
		f = 2*f + int(c.EO[i])
	}
	return f
}

// SetFlip writes the edge orientations encoding f.
func SetFlip(c *cubie.Cube, f int) {
	sum := 0
	for i := cubie.NEdges - 2; i >= 0; i-- {
		c.EO[i] = uint8(f & 1)
		sum += f & 1
		f >>= 1
	}
	c.EO[cubie.NEdges-1] = uint8(sum & 1)
}

// Slice extracts the location coordinate of the four UD-slice edges;
// 0 means all four sit in the slice.
func Slice(c *cubie.Cube) int {
	a, x := 0, 0
	for i := cubie.NEdges - 1; i >= 0; i-- {
		if c.EP[i] >= cubie.FR {
			a += cnk(cubie.NEdges-1-i, x+1)
			x++
		}
	}
	return a
}

// SetSlice places the four slice edges per the location coordinate and
// fills the remaining slots with the UD edges in index order.
func SetSlice(c *cubie.Cube, idx int) {
	sliceEdge := [4]uint8{cubie.FR, cubie.FL, cubie.BL, cubie.BR}
	otherEdge := [8]uint8{cubie.UR, cubie.UF, cubie.UL, cubie.UB, cubie.DR, cubie.DF, cubie.DL, cubie.DB}
	const unset = 0xFF
	x := 4
	for i := 0; i < cubie.NEdges; i++ {
		c.EP[i] = unset
		if idx-cnk(cubie.NEdges-1-i, x) >= 0 {
			c.EP[i] = sliceEdge[4-x]
			idx -= cnk(cubie.NEdges-1-i, x)
			x--
		}
	}
	k := 0
	for i := 0; i < cubie.NEdges; i++ {
		if c.EP[i] == unset {
			c.EP[i] = otherEdge[k]
			k++
		}
	}
}

// CPerm extracts the corner permutation coordinate.
func CPerm(c *cubie.Cube) int {
	perm := c.CP
	b := 0
	for i := cubie.NCorners - 1; i > 0; i-- {
		k := 0
		for int(perm[i]) != i {
			rotateLeft(perm[:i+1])
			k++
		}
		b = (i+1)*b + k
	}
	return b
}

// SetCPerm writes the corner permutation encoding idx.
func SetCPerm(c *cubie.Cube, idx int) {
	for i := 0; i < cubie.NCorners; i++ {
		c.CP[i] = uint8(i)
	}
	for i := 0; i < cubie.NCorners; i++ {
		k := idx % (i + 1)
		idx /= i + 1
		for ; k > 0; k-- {
			rotateRight(c.CP[:i+1])
		}
	}
}

// UDEdges extracts the permutation coordinate of the eight UD edges.
// Defined only when the slice edges are home (phase two).
func UDEdges(c *cubie.Cube) int {
	var perm [8]uint8
	copy(perm[:], c.EP[:8])
	b := 0
	for i := 7; i > 0; i-- {
		k := 0
		for int(perm[i]) != i {
			rotateLeft(perm[:i+1])
			k++
		}
		b = (i+1)*b + k
	}
	return b
}

// SetUDEdges writes the UD-edge permutation encoding idx and puts the
// slice edges home.
func SetUDEdges(c *cubie.Cube, idx int) {
	var perm [8]uint8
	for i := range perm {
		perm[i] = uint8(i)
	}
	for i := 0; i < 8; i++ {
		k := idx % (i + 1)
		idx /= i + 1
		for ; k > 0; k-- {
			rotateRight(perm[:i+1])
		}
	}
	copy(c.EP[:8], perm[:])
	for i := 8; i < cubie.NEdges; i++ {
		c.EP[i] = uint8(i)
	}
}

// SPerm extracts the permutation coordinate of the slice edges within
// the slice. Defined only when the slice edges are home (phase two).
func SPerm(c *cubie.Cube) int {
	var perm [4]uint8
	for i := 0; i < 4; i++ {
		perm[i] = c.EP[8+i] - 8
	}
	b := 0
	for i := 3; i > 0; i-- {
		k := 0
		for int(perm[i]) != i {
			rotateLeft(perm[:i+1])
			k++
		}
		b = (i+1)*b + k
	}
	return b
}

// SetSPerm writes the slice-edge permutation encoding idx into the slice
// slots.
func SetSPerm(c *cubie.Cube, idx int) {
	var perm [4]uint8
	for i := range perm {
		perm[i] = uint8(i)
	}
	for i := 0; i < 4; i++ {
		k := idx % (i + 1)
		idx /= i + 1
		for ; k > 0; k-- {
			rotateRight(perm[:i+1])
		}
	}
	for i := 0; i < 4; i++ {
		c.EP[8+i] = perm[i] + 8
	}
}

func rotateLeft(p []uint8) {
	t := p[0]
	copy(p, p[1:])
	p[len(p)-1] = t
}

func rotateRight(p []uint8) {
	t := p[len(p)-1]
	copy(p[1:], p[:len(p)-1])
	p[0] = t
}

// cnk is the binomial coefficient C(n, k).
func cnk(n, k int) int {
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := 1
	for i := 0; i < k; i++ {
		r = r * (n - i) / (i + 1)
	}
	return r
}
