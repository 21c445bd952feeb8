// Package sym reduces the cube's coordinate spaces by its geometric
// symmetries. It generates the 48-element symmetry group from four basic
// transforms, conjugates moves and coordinates by group elements, and
// partitions the phase-one and phase-two permutation coordinates into
// equivalence classes under the reduction subgroup. The class tables cut
// the pruning tables by roughly the subgroup size; the self-symmetry
// masks record where a class is smaller than that because some
// symmetries fix its representative.
//
// Construction is a strict two-step sequence: New builds the group and
// the conjugation tables, BuildClasses runs the expensive enumeration of
// both coordinate spaces. Everything is immutable afterwards and safe
// for concurrent readers.
package sym

import (
	"errors"
	"fmt"
	"sync"

	"github.com/toughmanshawn/rob-twophase/internal/coord"
	"github.com/toughmanshawn/rob-twophase/internal/cubie"
)

// NSyms is the size of the full symmetry group.
const NSyms = 48

// Initialization failures. All of them mean the compiled-in geometry
// constants are wrong; there is no degraded mode.
var (
	ErrClosure    = errors.New("sym: generator closure did not produce the full group")
	ErrConjMove   = errors.New("sym: conjugated move matches no basic move")
	ErrSubgroup   = errors.New("sym: reduction subgroup has unexpected size")
	ErrClassCount = errors.New("sym: symmetry class count mismatch")
)

// Tables is the one-time-built, read-only symmetry state.
type Tables struct {
	// Cubes holds the 48 symmetry transforms; element 0 is the identity.
	Cubes [NSyms]cubie.Cube
	// Inv maps a symmetry to its inverse within the group.
	Inv [NSyms]int
	// ConjMove[m][s] is the basic move equal to s^-1 * m * s.
	ConjMove [cubie.NMoves][NSyms]cubie.Move

	// Sub lists the group indices of the reduction subgroup; Sub[0] is
	// the identity. subInv maps a subgroup index to the subgroup index
	// of its inverse.
	Sub    [NSymsSub]int
	subInv [NSymsSub]int

	// RotSym is the group index of the symmetry used to partition
	// parallel search; RotPows are the indices of its RotOrder powers,
	// starting at the identity.
	RotSym   int
	RotOrder int
	RotPows  []int

	// ConjTwist[t][j] is the twist of a state with twist t after the
	// j-th subgroup symmetry; ConjUDEdges likewise for the UD-edge
	// permutation.
	ConjTwist   [][NSymsSub]uint16
	ConjUDEdges [][NSymsSub]uint16

	// Class tables, built by BuildClasses. The packed entry of a raw
	// value v is class*NSymsSub+s where applying subgroup symmetry s to
	// the class representative yields v. Rep holds each class's
	// representative raw value, Selfs the bitmask of subgroup symmetries
	// fixing it.
	FSliceSym   []uint32
	FSliceRep   []uint32
	FSliceSelfs []uint16
	CPermSym    []uint32
	CPermRep    []uint32
	CPermSelfs  []uint16

	classOnce sync.Once
	classErr  error
	built     bool
}

// New runs the cheap initialization step: group closure, inverses, move
// conjugation and the coordinate conjugation tables. BuildClasses must be
// called afterwards, before any class lookup.
func New() (*Tables, error) {
	t := &Tables{}

	cubes := make([]cubie.Cube, 0, NSyms)
	index := make(map[cubie.Cube]int, NSyms)
	add := func(c cubie.Cube) {
		if _, ok := index[c]; !ok {
			index[c] = len(cubes)
			cubes = append(cubes, c)
		}
	}
	generators := []cubie.Cube{cubie.LR2Cube, cubie.U4Cube, cubie.F2Cube, cubie.URF3Cube}

	add(cubie.Solved())
	for i := 0; i < len(cubes); i++ {
		for _, g := range generators {
			add(cubie.Mul(cubes[i], g))
			if len(cubes) > NSyms {
				return nil, fmt.Errorf("%w: closure exceeded %d elements", ErrClosure, NSyms)
			}
		}
	}
	if len(cubes) != NSyms {
		return nil, fmt.Errorf("%w: got %d of %d elements", ErrClosure, len(cubes), NSyms)
	}
	copy(t.Cubes[:], cubes)

	// Inverses by exhaustive search; the group is closed, so every
	// element has one.
	solved := cubie.Solved()
	for i := range t.Cubes {
		t.Inv[i] = -1
		for j := range t.Cubes {
			if cubie.Mul(t.Cubes[i], t.Cubes[j]) == solved {
				t.Inv[i] = j
				break
			}
		}
		if t.Inv[i] < 0 {
			return nil, fmt.Errorf("%w: element %d has no inverse", ErrClosure, i)
		}
	}

	// Move conjugation: every basic move viewed through every symmetry
	// must again be a basic move.
	for m := 0; m < cubie.NMoves; m++ {
		for s := 0; s < NSyms; s++ {
			conj := cubie.Mul(cubie.Mul(t.Cubes[t.Inv[s]], cubie.MoveCubes[m]), t.Cubes[s])
			found := false
			for m2 := 0; m2 < cubie.NMoves; m2++ {
				if conj == cubie.MoveCubes[m2] {
					t.ConjMove[m][s] = cubie.Move(m2)
					found = true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("%w: move %v, symmetry %d", ErrConjMove, cubie.Move(m), s)
			}
		}
	}

	if err := t.selectSubgroup(); err != nil {
		return nil, err
	}
	if err := t.selectRotation(index); err != nil {
		return nil, err
	}

	t.buildConjTwist()
	t.buildConjUDEdges()
	return t, nil
}

// selectSubgroup picks the symmetries usable for coordinate reduction:
// those keeping the slice edges in the slice, and, when the move set is
// restricted, those mapping usable moves to usable moves.
func (t *Tables) selectSubgroup() error {
	n := 0
	for s := 0; s < NSyms; s++ {
		if !t.usable(s) {
			continue
		}
		if n == NSymsSub {
			return fmt.Errorf("%w: more than %d usable symmetries", ErrSubgroup, NSymsSub)
		}
		t.Sub[n] = s
		n++
	}
	if n != NSymsSub {
		return fmt.Errorf("%w: got %d of %d", ErrSubgroup, n, NSymsSub)
	}
	for j := 0; j < NSymsSub; j++ {
		t.subInv[j] = -1
		for k := 0; k < NSymsSub; k++ {
			if t.Sub[k] == t.Inv[t.Sub[j]] {
				t.subInv[j] = k
				break
			}
		}
		if t.subInv[j] < 0 {
			return fmt.Errorf("%w: subgroup not closed under inversion", ErrSubgroup)
		}
	}
	return nil
}

func (t *Tables) usable(s int) bool {
	for i := cubie.FR; i < cubie.NEdges; i++ {
		if t.Cubes[s].EP[i] < cubie.FR {
			return false
		}
	}
	for _, m := range cubie.UsableMoves {
		if int(t.ConjMove[m][s]) >= len(cubie.UsableMoves) {
			return false
		}
	}
	return true
}

// selectRotation locates the partitioning symmetry and its powers.
func (t *Tables) selectRotation(index map[cubie.Cube]int) error {
	rot := rotationCube()
	idx, ok := index[rot]
	if !ok {
		return fmt.Errorf("%w: rotation symmetry not in group", ErrClosure)
	}
	t.RotSym = idx
	solved := cubie.Solved()
	p := solved
	for {
		i, ok := index[p]
		if !ok {
			return fmt.Errorf("%w: rotation power not in group", ErrClosure)
		}
		t.RotPows = append(t.RotPows, i)
		p = cubie.Mul(p, rot)
		if p == solved {
			break
		}
	}
	t.RotOrder = len(t.RotPows)
	return nil
}

func (t *Tables) buildConjTwist() {
	t.ConjTwist = make([][NSymsSub]uint16, coord.NTwist)
	for raw := 0; raw < coord.NTwist; raw++ {
		c := cubie.Solved()
		coord.SetTwist(&c, raw)
		for j := 0; j < NSymsSub; j++ {
			cc := t.conjCorners(&c, t.Sub[j])
			t.ConjTwist[raw][j] = uint16(coord.Twist(&cc))
		}
	}
}

func (t *Tables) buildConjUDEdges() {
	t.ConjUDEdges = make([][NSymsSub]uint16, coord.NUDEdges)
	for raw := 0; raw < coord.NUDEdges; raw++ {
		c := cubie.Solved()
		coord.SetUDEdges(&c, raw)
		for j := 0; j < NSymsSub; j++ {
			cc := t.conjEdges(&c, t.Sub[j])
			t.ConjUDEdges[raw][j] = uint16(coord.UDEdges(&cc))
		}
	}
}

// conjCorners conjugates the corner part of c by group symmetry s.
func (t *Tables) conjCorners(c *cubie.Cube, s int) cubie.Cube {
	var tmp, out cubie.Cube
	cubie.MulCorners(&t.Cubes[t.Inv[s]], c, &tmp)
	cubie.MulCorners(&tmp, &t.Cubes[s], &out)
	return out
}

// conjEdges conjugates the edge part of c by group symmetry s.
func (t *Tables) conjEdges(c *cubie.Cube, s int) cubie.Cube {
	var tmp, out cubie.Cube
	cubie.MulEdges(&t.Cubes[t.Inv[s]], c, &tmp)
	cubie.MulEdges(&tmp, &t.Cubes[s], &out)
	return out
}

// SubInv returns the subgroup index of the inverse of subgroup symmetry j.
func (t *Tables) SubInv(j int) int { return t.subInv[j] }

// FSliceClass decodes the packed class entry of a raw fslice value.
// Applying subgroup symmetry s to the representative of cls yields raw.
func (t *Tables) FSliceClass(raw int) (cls, s int) {
	e := t.FSliceSym[raw]
	return int(e / NSymsSub), int(e % NSymsSub)
}

// CPermClass decodes the packed class entry of a raw corner permutation.
func (t *Tables) CPermClass(raw int) (cls, s int) {
	e := t.CPermSym[raw]
	return int(e / NSymsSub), int(e % NSymsSub)
}
