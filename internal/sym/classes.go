package sym

import (
	"fmt"

	"github.com/toughmanshawn/rob-twophase/internal/coord"
	"github.com/toughmanshawn/rob-twophase/internal/cubie"
)

const unassigned = ^uint32(0)

// BuildClasses runs the expensive initialization step: it partitions the
// fslice and corner-permutation coordinate spaces into equivalence
// classes under the reduction subgroup. Idempotent; repeated calls return
// the first result.
func (t *Tables) BuildClasses() error {
	t.classOnce.Do(func() {
		t.classErr = t.buildClasses()
		t.built = t.classErr == nil
	})
	return t.classErr
}

func (t *Tables) buildClasses() error {
	n, err := t.buildClassTable(
		coord.NFSlice, NFSliceSym,
		t.conjFSlice,
		&t.FSliceSym, &t.FSliceRep, &t.FSliceSelfs,
	)
	if err != nil {
		return fmt.Errorf("%w: fslice produced %d classes, want %d", ErrClassCount, n, NFSliceSym)
	}
	n, err = t.buildClassTable(
		coord.NCPerm, NCPermSym,
		t.conjCPerm,
		&t.CPermSym, &t.CPermRep, &t.CPermSelfs,
	)
	if err != nil {
		return fmt.Errorf("%w: cperm produced %d classes, want %d", ErrClassCount, n, NCPermSym)
	}
	return nil
}

// buildClassTable scans raw values left to right. The first raw value of
// each orbit becomes the class representative; its subgroup images are
// assigned to the class as they are first seen, and the symmetries
// mapping the representative to itself are collected into the class's
// self-symmetry mask.
func (t *Tables) buildClassTable(
	domain, wantClasses int,
	conj func(raw, subIdx int) int,
	symTab *[]uint32, repTab *[]uint32, selfsTab *[]uint16,
) (int, error) {
	tab := make([]uint32, domain)
	for i := range tab {
		tab[i] = unassigned
	}
	reps := make([]uint32, 0, wantClasses)
	selfs := make([]uint16, 0, wantClasses)

	for raw := 0; raw < domain; raw++ {
		if tab[raw] != unassigned {
			continue
		}
		cls := uint32(len(reps))
		tab[raw] = cls * NSymsSub // identity symmetry
		reps = append(reps, uint32(raw))
		var mask uint16 = 1
		for j := 1; j < NSymsSub; j++ {
			v := conj(raw, j)
			if v == raw {
				mask |= 1 << j
			}
			if tab[v] == unassigned {
				tab[v] = cls*NSymsSub + uint32(j)
			}
		}
		selfs = append(selfs, mask)
	}

	if len(reps) != wantClasses {
		return len(reps), ErrClassCount
	}
	*symTab = tab
	*repTab = reps
	*selfsTab = selfs
	return len(reps), nil
}

// conjFSlice returns the fslice coordinate after applying subgroup
// symmetry j to a state with fslice raw.
func (t *Tables) conjFSlice(raw, j int) int {
	flip, slice := coord.FSliceParts(raw)
	c := cubie.Solved()
	coord.SetSlice(&c, slice)
	coord.SetFlip(&c, flip)
	cc := t.conjEdges(&c, t.Sub[j])
	return coord.FSliceCoord(coord.Flip(&cc), coord.Slice(&cc))
}

// conjCPerm returns the corner permutation coordinate after applying
// subgroup symmetry j to a state with corner permutation raw.
func (t *Tables) conjCPerm(raw, j int) int {
	c := cubie.Solved()
	coord.SetCPerm(&c, raw)
	cc := t.conjCorners(&c, t.Sub[j])
	return coord.CPerm(&cc)
}
