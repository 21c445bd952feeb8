// Package prun builds the move-distance heuristic tables for the
// two-phase search. Both tables are indexed by a symmetry class and the
// conjugated companion coordinate, so the huge raw spaces shrink by
// roughly the reduction subgroup size. Filling them honors the class
// tables' self-symmetry masks: whenever a state is reached whose class
// has non-trivial stabilizers, the companion coordinate's images under
// those stabilizers describe the same cube and get the same distance.
package prun

import (
	"github.com/toughmanshawn/rob-twophase/internal/coord"
	"github.com/toughmanshawn/rob-twophase/internal/cubie"
	"github.com/toughmanshawn/rob-twophase/internal/sym"
)

const empty = 0xFF

// Tables holds the phase-one and phase-two distance tables.
type Tables struct {
	// Phase1[cls*NTwist+twist] is the move distance to the phase-two
	// subgroup, where cls is an fslice symmetry class and twist is
	// conjugated into the representative's frame.
	Phase1 []uint8
	// Phase2[cls*NUDEdges+udedges] is the move distance to solved under
	// phase-two moves, cls being a corner permutation symmetry class.
	Phase2 []uint8

	syms  *sym.Tables
	moves *coord.MoveTables
}

// New builds both tables by breadth-first enumeration from the solved
// state. The symmetry class tables must already be built.
func New(st *sym.Tables, mt *coord.MoveTables) *Tables {
	p := &Tables{syms: st, moves: mt}
	p.buildPhase1()
	p.buildPhase2()
	return p
}

// Dist1 is the phase-one heuristic for a state with the given raw
// coordinates.
func (p *Tables) Dist1(flip, slice, twist int) int {
	cls, s := p.syms.FSliceClass(coord.FSliceCoord(flip, slice))
	tw := p.syms.ConjTwist[twist][p.syms.SubInv(s)]
	return int(p.Phase1[cls*coord.NTwist+int(tw)])
}

// Dist2 is the phase-two heuristic for a state with the given raw
// coordinates.
func (p *Tables) Dist2(cperm, udedges int) int {
	cls, s := p.syms.CPermClass(cperm)
	ud := p.syms.ConjUDEdges[udedges][p.syms.SubInv(s)]
	return int(p.Phase2[cls*coord.NUDEdges+int(ud)])
}

func (p *Tables) buildPhase1() {
	total := sym.NFSliceSym * coord.NTwist
	tab := make([]uint8, total)
	for i := range tab {
		tab[i] = empty
	}
	// Solved: fslice 0 is class 0, twist 0.
	tab[0] = 0
	filled := 1

	for depth := uint8(0); filled < total && depth < empty-1; depth++ {
		advanced := false
		for cls := 0; cls < sym.NFSliceSym; cls++ {
			rep := int(p.syms.FSliceRep[cls])
			flip, slice := coord.FSliceParts(rep)
			base := cls * coord.NTwist
			for twist := 0; twist < coord.NTwist; twist++ {
				if tab[base+twist] != depth {
					continue
				}
				advanced = true
				for _, m := range cubie.UsableMoves {
					flip2 := int(p.moves.Flip[flip][m])
					slice2 := int(p.moves.Slice[slice][m])
					twist2 := int(p.moves.Twist[twist][m])
					cls2, s2 := p.syms.FSliceClass(coord.FSliceCoord(flip2, slice2))
					tw2 := int(p.syms.ConjTwist[twist2][p.syms.SubInv(s2)])
					idx2 := cls2*coord.NTwist + tw2
					if tab[idx2] != empty {
						continue
					}
					tab[idx2] = depth + 1
					filled++
					// Stabilizers of the target class reach the same
					// cube through other twists.
					selfs := p.syms.FSliceSelfs[cls2]
					for j := 1; j < sym.NSymsSub; j++ {
						if selfs&(1<<j) == 0 {
							continue
						}
						tw3 := int(p.syms.ConjTwist[tw2][j])
						idx3 := cls2*coord.NTwist + tw3
						if tab[idx3] == empty {
							tab[idx3] = depth + 1
							filled++
						}
					}
				}
			}
		}
		if !advanced {
			break
		}
	}
	p.Phase1 = tab
}

func (p *Tables) buildPhase2() {
	total := sym.NCPermSym * coord.NUDEdges
	tab := make([]uint8, total)
	for i := range tab {
		tab[i] = empty
	}
	tab[0] = 0
	filled := 1

	for depth := uint8(0); filled < total && depth < empty-1; depth++ {
		advanced := false
		for cls := 0; cls < sym.NCPermSym; cls++ {
			rep := int(p.syms.CPermRep[cls])
			base := cls * coord.NUDEdges
			for ud := 0; ud < coord.NUDEdges; ud++ {
				if tab[base+ud] != depth {
					continue
				}
				advanced = true
				for j, m := range cubie.Phase2Moves {
					cperm2 := int(p.moves.CPerm[rep][m])
					ud2 := int(p.moves.UDEdges[ud][j])
					cls2, s2 := p.syms.CPermClass(cperm2)
					udc := int(p.syms.ConjUDEdges[ud2][p.syms.SubInv(s2)])
					idx2 := cls2*coord.NUDEdges + udc
					if tab[idx2] != empty {
						continue
					}
					tab[idx2] = depth + 1
					filled++
					selfs := p.syms.CPermSelfs[cls2]
					for k := 1; k < sym.NSymsSub; k++ {
						if selfs&(1<<k) == 0 {
							continue
						}
						ud3 := int(p.syms.ConjUDEdges[udc][k])
						idx3 := cls2*coord.NUDEdges + ud3
						if tab[idx3] == empty {
							tab[idx3] = depth + 1
							filled++
						}
					}
				}
			}
		}
		if !advanced {
			break
		}
	}
	p.Phase2 = tab
}
