package twophase

import (
	"strings"

	"github.com/toughmanshawn/rob-twophase/internal/cubie"
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceB Face = "B" // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single face turn.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'U', 'u':
		face = FaceU
	case 'R', 'r':
		face = FaceR
	case 'F', 'f':
		face = FaceF
	case 'D', 'd':
		face = FaceD
	case 'L', 'l':
		face = FaceL
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidNotation
	}

	turn := CW
	if len(s) == 2 {
		switch s[1] {
		case '\'':
			turn = CCW
		case '2':
			turn = Double
		default:
			return Move{}, ErrInvalidNotation
		}
	}
	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated move sequence.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves joins a move sequence into notation.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

var faceIndex = map[Face]int{
	FaceU: 0, FaceR: 1, FaceF: 2, FaceD: 3, FaceL: 4, FaceB: 5,
}

// index converts to the internal move numbering.
func (m Move) index() cubie.Move {
	n := 0
	switch m.Turn {
	case Double:
		n = 1
	case CCW:
		n = 2
	}
	return cubie.Move(3*faceIndex[m.Face] + n)
}

func moveFromIndex(m cubie.Move) Move {
	faces := [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}
	turns := [3]Turn{CW, Double, CCW}
	return Move{Face: faces[m.Face()], Turn: turns[int(m)%3]}
}
