package game

import "strings"

// cell holds a piece code plus one, so that the zero value is an empty cell.
type cell uint8

const empty cell = 0

// State is the board plus the reserved piece awaiting placement. It is a plain
// comparable value: two states with the same board and reserve are equal no
// matter how they were reached, which lets them key a map directly.
type State struct {
	board   [Size][Size]cell
	reserve Piece
}

// NewState returns an empty board with the last piece in reserve.
func NewState() State {
	return State{reserve: PieceFromCode(NumPieces - 1)}
}

// At returns the piece at the given position, if any.
func (s State) At(p Position) (Piece, bool) {
	c := s.board[p.Row][p.Col]
	if c == empty {
		return Piece{}, false
	}
	return PieceFromCode(uint8(c - 1)), true
}

// Reserve returns the piece the player to move must place.
func (s State) Reserve() Piece {
	return s.reserve
}

// Depth counts the occupied cells.
func (s State) Depth() int {
	depth := 0
	for _, row := range s.board {
		for _, c := range row {
			if c != empty {
				depth++
			}
		}
	}
	return depth
}

func (s *State) put(p Position, piece Piece) {
	s.board[p.Row][p.Col] = cell(piece.Code() + 1)
}

func (s State) String() string {
	var b strings.Builder
	for r := range s.board {
		for c := range s.board[r] {
			if c > 0 {
				b.WriteByte(' ')
			}
			if piece, ok := s.At(Position{Row: uint8(r), Col: uint8(c)}); ok {
				b.WriteString(piece.String())
			} else {
				b.WriteString("....")
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("reserve: ")
	b.WriteString(s.reserve.String())
	return b.String()
}
