package game

import "fmt"

const (
	Size         = 4            // Board side length
	NumPositions = Size * Size  // Cells on the board
	NumPieces    = 16           // Distinct pieces, one per attribute combination
	NumActions   = NumPositions * NumPieces
)

// Piece is described by four independent binary attributes. Its code packs them
// into the low four bits: hollow (bit 0), square (bit 1), short (bit 2), black (bit 3).
type Piece struct {
	Hollow bool
	Square bool
	Short  bool
	Black  bool
}

// PieceFromCode unpacks a 4-bit piece code.
func PieceFromCode(v uint8) Piece {
	return Piece{
		Hollow: (v>>0)&1 != 0,
		Square: (v>>1)&1 != 0,
		Short:  (v>>2)&1 != 0,
		Black:  (v>>3)&1 != 0,
	}
}

// Code packs the piece attributes into a 4-bit code.
func (p Piece) Code() uint8 {
	return bit(p.Hollow)<<0 | bit(p.Square)<<1 | bit(p.Short)<<2 | bit(p.Black)<<3
}

func (p Piece) String() string {
	return fmt.Sprintf("%04b", p.Code())
}

// Position is a board cell, encoded as row*4+col.
type Position struct {
	Row uint8
	Col uint8
}

func PositionFromCode(v uint8) Position {
	return Position{Row: v / Size, Col: v % Size}
}

func (p Position) Code() uint8 {
	return Size*p.Row + p.Col
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Action places the reserved piece at Position and hands Piece to the opponent.
// It is encoded as position*16+piece.
type Action struct {
	Position Position
	Piece    Piece
}

func ActionFromCode(v uint8) Action {
	return Action{
		Position: PositionFromCode(v / NumPieces),
		Piece:    PieceFromCode(v % NumPieces),
	}
}

func (a Action) Code() uint8 {
	return NumPieces*a.Position.Code() + a.Piece.Code()
}

func (a Action) String() string {
	return fmt.Sprintf("place at %s, give %s", a.Position, a.Piece)
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
