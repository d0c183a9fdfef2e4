package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	t.Run("pieces", func(t *testing.T) {
		for v := 0; v < NumPieces; v++ {
			require.Equal(t, uint8(v), PieceFromCode(uint8(v)).Code())
		}
	})

	t.Run("positions", func(t *testing.T) {
		for v := 0; v < NumPositions; v++ {
			p := PositionFromCode(uint8(v))
			require.Equal(t, uint8(v), p.Code())
			require.Equal(t, PositionFromCode(p.Code()), p)
		}
	})

	t.Run("actions", func(t *testing.T) {
		for v := 0; v < NumActions; v++ {
			a := ActionFromCode(uint8(v))
			require.Equal(t, uint8(v), a.Code())
			require.Equal(t, ActionFromCode(a.Code()), a)
		}
	})
}

func TestCodecBitLayout(t *testing.T) {
	require.Equal(t, Piece{Hollow: true}, PieceFromCode(0b0001))
	require.Equal(t, Piece{Square: true}, PieceFromCode(0b0010))
	require.Equal(t, Piece{Short: true}, PieceFromCode(0b0100))
	require.Equal(t, Piece{Black: true}, PieceFromCode(0b1000))

	require.Equal(t, Position{Row: 2, Col: 3}, PositionFromCode(11))

	a := Action{Position: Position{Row: 1, Col: 2}, Piece: PieceFromCode(5)}
	require.Equal(t, uint8(6*16+5), a.Code())
}
