package chess

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board is a sparse mapping from occupied squares to pieces. An absent key
// is an empty square.
type Board struct {
	squares map[Square]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{squares: make(map[Square]Piece, 32)}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	clear(b.squares)

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := FileA; f <= FileH; f++ {
		b.squares[Square{f, 1}] = W(backRank[f])
		b.squares[Square{f, 2}] = W(Pawn)
		b.squares[Square{f, 7}] = B(Pawn)
		b.squares[Square{f, 8}] = B(backRank[f])
	}
}

// Get returns the piece on sq and whether the square is occupied.
func (b *Board) Get(sq Square) (Piece, bool) {
	p, ok := b.squares[sq]
	return p, ok
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	_, ok := b.squares[sq]
	return !ok
}

// Set places a piece on sq, replacing whatever was there.
func (b *Board) Set(sq Square, p Piece) {
	b.squares[sq] = p
}

// Remove empties sq.
func (b *Board) Remove(sq Square) {
	delete(b.squares, sq)
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.squares)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	return &Board{squares: maps.Clone(b.squares)}
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	return maps.Equal(b.squares, other.squares)
}

// Occupied returns the occupied squares in board-scan order.
func (b *Board) Occupied() []Square {
	squares := make([]Square, 0, len(b.squares))
	for _, sq := range scanOrder {
		if _, ok := b.squares[sq]; ok {
			squares = append(squares, sq)
		}
	}
	return squares
}

// Pieces returns a copy of the square to piece mapping.
func (b *Board) Pieces() map[Square]Piece {
	return maps.Clone(b.squares)
}

// CountKings returns how many kings of the given colour are on the board.
func (b *Board) CountKings(colour Colour) int {
	n := 0
	for _, p := range b.squares {
		if p.Kind == King && p.Colour == colour {
			n++
		}
	}
	return n
}

// King returns the square of the given colour's king. A board without
// exactly one such king breaks an engine invariant, so King panics.
func (b *Board) King(colour Colour) Square {
	var (
		found Square
		n     int
	)
	for sq, p := range b.squares {
		if p.Kind == King && p.Colour == colour {
			found = sq
			n++
		}
	}
	if n != 1 {
		panic(fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrMissingKing))
	}
	return found
}

// ValidateKings returns ErrMissingKing unless each colour has exactly one king.
func (b *Board) ValidateKings() error {
	for _, c := range Colours {
		if n := b.CountKings(c); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", c, n, errors.ErrMissingKing)
		}
	}
	return nil
}

// String renders the board as an 8x8 diagram, rank 8 at the top, using FEN
// letters and '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for r := LastRank; r >= FirstRank; r-- {
		fmt.Fprintf(&sb, "%d ", r)
		for f := FileA; f <= FileH; f++ {
			if p, ok := b.squares[Square{f, uint8(r)}]; ok {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
			if f != FileH {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
