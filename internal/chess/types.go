// Package chess provides core chess types: colours, pieces, squares, boards and moves.
package chess

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// Colours lists both colours, White first.
var Colours = [2]Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// BackRank returns the rank the colour's pieces start on.
func (c Colour) BackRank() int {
	if c == White {
		return FirstRank
	}
	return LastRank
}

// PawnRank returns the rank the colour's pawns start on.
func (c Colour) PawnRank() int {
	if c == White {
		return FirstRank + 1
	}
	return LastRank - 1
}

// PromotionRank returns the rank on which the colour's pawns promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().BackRank()
}

// PieceKind identifies the type of a chess piece. The values are the
// 3-bit identity codes used by the position fingerprint; zero is reserved
// for an empty square.
type PieceKind uint8

const (
	Pawn PieceKind = iota + 1
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceKinds lists every piece kind in code order.
var PieceKinds = [...]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

// Code returns the 3-bit identity code of the kind.
func (k PieceKind) Code() uint8 {
	return uint8(k) & 0x07
}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsSlider reports whether the kind moves along rays.
func (k PieceKind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}

// Piece is a coloured piece. Two pieces are equal iff kind and colour match.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// Nibble returns the 4-bit fingerprint encoding of the piece: colour in the
// high bit, kind code in the low three.
func (p Piece) Nibble() uint8 {
	n := p.Kind.Code()
	if p.Colour == Black {
		n |= 0x08
	}
	return n
}

// Letter returns the FEN letter of the piece: uppercase for White.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// File represents a chess file (column), A to H.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	FirstRank = 1
	LastRank  = BoardSize
)

// String returns the lowercase letter of the file.
func (f File) String() string {
	return string(rune('a' + f))
}

// Valid reports whether the file lies on the board.
func (f File) Valid() bool {
	return f <= FileH
}

// Square is an immutable board coordinate.
type Square struct {
	file File
	rank uint8
}

// NewSquare builds a square, failing for coordinates off the board.
func NewSquare(file File, rank int) (Square, error) {
	if !file.Valid() {
		return Square{}, fmt.Errorf("file %d: %w", file, errors.ErrInvalidSquare)
	}
	if rank < FirstRank || rank > LastRank {
		return Square{}, fmt.Errorf("rank %d: %w", rank, errors.ErrInvalidSquare)
	}
	return Square{file: file, rank: uint8(rank)}, nil
}

// MustSquare is like NewSquare but panics on invalid input.
// Intended for literals.
func MustSquare(file File, rank int) Square {
	sq, err := NewSquare(file, rank)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	col, rank := s[0], s[1]
	if col < 'a' || col > 'h' || rank < '0' || rank > '9' {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return NewSquare(File(col-'a'), int(rank-'0'))
}

// Sq parses a square literal and panics if it is malformed.
func Sq(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// File returns the file of the square.
func (s Square) File() File {
	return s.file
}

// Rank returns the rank of the square, 1 to 8.
func (s Square) Rank() int {
	return int(s.rank)
}

// Index returns 0..63, a1 = 0, b1 = 1, ..., h8 = 63.
func (s Square) Index() int {
	return (int(s.rank)-FirstRank)*BoardSize + int(s.file)
}

// Equal reports whether both squares name the same coordinate.
func (s Square) Equal(other Square) bool {
	return s == other
}

// IsZero reports whether s is the zero value, which is not a board square.
func (s Square) IsZero() bool {
	return s.rank == 0
}

// Offset returns the square df files and dr ranks away, if it is on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f := int(s.file) + df
	r := int(s.rank) + dr
	if f < int(FileA) || f > int(FileH) || r < FirstRank || r > LastRank {
		return Square{}, false
	}
	return Square{file: File(f), rank: uint8(r)}, true
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (int(s.file)+int(s.rank)-FirstRank)%2 == 1
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	if s.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%s%d", s.file, s.rank)
}

// scanOrder holds every square in board-scan order: files a to h, and
// ranks 1 to 8 within each file.
var scanOrder = func() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for f := FileA; f <= FileH; f++ {
		for r := FirstRank; r <= LastRank; r++ {
			squares = append(squares, Square{file: f, rank: uint8(r)})
		}
	}
	return squares
}()

// AllSquares returns every square in board-scan order.
func AllSquares() []Square {
	return slices.Clone(scanOrder)
}
