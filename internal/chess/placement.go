package chess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialPlacement is the piece-placement field of the standard starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// KindFromLetter converts a FEN letter (either case) to a piece kind, or 0.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return 0
	}
}

// ParsePlacement builds a board from the piece-placement field of a FEN
// string. Only that field is read: side to move, castling and clocks are
// game state, not board state. Trailing FEN fields are ignored.
func ParsePlacement(placement string) (*Board, error) {
	fields := strings.Fields(placement)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty placement: %w", errors.ErrInvalidPlacement)
	}

	board := NewBoard()
	rank := LastRank
	file := int(FileA)

	for _, c := range fields[0] {
		switch {
		case c == '/':
			if file != BoardSize {
				return nil, fmt.Errorf("rank %d has %d files: %w", rank, file, errors.ErrInvalidPlacement)
			}
			rank--
			file = int(FileA)
		case c >= '1' && c <= '8':
			file += int(c - '0')
		case c > unicode.MaxASCII:
			return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidPlacement)
		default:
			kind := KindFromLetter(byte(c))
			if kind == 0 {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidPlacement)
			}
			if file > int(FileH) || rank < FirstRank {
				return nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidPlacement)
			}

			colour := White
			if unicode.IsLower(c) {
				colour = Black
			}
			board.Set(Square{File(file), uint8(rank)}, Piece{Kind: kind, Colour: colour})
			file++
		}
		if file > BoardSize {
			return nil, fmt.Errorf("rank %d overflows: %w", rank, errors.ErrInvalidPlacement)
		}
	}

	if rank != FirstRank || file != BoardSize {
		return nil, fmt.Errorf("placement does not cover 8 ranks: %w", errors.ErrInvalidPlacement)
	}
	return board, nil
}

// MustParsePlacement is like ParsePlacement but panics on error.
func MustParsePlacement(placement string) *Board {
	b, err := ParsePlacement(placement)
	if err != nil {
		panic(err)
	}
	return b
}

// Placement writes the board as a FEN piece-placement field.
func (b *Board) Placement() string {
	var sb strings.Builder
	for r := LastRank; r >= FirstRank; r-- {
		emptyCount := 0
		for f := FileA; f <= FileH; f++ {
			p, ok := b.squares[Square{f, uint8(r)}]
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if r > FirstRank {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
