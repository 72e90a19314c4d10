package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveKind is the variant tag of a move.
type MoveKind int

const (
	NoMove MoveKind = iota // Sentinel seeding an empty historic
	Standard
	PawnDoubleStep
	Capture
	EnPassant
	ShortCastle
	LongCastle
	PromoteToQueen
	PromoteToKnight
	PromoteToQueenCapture
	PromoteToKnightCapture
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	names := []string{
		"NoMove", "Standard", "PawnDoubleStep", "Capture", "EnPassant",
		"ShortCastle", "LongCastle", "PromoteToQueen", "PromoteToKnight",
		"PromoteToQueenCapture", "PromoteToKnightCapture",
	}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move is an origin/destination pair tagged with its variant. Moves compare
// equal by origin, destination and kind.
type Move struct {
	From Square
	To   Square
	Kind MoveKind
}

// NewMove creates a move.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move{From: from, To: to, Kind: kind}
}

// IsNull returns true for the NoMove sentinel.
func (m Move) IsNull() bool {
	return m.Kind == NoMove
}

// IsCapture returns true if the move removes an opposing piece.
func (m Move) IsCapture() bool {
	switch m.Kind {
	case Capture, EnPassant, PromoteToQueenCapture, PromoteToKnightCapture:
		return true
	default:
		return false
	}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	switch m.Kind {
	case PromoteToQueen, PromoteToKnight, PromoteToQueenCapture, PromoteToKnightCapture:
		return true
	default:
		return false
	}
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == ShortCastle || m.Kind == LongCastle
}

// IsPawnOnly returns true for variants only a pawn can play. Standard and
// Capture may also be pawn moves; that depends on the board.
func (m Move) IsPawnOnly() bool {
	return m.Kind == PawnDoubleStep || m.Kind == EnPassant || m.IsPromotion()
}

// PromotedKind returns the kind a promotion produces, or 0.
func (m Move) PromotedKind() PieceKind {
	switch m.Kind {
	case PromoteToQueen, PromoteToQueenCapture:
		return Queen
	case PromoteToKnight, PromoteToKnightCapture:
		return Knight
	default:
		return 0
	}
}

// CastleRookSquares returns the rook's origin and destination for a castling move.
func (m Move) CastleRookSquares() (from, to Square) {
	rank := m.From.rank
	if m.Kind == ShortCastle {
		return Square{FileH, rank}, Square{FileF, rank}
	}
	return Square{FileA, rank}, Square{FileD, rank}
}

// EnPassantVictim returns the square of the pawn an en passant capture removes:
// beside the origin, on the destination's file.
func (m Move) EnPassantVictim() Square {
	return Square{m.To.file, m.From.rank}
}

// Apply mutates the board according to the move's variant. The piece to
// move must be on m.From.
func (m Move) Apply(b *Board) {
	piece, ok := b.Get(m.From)
	if !ok {
		return
	}

	switch m.Kind {
	case NoMove:
		return

	case ShortCastle, LongCastle:
		rookFrom, rookTo := m.CastleRookSquares()
		rook, _ := b.Get(rookFrom)
		b.Remove(m.From)
		b.Remove(rookFrom)
		b.Set(m.To, piece)
		b.Set(rookTo, rook)

	case EnPassant:
		b.Remove(m.EnPassantVictim())
		b.Remove(m.From)
		b.Set(m.To, piece)

	case PromoteToQueen, PromoteToKnight, PromoteToQueenCapture, PromoteToKnightCapture:
		b.Remove(m.From)
		b.Set(m.To, Piece{Kind: m.PromotedKind(), Colour: piece.Colour})

	default:
		// Standard, PawnDoubleStep and Capture all relocate the piece,
		// overwriting any occupant of the destination.
		b.Remove(m.From)
		b.Set(m.To, piece)
	}
}

// String returns the move in coordinate form (e.g. "e2e4", "e7e8n") for
// logs and diagnostics.
func (m Move) String() string {
	if m.IsNull() {
		return "--"
	}
	s := m.From.String() + m.To.String()
	if k := m.PromotedKind(); k != 0 {
		s += string(rune(k.Letter() + 'a' - 'A'))
	}
	return s
}

// ParseCoordinates splits a coordinate move such as "e2e4" or "e7e8n" into
// its squares and optional promotion kind (0 when absent). The move kind is
// not known until the text is matched against a position.
func ParseCoordinates(text string) (from, to Square, promotion PieceKind, err error) {
	if len(text) != 4 && len(text) != 5 {
		return Square{}, Square{}, 0, fmt.Errorf("move %q: %w", text, errors.ErrIllegalMove)
	}
	if from, err = ParseSquare(text[0:2]); err != nil {
		return Square{}, Square{}, 0, err
	}
	if to, err = ParseSquare(text[2:4]); err != nil {
		return Square{}, Square{}, 0, err
	}
	if len(text) == 5 {
		promotion = KindFromLetter(text[4])
		if promotion == 0 || promotion == Pawn || promotion == King {
			return Square{}, Square{}, 0, fmt.Errorf("move %q: bad promotion: %w", text, errors.ErrIllegalMove)
		}
	}
	return from, to, promotion, nil
}
