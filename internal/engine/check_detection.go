package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsAttacked returns true if any piece of the colour opposite to colour
// could move to square: its pseudo destinations contain the square, or, for
// pawns, its capture geometry does. Only pseudo-legal generation is used
// here; calling the legality filter would recurse back into IsAttacked.
func IsAttacked(colour chess.Colour, square chess.Square, board *chess.Board) bool {
	attacker := colour.Opposite()
	for _, origin := range board.Occupied() {
		piece, _ := board.Get(origin)
		if piece.Colour != attacker {
			continue
		}

		var reach []chess.Square
		if piece.Kind == chess.Pawn {
			reach = PawnAttacks(origin, attacker)
		} else {
			reach = PseudoDestinations(origin, board)
		}
		for _, sq := range reach {
			if sq == square {
				return true
			}
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsAttacked(colour, board.King(colour), board)
}
