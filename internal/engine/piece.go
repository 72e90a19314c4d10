// Package engine provides chess move generation, legality checking and game rules.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Ray and offset tables.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs    = append(append([][2]int{}, diagonalDirs...), straightDirs...)

	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// PseudoDestinations returns the squares the piece on origin could move to
// by its movement geometry and board occupancy alone, ignoring whether the
// mover's king would be left attacked. Pawns are not covered here: their
// moves depend on direction, rank and history (see pawn.go). An empty
// origin yields nil.
func PseudoDestinations(origin chess.Square, board *chess.Board) []chess.Square {
	piece, ok := board.Get(origin)
	if !ok {
		return nil
	}

	switch piece.Kind {
	case chess.Bishop:
		return slide(board, origin, piece.Colour, diagonalDirs)
	case chess.Rook:
		return slide(board, origin, piece.Colour, straightDirs)
	case chess.Queen:
		return slide(board, origin, piece.Colour, queenDirs)
	case chess.Knight:
		return leap(board, origin, piece.Colour, knightOffsets)
	case chess.King:
		// Attack filtering for the king happens in the legality check.
		// Consulting IsAttacked here would recurse through the opposing king.
		return leap(board, origin, piece.Colour, kingOffsets)
	default:
		return nil
	}
}

// slide walks each ray from origin. Empty squares are reachable and the ray
// continues; an opposing piece is reachable and ends the ray; an own piece
// ends the ray without being reachable.
func slide(board *chess.Board, origin chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var targets []chess.Square
	for _, dir := range dirs {
		sq, ok := origin.Offset(dir[0], dir[1])
		for ok {
			target, occupied := board.Get(sq)
			if occupied {
				if target.Colour != colour {
					targets = append(targets, sq)
				}
				break // Blocked
			}
			targets = append(targets, sq)
			sq, ok = sq.Offset(dir[0], dir[1])
		}
	}
	return targets
}

// leap enumerates a fixed offset set, keeping on-board squares not held by
// a piece of the mover's colour.
func leap(board *chess.Board, origin chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var targets []chess.Square
	for _, offset := range offsets {
		sq, ok := origin.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		if target, occupied := board.Get(sq); occupied && target.Colour == colour {
			continue
		}
		targets = append(targets, sq)
	}
	return targets
}

// pieceMoves turns the pseudo destinations of a non-pawn piece into moves,
// tagging captures.
func pieceMoves(origin chess.Square, board *chess.Board) []chess.Move {
	dests := PseudoDestinations(origin, board)
	moves := make([]chess.Move, 0, len(dests))
	for _, to := range dests {
		kind := chess.Standard
		if !board.IsEmpty(to) {
			kind = chess.Capture
		}
		moves = append(moves, chess.NewMove(origin, to, kind))
	}
	return moves
}
