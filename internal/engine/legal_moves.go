package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PseudoMovesFrom returns the pseudo-legal moves of the piece on origin,
// pawn rules included. Castling is not generated here.
func PseudoMovesFrom(origin chess.Square, board *chess.Board, historic *Historic) []chess.Move {
	piece, ok := board.Get(origin)
	if !ok {
		return nil
	}
	if piece.Kind == chess.Pawn {
		return pawnMoves(origin, piece, board, historic)
	}
	return pieceMoves(origin, board)
}

// IsMoveLegal applies move to a copy of the board and returns true if the
// mover's king is not attacked afterwards. The live board is never touched.
func IsMoveLegal(move chess.Move, board *chess.Board) bool {
	piece, ok := board.Get(move.From)
	if !ok {
		return false
	}

	testBoard := board.Copy()
	move.Apply(testBoard)

	king := testBoard.King(piece.Colour)
	return !IsAttacked(piece.Colour, king, testBoard)
}

// LegalMovesFrom returns the pseudo-legal moves from origin that pass the
// king-safety check. Castling is added separately by the game.
func LegalMovesFrom(origin chess.Square, board *chess.Board, historic *Historic) []chess.Move {
	pseudo := PseudoMovesFrom(origin, board, historic)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if IsMoveLegal(m, board) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move,
// castling aside (castling is only possible when a king move also is).
func HasLegalMoves(board *chess.Board, colour chess.Colour, historic *Historic) bool {
	for _, origin := range board.Occupied() {
		piece, _ := board.Get(origin)
		if piece.Colour != colour {
			continue
		}
		for _, m := range PseudoMovesFrom(origin, board, historic) {
			if IsMoveLegal(m, board) {
				return true
			}
		}
	}
	return false
}
