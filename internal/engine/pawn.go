package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves composes the four pawn rules for the pawn on origin.
func pawnMoves(origin chess.Square, pawn chess.Piece, board *chess.Board, historic *Historic) []chess.Move {
	var moves []chess.Move
	moves = append(moves, pawnForward(origin, pawn.Colour, board)...)
	moves = append(moves, pawnDoubleStep(origin, pawn.Colour, board)...)
	moves = append(moves, pawnCaptures(origin, pawn.Colour, board)...)
	moves = append(moves, pawnEnPassant(origin, pawn.Colour, board, historic)...)
	return moves
}

// pawnForward is the single step onto a vacant square, which becomes a
// promotion pair on the last rank.
func pawnForward(origin chess.Square, colour chess.Colour, board *chess.Board) []chess.Move {
	to, ok := origin.Offset(0, colour.Forward())
	if !ok || !board.IsEmpty(to) {
		return nil
	}
	if to.Rank() == colour.PromotionRank() {
		return []chess.Move{
			chess.NewMove(origin, to, chess.PromoteToQueen),
			chess.NewMove(origin, to, chess.PromoteToKnight),
		}
	}
	return []chess.Move{chess.NewMove(origin, to, chess.Standard)}
}

// pawnDoubleStep is the two-square advance from the home rank, requiring
// both squares ahead to be vacant.
func pawnDoubleStep(origin chess.Square, colour chess.Colour, board *chess.Board) []chess.Move {
	if origin.Rank() != colour.PawnRank() {
		return nil
	}
	dir := colour.Forward()
	over, ok1 := origin.Offset(0, dir)
	to, ok2 := origin.Offset(0, 2*dir)
	if !ok1 || !ok2 || !board.IsEmpty(over) || !board.IsEmpty(to) {
		return nil
	}
	return []chess.Move{chess.NewMove(origin, to, chess.PawnDoubleStep)}
}

// pawnCaptures takes an opposing piece on either forward diagonal,
// promoting on the last rank.
func pawnCaptures(origin chess.Square, colour chess.Colour, board *chess.Board) []chess.Move {
	var moves []chess.Move
	for _, to := range PawnAttacks(origin, colour) {
		target, occupied := board.Get(to)
		if !occupied || target.Colour == colour {
			continue
		}
		if to.Rank() == colour.PromotionRank() {
			moves = append(moves,
				chess.NewMove(origin, to, chess.PromoteToQueenCapture),
				chess.NewMove(origin, to, chess.PromoteToKnightCapture),
			)
			continue
		}
		moves = append(moves, chess.NewMove(origin, to, chess.Capture))
	}
	return moves
}

// pawnEnPassant is available only when the opponent's last move was a double
// step landing beside this pawn. The capture lands diagonally ahead, behind
// the opposing pawn.
func pawnEnPassant(origin chess.Square, colour chess.Colour, board *chess.Board, historic *Historic) []chess.Move {
	if historic == nil {
		return nil
	}
	last := historic.Last()
	if last.Kind != chess.PawnDoubleStep || last.To.Rank() != origin.Rank() {
		return nil
	}
	df := int(last.To.File()) - int(origin.File())
	if df != 1 && df != -1 {
		return nil
	}
	victim, ok := board.Get(last.To)
	if !ok || victim.Kind != chess.Pawn || victim.Colour == colour {
		return nil
	}
	to, ok := origin.Offset(df, colour.Forward())
	if !ok || !board.IsEmpty(to) {
		return nil
	}
	return []chess.Move{chess.NewMove(origin, to, chess.EnPassant)}
}

// PawnAttacks returns the squares a pawn of the given colour on origin
// attacks: its forward diagonals, occupied or not.
func PawnAttacks(origin chess.Square, colour chess.Colour) []chess.Square {
	var squares []chess.Square
	for _, df := range [2]int{-1, 1} {
		if sq, ok := origin.Offset(df, colour.Forward()); ok {
			squares = append(squares, sq)
		}
	}
	return squares
}
