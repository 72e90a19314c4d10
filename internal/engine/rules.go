package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// IsDeadPosition returns true if the census of the board, kings ignored,
// is one of the positions in which neither side can ever mate:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B with both bishops on squares of the same colour
func IsDeadPosition(board *chess.Board) bool {
	census := board.Census().WithoutKings()

	switch census.Total() {
	case 0:
		return true
	case 1:
		return census.Kind(chess.Bishop) == 1 || census.Kind(chess.Knight) == 1
	case 2:
		if census[chess.W(chess.Bishop)] != 1 || census[chess.B(chess.Bishop)] != 1 {
			return false
		}
		return sameColouredBishops(board)
	default:
		return false
	}
}

// sameColouredBishops reports whether every bishop on the board stands on
// the same square colour.
func sameColouredBishops(board *chess.Board) bool {
	seen := 0
	var light bool
	for _, sq := range board.Occupied() {
		p, _ := board.Get(sq)
		if p.Kind != chess.Bishop {
			continue
		}
		if seen > 0 && sq.IsLight() != light {
			return false
		}
		light = sq.IsLight()
		seen++
	}
	return seen > 0
}

// updateOutcome runs the outcome rules after move has been applied,
// recorded, and the turn passed to state.SideToMove. mover is the piece
// that moved; repetitions is the occurrence count of the new position.
// The rules run in order: fifty-move counter, repetition, dead position,
// then the no-legal-moves test, whose checkmate verdict takes precedence
// over a draw found earlier on the same ply.
func updateOutcome(state *State, rules *config.RulesConfig, board *chess.Board, historic *Historic,
	move chess.Move, mover chess.Piece, repetitions int) {

	if move.IsCapture() || mover.Kind == chess.Pawn {
		state.HalfMoveClock = 0
	} else {
		state.HalfMoveClock++
	}
	if state.HalfMoveClock >= rules.HalfMoveLimit {
		state.end(Draw, FiftyMoveRule)
	}

	if !state.Outcome.IsTerminal() && repetitions >= rules.RepetitionLimit {
		state.end(Draw, ThreefoldRepetition)
	}

	if !state.Outcome.IsTerminal() && IsDeadPosition(board) {
		state.end(Draw, DeadPosition)
	}

	side := state.SideToMove
	if HasLegalMoves(board, side, historic) {
		return
	}
	if IsInCheck(board, side) {
		// Checkmate on the same ply outranks a draw claimed above.
		state.end(WinFor(side.Opposite()), Checkmate)
		return
	}
	if !state.Outcome.IsTerminal() {
		state.end(Draw, Stalemate)
	}
}
