package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CastlingRights tracks which castling sides a colour may still use. Rights
// only ever go from true to false.
type CastlingRights struct {
	Short bool
	Long  bool
}

// FullCastlingRights is the state at the start of a standard game.
var FullCastlingRights = CastlingRights{Short: true, Long: true}

// Home squares of the castling pieces.
func kingHome(colour chess.Colour) chess.Square {
	return chess.MustSquare(chess.FileE, colour.BackRank())
}

func shortRookHome(colour chess.Colour) chess.Square {
	return chess.MustSquare(chess.FileH, colour.BackRank())
}

func longRookHome(colour chess.Colour) chess.Square {
	return chess.MustSquare(chess.FileA, colour.BackRank())
}

// Any reports whether either side is still available.
func (r CastlingRights) Any() bool {
	return r.Short || r.Long
}

// String returns the FEN-style letters of the remaining rights.
func (r CastlingRights) String() string {
	s := ""
	if r.Short {
		s += "K"
	}
	if r.Long {
		s += "Q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Update revokes rights in response to a move that has just been played.
// moved is the piece that made the move. A king move drops both sides; any
// move from a rook home square drops that side, so a different piece later
// standing there cannot bring the right back; any move onto a rook home
// square (a capture there) drops that side as well.
func (r *CastlingRights) Update(colour chess.Colour, move chess.Move, moved chess.Piece) {
	if moved.Colour == colour && moved.Kind == chess.King {
		r.Short = false
		r.Long = false
	}
	for _, sq := range [2]chess.Square{move.From, move.To} {
		switch sq {
		case shortRookHome(colour):
			r.Short = false
		case longRookHome(colour):
			r.Long = false
		}
	}
}

// DeriveCastlingRights returns the rights a position implies when its history
// is unknown: a side is available iff king and rook stand on their home squares.
func DeriveCastlingRights(board *chess.Board, colour chess.Colour) CastlingRights {
	king := chess.Piece{Kind: chess.King, Colour: colour}
	rook := chess.Piece{Kind: chess.Rook, Colour: colour}
	if p, ok := board.Get(kingHome(colour)); !ok || p != king {
		return CastlingRights{}
	}
	var r CastlingRights
	if p, ok := board.Get(shortRookHome(colour)); ok && p == rook {
		r.Short = true
	}
	if p, ok := board.Get(longRookHome(colour)); ok && p == rook {
		r.Long = true
	}
	return r
}

// castleSide describes the squares involved in one castling side.
type castleSide struct {
	kind    chess.MoveKind
	rook    chess.File
	kingTo  chess.File
	between []chess.File // must be empty
	transit []chess.File // must not be attacked, destination included
}

var castleSides = [2]castleSide{
	{
		kind:    chess.ShortCastle,
		rook:    chess.FileH,
		kingTo:  chess.FileG,
		between: []chess.File{chess.FileF, chess.FileG},
		transit: []chess.File{chess.FileF, chess.FileG},
	},
	{
		kind:    chess.LongCastle,
		rook:    chess.FileA,
		kingTo:  chess.FileC,
		between: []chess.File{chess.FileB, chess.FileC, chess.FileD},
		transit: []chess.File{chess.FileD, chess.FileC},
	},
}

// allowed returns the tracked right for the side.
func (r CastlingRights) allowed(kind chess.MoveKind) bool {
	if kind == chess.ShortCastle {
		return r.Short
	}
	return r.Long
}

// CastlingMoves returns the castling moves available to colour. Each side
// needs the right still held, king and rook on their home squares, the
// squares between them empty, and neither the king's square nor any square
// it passes through or lands on attacked. The rook's destination may be
// attacked.
func CastlingMoves(colour chess.Colour, board *chess.Board, rights CastlingRights) []chess.Move {
	if !rights.Any() {
		return nil
	}
	rank := colour.BackRank()
	home := kingHome(colour)
	if p, ok := board.Get(home); !ok || p != (chess.Piece{Kind: chess.King, Colour: colour}) {
		return nil
	}
	if IsAttacked(colour, home, board) {
		return nil
	}

	var moves []chess.Move
	for _, side := range castleSides {
		if !rights.allowed(side.kind) {
			continue
		}
		rookSq := chess.MustSquare(side.rook, rank)
		if p, ok := board.Get(rookSq); !ok || p != (chess.Piece{Kind: chess.Rook, Colour: colour}) {
			continue
		}
		if !castlePathClear(board, side, rank) {
			continue
		}
		if castlePathAttacked(board, side, colour) {
			continue
		}
		moves = append(moves, chess.NewMove(home, chess.MustSquare(side.kingTo, rank), side.kind))
	}
	return moves
}

// castlePathClear checks that every square between king and rook is empty.
func castlePathClear(board *chess.Board, side castleSide, rank int) bool {
	for _, f := range side.between {
		if !board.IsEmpty(chess.MustSquare(f, rank)) {
			return false
		}
	}
	return true
}

// castlePathAttacked checks the king's transit squares.
func castlePathAttacked(board *chess.Board, side castleSide, colour chess.Colour) bool {
	for _, f := range side.transit {
		if IsAttacked(colour, chess.MustSquare(f, colour.BackRank()), board) {
			return true
		}
	}
	return false
}
