package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestCastlingMoves(t *testing.T) {
	short := mv("e1", "g1", chess.ShortCastle)
	long := mv("e1", "c1", chess.LongCastle)

	tests := []struct {
		name      string
		placement string
		rights    CastlingRights
		want      []chess.Move
	}{
		{"both sides", "r3k2r/8/8/8/8/8/8/R3K2R", FullCastlingRights, []chess.Move{short, long}},
		{"short right lost", "r3k2r/8/8/8/8/8/8/R3K2R", CastlingRights{Long: true}, []chess.Move{long}},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R", CastlingRights{}, nil},
		{"transit attacked", "r3k2r/8/8/8/8/8/5r2/R3K2R", FullCastlingRights, []chess.Move{long}},
		{"king in check", "r3k2r/8/8/8/4q3/8/8/R3K2R", FullCastlingRights, nil},
		{"rook square attacked is fine", "1r2k2r/8/8/8/8/8/8/R3K2R", FullCastlingRights, []chess.Move{short, long}},
		{"path blocked", "r3k2r/8/8/8/8/8/8/RN2K1NR", FullCastlingRights, nil},
		{"rook missing", "r3k2r/8/8/8/8/8/8/4K2R", FullCastlingRights, []chess.Move{short}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.placement)
			got := CastlingMoves(chess.White, board, tt.rights)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestDeriveCastlingRights(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		colour    chess.Colour
		want      CastlingRights
	}{
		{"initial white", chess.InitialPlacement, chess.White, FullCastlingRights},
		{"initial black", chess.InitialPlacement, chess.Black, FullCastlingRights},
		{"king displaced", "r3k2r/8/8/8/8/8/8/R4K1R", chess.White, CastlingRights{}},
		{"only h rook", "r3k2r/8/8/8/8/8/8/4K2R", chess.White, CastlingRights{Short: true}},
		{"only a rook", "r3k3/8/8/8/8/8/8/4K3", chess.Black, CastlingRights{Long: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustBoard(t, tt.placement)
			testutil.AssertEqual(t, DeriveCastlingRights(board, tt.colour), tt.want)
		})
	}
}

func TestCastling_Apply(t *testing.T) {
	g := newGame(t, "r3k2r/8/8/8/8/8/8/R3K2R")
	playMoves(t, g, mv("e1", "g1", chess.ShortCastle))

	king, _ := g.PieceAt(chess.Sq("g1"))
	rook, _ := g.PieceAt(chess.Sq("f1"))
	testutil.AssertEqual(t, king, chess.W(chess.King))
	testutil.AssertEqual(t, rook, chess.W(chess.Rook))
	testutil.AssertTrue(t, g.Board().IsEmpty(chess.Sq("h1")))
	testutil.AssertEqual(t, g.CastlingRights(chess.White), CastlingRights{})
	testutil.AssertEqual(t, g.CastlingRights(chess.Black), FullCastlingRights)
	testutil.AssertEqual(t, g.HalfMoveClock(), uint(1))

	playMoves(t, g, mv("e8", "c8", chess.LongCastle))
	king, _ = g.PieceAt(chess.Sq("c8"))
	rook, _ = g.PieceAt(chess.Sq("d8"))
	testutil.AssertEqual(t, king, chess.B(chess.King))
	testutil.AssertEqual(t, rook, chess.B(chess.Rook))
}

func TestCastling_RookReturnDoesNotRestoreRight(t *testing.T) {
	g := newGame(t, "r3k2r/8/8/8/8/8/8/R3K2R")
	playMoves(t, g,
		mv("h1", "h2", chess.Standard),
		mv("h8", "h7", chess.Standard),
		mv("h2", "h1", chess.Standard),
		mv("h7", "h8", chess.Standard),
	)

	testutil.AssertEqual(t, g.CastlingRights(chess.White), CastlingRights{Long: true})
	testutil.AssertEqual(t, g.SquareAvailableMoves(chess.Sq("e1"))[5:], []chess.Move{
		mv("e1", "c1", chess.LongCastle),
	})
}

func TestCastling_CapturedRookRevokesRight(t *testing.T) {
	g := newGame(t, "r3k2r/8/8/8/8/8/8/R3K2R")
	playMoves(t, g, mv("h1", "h8", chess.Capture))

	testutil.AssertEqual(t, g.CastlingRights(chess.White), CastlingRights{Long: true})
	testutil.AssertEqual(t, g.CastlingRights(chess.Black), CastlingRights{Long: true})
}
