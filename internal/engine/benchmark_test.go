package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var benchPlacements = map[string]string{
	"Initial":   chess.InitialPlacement,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R",
}

func benchGame(b *testing.B, placement string) *Game {
	b.Helper()
	board, err := chess.ParsePlacement(placement)
	if err != nil {
		b.Fatal(err)
	}
	g, err := NewGameFromBoard(board, WithConfig(testutil.QuietConfig()))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkAvailableMoves(b *testing.B) {
	for name, placement := range benchPlacements {
		b.Run(name, func(b *testing.B) {
			g := benchGame(b, placement)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.AvailableMoves()
			}
		})
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	for name, placement := range benchPlacements {
		b.Run(name, func(b *testing.B) {
			board := benchGame(b, placement).Board()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				IsInCheck(board, chess.White)
			}
		})
	}
}

func BenchmarkApplyMove(b *testing.B) {
	cases := []struct {
		name      string
		placement string
		move      chess.Move
	}{
		{"PawnMove", chess.InitialPlacement, testutil.Mv("e2", "e4", chess.PawnDoubleStep)},
		{"PieceMove", chess.InitialPlacement, testutil.Mv("g1", "f3", chess.Standard)},
		{"Castling", benchPlacements["Castling"], testutil.Mv("e1", "g1", chess.ShortCastle)},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			g := benchGame(b, tc.placement)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				clone := g.Clone()
				if err := clone.ApplyMove(tc.move); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFingerprint(b *testing.B) {
	board := benchGame(b, benchPlacements["Complex"]).Board()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Fingerprint()
	}
}

func BenchmarkPerft(b *testing.B) {
	g := benchGame(b, chess.InitialPlacement)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Perft(g, 3)
	}
}
