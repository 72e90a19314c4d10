package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 1", chess.InitialPlacement, 1, 20},
		{"initial depth 2", chess.InitialPlacement, 2, 400},
		{"initial depth 3", chess.InitialPlacement, 3, 8902},
		{"kiwipete depth 1", kiwipeteFEN, 1, 48},
		{"kiwipete depth 2", kiwipeteFEN, 2, 2039},
		{"position 3 depth 1", position3FEN, 1, 14},
		{"position 3 depth 2", position3FEN, 2, 191},
		{"position 3 depth 3", position3FEN, 3, 2812},
		{"depth 0", chess.InitialPlacement, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.depth > 2 {
				t.Skip("skipping deep perft in short mode")
			}
			g := newGame(t, tt.fen)
			testutil.AssertEqual(t, Perft(g, tt.depth), tt.want)
		})
	}
}

func TestPerft_LeavesGameUntouched(t *testing.T) {
	g := newGame(t, kiwipeteFEN)
	before := g.Board()

	Perft(g, 2)

	testutil.AssertEqual(t, g.Board(), before)
	testutil.AssertEqual(t, len(g.Moves()), 0)
	testutil.AssertEqual(t, g.CastlingRights(chess.White), FullCastlingRights)
}

func TestDivide(t *testing.T) {
	g := newGame(t, kiwipeteFEN)

	serial := Divide(g, 2)
	testutil.AssertEqual(t, len(serial), 48)
	testutil.AssertEqual(t, serial.Total(), uint64(2039))

	for i, m := range g.AvailableMoves() {
		testutil.AssertEqual(t, serial[i].Move, m, "entry %d", i)
	}
}

func TestDivideParallel(t *testing.T) {
	cfg := testutil.QuietConfig()
	cfg.Workers = 4
	g := newGame(t, kiwipeteFEN, WithConfig(cfg))

	parallel, err := DivideParallel(g, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, parallel, Divide(g, 2))

	empty, err := DivideParallel(g, 0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(empty), 0)
}

func TestDivideParallel_WorkersDoNotLog(t *testing.T) {
	var buf bytes.Buffer
	cfg := testutil.QuietConfig()
	cfg.Workers = 4
	cfg.Verbosity = 2
	cfg.LogFile = &buf
	g := newGame(t, kiwipeteFEN, WithConfig(cfg))

	_, err := DivideParallel(g, 2)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, buf.String(), "divide depth 2: 48 root moves on 4 workers\n")
	testutil.AssertFalse(t, strings.Contains(buf.String(), "ply "))
	testutil.AssertTrue(t, g.Config().LogFile == &buf, "root config keeps its log writer")
}

// oracleMoveCount counts dragontoothmg's legal moves, leaving out rook and
// bishop promotions, which this engine does not generate.
func oracleMoveCount(fen string) int {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	n := 0
	for i := range moves {
		switch moves[i].Promote() {
		case dragontoothmg.Rook, dragontoothmg.Bishop:
			continue
		}
		n++
	}
	return n
}

func TestAvailableMoves_MatchesReferenceGenerator(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		side chess.Colour
	}{
		{"initial", chess.InitialPlacement + " w KQkq - 0 1", chess.White},
		{"kiwipete", kiwipeteFEN, chess.White},
		{"kiwipete black", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1", chess.Black},
		{"position 3", position3FEN, chess.White},
		{"position 4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", chess.White},
		{"position 5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", chess.White},
		{"promotions", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N w - - 0 1", chess.White},
		{"promotions black", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1", chess.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, tt.fen, WithSideToMove(tt.side))
			testutil.AssertEqual(t, len(g.AvailableMoves()), oracleMoveCount(tt.fen))
		})
	}
}
