package testutil

import (
	"io"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// MustBoard parses a FEN piece placement and fails the test on error.
func MustBoard(t *testing.T, placement string) *chess.Board {
	t.Helper()
	board, err := chess.ParsePlacement(placement)
	if err != nil {
		t.Fatalf("failed to parse placement %q: %v", placement, err)
	}
	return board
}

// QuietConfig returns the default configuration with all output discarded.
func QuietConfig() *config.Config {
	return config.NewConfigBuilder().
		WithVerbosity(0).
		WithOutput(io.Discard).
		WithLogFile(io.Discard).
		Build()
}

// Mv builds a move from square literals such as "e2" and "e4".
func Mv(from, to string, kind chess.MoveKind) chess.Move {
	return chess.NewMove(chess.Sq(from), chess.Sq(to), kind)
}

// MoveStrings renders moves in coordinate form for compact comparisons.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
