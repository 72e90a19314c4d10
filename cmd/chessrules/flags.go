// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// Starting position
	placement     = flag.String("placement", chess.InitialPlacement, "FEN piece placement to start from")
	sideToMove    = flag.String("side", "w", "Side to move in the starting position (w or b)")
	halfMoveClock = flag.Uint("clock", 0, "Initial half-move clock")

	// Rule limits
	halfMoveLimit   = flag.Uint("fiftylimit", config.DefaultHalfMoveLimit, "Half-moves without capture or pawn move before a draw")
	repetitionLimit = flag.Int("replimit", config.DefaultRepetitionLimit, "Occurrences of a position before a draw")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count move-tree leaves to depth N instead of playing")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	workers    = flag.Int("workers", 1, "Number of worker goroutines for -divide")

	// Archive
	archiveDir = flag.String("archive", "", "Directory of the game archive")
	gameID     = flag.String("id", "", "Store the finished game in the archive under this id")
	replayID   = flag.String("replay", "", "Replay the archived game with this id")
	listGames  = flag.Bool("list", false, "List archived game ids")

	// Output
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 quiet, 1 outcome, 2 every move")
	quiet      = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.Rules.HalfMoveLimit = *halfMoveLimit
	cfg.Rules.RepetitionLimit = *repetitionLimit
	cfg.Workers = *workers
	cfg.Archive.Dir = *archiveDir
}

// parseSide converts the -side flag value to a colour.
func parseSide(s string) (chess.Colour, error) {
	switch s {
	case "w", "white":
		return chess.White, nil
	case "b", "black":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("side %q: %w", s, errors.ErrInvalidConfig)
	}
}
