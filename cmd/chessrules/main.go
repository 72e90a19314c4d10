// chessrules plays and checks chess games under the standard rules.
//
// Moves are read from standard input in coordinate form (e2e4, e7e8n), one
// or more per line. The final board and outcome are printed when the input
// ends or the game is over.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/archive"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	if err := run(cfg); err != nil {
		fatal(err)
	}
}

// run dispatches to the mode selected by the flags.
func run(cfg *config.Config) error {
	if *listGames || *replayID != "" {
		store, err := openArchive(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		if *listGames {
			return listArchive(cfg, store)
		}
		return replayArchived(cfg, store, *replayID)
	}

	g, err := newGameFromFlags(cfg)
	if err != nil {
		return err
	}

	if *perftDepth > 0 {
		return runPerft(cfg, g, *perftDepth, *divide)
	}

	if _, err := playSession(cfg, g, os.Stdin); err != nil {
		return err
	}

	if *gameID != "" {
		store, err := openArchive(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		return archiveGame(cfg, store, *gameID, g)
	}
	return nil
}

// newGameFromFlags builds the starting game from -placement, -side and -clock.
func newGameFromFlags(cfg *config.Config) (*engine.Game, error) {
	board, err := chess.ParsePlacement(*placement)
	if err != nil {
		return nil, err
	}
	side, err := parseSide(*sideToMove)
	if err != nil {
		return nil, err
	}
	return engine.NewGameFromBoard(board,
		engine.WithConfig(cfg),
		engine.WithSideToMove(side),
		engine.WithHalfMoveClock(*halfMoveClock),
	)
}

// openArchive opens the archive configured with -archive.
func openArchive(cfg *config.Config) (*archive.Archive, error) {
	store, err := archive.Open(cfg.Archive)
	if err != nil {
		return nil, err
	}
	cfg.Logf(2, "opened archive %s", cfg.Archive.Dir)
	return store, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] < moves\n\n")
	fmt.Fprintf(os.Stderr, "Plays coordinate moves from stdin under the standard rules of chess.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput commands (besides moves):\n")
	fmt.Fprintf(os.Stderr, "  moves  List the legal moves of the side to move\n")
	fmt.Fprintf(os.Stderr, "  board  Print the board\n")
	fmt.Fprintf(os.Stderr, "  quit   Stop reading input\n")
}
