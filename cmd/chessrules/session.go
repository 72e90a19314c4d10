package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/archive"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// playSession reads moves and commands from in and applies them to g.
// Rejected moves are logged and skipped. Reading stops at end of input,
// on "quit", or once the game is over. The final board and status are
// written to the output file. It returns the number of moves applied.
func playSession(cfg *config.Config, g *engine.Game, in io.Reader) (int, error) {
	scanner := bufio.NewScanner(in)
	applied := 0

scan:
	for scanner.Scan() {
		for _, token := range strings.Fields(scanner.Text()) {
			switch strings.ToLower(token) {
			case "quit":
				break scan
			case "board":
				fmt.Fprint(cfg.OutputFile, g.String(), "\n")
				continue
			case "moves":
				printMoves(cfg, g)
				continue
			}

			move, err := g.ResolveCoordinates(token)
			if err == nil {
				err = g.ApplyMove(move)
			}
			if err != nil {
				cfg.Logf(1, "rejected %s: %v", token, err)
				continue
			}
			applied++

			if g.Outcome().IsTerminal() {
				break scan
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return applied, fmt.Errorf("reading moves: %w", err)
	}

	printStatus(cfg, g)
	return applied, nil
}

// printMoves lists the available moves on one line.
func printMoves(cfg *config.Config, g *engine.Game) {
	moves := g.AvailableMoves()
	text := make([]string, len(moves))
	for i, m := range moves {
		text[i] = m.String()
	}
	fmt.Fprintf(cfg.OutputFile, "%d moves: %s\n", len(moves), strings.Join(text, " "))
}

// printStatus writes the board and the game's standing.
func printStatus(cfg *config.Config, g *engine.Game) {
	fmt.Fprint(cfg.OutputFile, g.Board())
	if g.Outcome().IsTerminal() {
		fmt.Fprintf(cfg.OutputFile, "%s %s (%s)\n", g.Outcome().Result(), g.Outcome(), g.Termination())
		return
	}
	status := fmt.Sprintf("%s to move", g.SideToMove())
	if g.InCheck() {
		status += ", in check"
	}
	fmt.Fprintf(cfg.OutputFile, "%s %s\n", g.Outcome().Result(), status)
}

// runPerft prints the leaf count to depth, split by root move when divide is set.
func runPerft(cfg *config.Config, g *engine.Game, depth int, divide bool) error {
	if !divide {
		fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", depth, engine.Perft(g, depth))
		return nil
	}

	result, err := engine.DivideParallel(g, depth)
	if err != nil {
		return err
	}
	for _, e := range result {
		fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(cfg.OutputFile, "\nmoves: %d\nnodes: %d\n", len(result), result.Total())
	return nil
}

// archiveGame stores g under id.
func archiveGame(cfg *config.Config, store *archive.Archive, id string, g *engine.Game) error {
	record := archive.RecordFromGame(id, g)
	if err := store.Save(record); err != nil {
		return err
	}
	cfg.Logf(1, "saved game %s (%d moves, %s)", id, len(record.Moves), record.Result)
	return nil
}

// replayArchived loads the game stored under id, replays it and prints
// the final status.
func replayArchived(cfg *config.Config, store *archive.Archive, id string) error {
	record, err := store.Load(id)
	if err != nil {
		return err
	}
	g, err := archive.Replay(record, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cfg.OutputFile, "%s: %s\n", id, strings.Join(record.Moves, " "))
	printStatus(cfg, g)
	return nil
}

// listArchive prints every stored game id, one per line.
func listArchive(cfg *config.Config, store *archive.Archive) error {
	ids, err := store.List()
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(cfg.OutputFile, id)
	}
	cfg.Logf(2, "%d games archived", len(ids))
	return nil
}
