package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree below g to the given
// depth. Draw rules do not prune the tree; only the absence of legal moves
// ends a line early. g is not modified.
func Perft(g *Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.AvailableMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := g.Clone()
		child.play(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// DivideResult lists the per-move counts in AvailableMoves order.
type DivideResult []DivideEntry

// Total returns the sum of the per-move counts.
func (d DivideResult) Total() uint64 {
	var n uint64
	for _, e := range d {
		n += e.Nodes
	}
	return n
}

// Divide runs Perft below each root move in turn.
func Divide(g *Game, depth int) DivideResult {
	if depth <= 0 {
		return nil
	}
	moves := g.AvailableMoves()
	result := make(DivideResult, len(moves))
	for i, m := range moves {
		child := g.Clone()
		child.play(m)
		result[i] = DivideEntry{Move: m, Nodes: Perft(child, depth-1)}
	}
	return result
}

// DivideParallel is Divide with the root moves spread over a worker pool
// sized by the game's configuration. Each worker plays on its own clone.
func DivideParallel(g *Game, depth int) (DivideResult, error) {
	if depth <= 0 {
		return nil, nil
	}
	moves := g.AvailableMoves()
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Move: m, Depth: depth - 1, Index: i}
	}

	// Workers share nothing, the log writer included.
	root := g.Clone()
	quiet := *g.cfg
	quiet.LogFile = nil
	root.cfg = &quiet
	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		child := root.Clone()
		child.play(item.Move)
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Nodes: Perft(child, item.Depth)}
	}, worker.WithWorkers(g.cfg.Workers), worker.WithBufferSize(len(items)+1))

	g.cfg.Logf(2, "divide depth %d: %d root moves on %d workers", depth, len(items), pool.NumWorkers())

	results, err := pool.Run(items)
	if err != nil {
		return nil, err
	}
	out := make(DivideResult, len(results))
	for i, r := range results {
		out[i] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return out, nil
}
