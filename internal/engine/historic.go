package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Historic is the append-only record of a game: the ordered moves played,
// seeded with a NoMove sentinel, and how many times each resulting
// position fingerprint has occurred.
type Historic struct {
	moves      []chess.Move
	occurrence map[chess.Fingerprint]int
}

// NewHistoric creates a historic holding only the sentinel.
func NewHistoric() *Historic {
	return &Historic{
		moves:      []chess.Move{{Kind: chess.NoMove}},
		occurrence: make(map[chess.Fingerprint]int),
	}
}

// Record appends move and counts the fingerprint of board, the position the
// move produced. It returns the updated occurrence count.
func (h *Historic) Record(move chess.Move, board *chess.Board) int {
	h.moves = append(h.moves, move)
	fp := board.Fingerprint()
	h.occurrence[fp]++
	return h.occurrence[fp]
}

// Last returns the most recent move, or the sentinel before any move.
func (h *Historic) Last() chess.Move {
	return h.moves[len(h.moves)-1]
}

// Len returns the number of moves played, sentinel excluded.
func (h *Historic) Len() int {
	return len(h.moves) - 1
}

// Moves returns a copy of the moves played, sentinel excluded.
func (h *Historic) Moves() []chess.Move {
	return slices.Clone(h.moves[1:])
}

// Occurrences returns how many times the fingerprint has been recorded.
func (h *Historic) Occurrences(fp chess.Fingerprint) int {
	return h.occurrence[fp]
}

// MaxOccurrences returns the highest count of any recorded position.
func (h *Historic) MaxOccurrences() int {
	max := 0
	for _, n := range h.occurrence {
		if n > max {
			max = n
		}
	}
	return max
}

// Clone returns an independent copy.
func (h *Historic) Clone() *Historic {
	occ := make(map[chess.Fingerprint]int, len(h.occurrence))
	for k, v := range h.occurrence {
		occ[k] = v
	}
	return &Historic{moves: slices.Clone(h.moves), occurrence: occ}
}
