package chess

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Fingerprint is a canonical 256-bit encoding of the piece placement: four
// bits per square, a1 in the low nibble of byte 0 and h8 in the high nibble
// of byte 31. Equal placements have equal fingerprints.
type Fingerprint [32]byte

// String returns the fingerprint as hex.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Nibble returns the 4-bit code stored for sq.
func (f Fingerprint) Nibble(sq Square) uint8 {
	idx := sq.Index()
	return (f[idx/2] >> (4 * uint(idx%2))) & 0x0f
}

// Fingerprint computes the position fingerprint of the board.
func (b *Board) Fingerprint() Fingerprint {
	var f Fingerprint
	for sq, p := range b.squares {
		idx := sq.Index()
		f[idx/2] |= p.Nibble() << (4 * uint(idx%2))
	}
	return f
}

// Census counts the pieces on a board by kind and colour.
type Census map[Piece]int

// Census returns the piece census of the board, kings included.
func (b *Board) Census() Census {
	c := make(Census)
	for _, p := range b.squares {
		c[p]++
	}
	return c
}

// WithoutKings returns a copy of the census with both kings dropped.
func (c Census) WithoutKings() Census {
	out := maps.Clone(c)
	delete(out, W(King))
	delete(out, B(King))
	return out
}

// Total returns the number of pieces counted.
func (c Census) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Kind returns how many pieces of the kind are present, both colours.
func (c Census) Kind(kind PieceKind) int {
	return c[W(kind)] + c[B(kind)]
}

// String lists the census in a stable order, e.g. "K:1 k:1 B:1".
func (c Census) String() string {
	pieces := maps.Keys(c)
	letters := make([]string, 0, len(pieces))
	for _, p := range pieces {
		letters = append(letters, fmt.Sprintf("%c:%d", p.Letter(), c[p]))
	}
	slices.Sort(letters)
	return strings.Join(letters, " ")
}
