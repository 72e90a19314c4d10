package chess

import "testing"

func TestFingerprint_Nibbles(t *testing.T) {
	fp := NewInitialBoard().Fingerprint()

	tests := []struct {
		square string
		want   uint8
	}{
		{"a1", W(Rook).Nibble()},
		{"e1", W(King).Nibble()},
		{"e8", B(King).Nibble()},
		{"d7", B(Pawn).Nibble()},
		{"e4", 0},
	}
	for _, tt := range tests {
		if got := fp.Nibble(Sq(tt.square)); got != tt.want {
			t.Errorf("Nibble(%s) = %#x; want %#x", tt.square, got, tt.want)
		}
	}

	// a1 (rook, 4) in the low nibble, b1 (knight, 2) in the high nibble.
	if fp[0] != 0x24 {
		t.Errorf("fp[0] = %#x; want 0x24", fp[0])
	}
}

func TestFingerprint_Equality(t *testing.T) {
	a := NewInitialBoard()
	b := MustParsePlacement(InitialPlacement)
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal placements should have equal fingerprints")
	}

	b.Remove(Sq("e2"))
	b.Set(Sq("e4"), W(Pawn))
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("different placements should have different fingerprints")
	}

	// Colour matters.
	c := MustParsePlacement("4k3/8/8/8/8/8/8/3QK3")
	d := MustParsePlacement("4k3/8/8/8/8/8/8/3qK3")
	if c.Fingerprint() == d.Fingerprint() {
		t.Error("fingerprint should distinguish colours")
	}
}

func TestCensus(t *testing.T) {
	c := NewInitialBoard().Census()
	if c.Total() != 32 {
		t.Errorf("Total() = %d; want 32", c.Total())
	}
	if c[W(Pawn)] != 8 || c[B(Knight)] != 2 {
		t.Errorf("census = %s", c)
	}

	bare := c.WithoutKings()
	if bare.Total() != 30 {
		t.Errorf("WithoutKings().Total() = %d; want 30", bare.Total())
	}
	if c.Total() != 32 {
		t.Error("WithoutKings should not modify the receiver")
	}
	if got := bare.Kind(Bishop); got != 4 {
		t.Errorf("Kind(Bishop) = %d; want 4", got)
	}
}

func TestCensus_String(t *testing.T) {
	c := MustParsePlacement("4k3/8/8/8/8/8/8/3BK3").Census()
	if got, want := c.String(), "B:1 K:1 k:1"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
