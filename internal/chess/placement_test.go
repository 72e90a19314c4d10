package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestParsePlacement_RoundTrip(t *testing.T) {
	placements := []string{
		InitialPlacement,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8",
		"8/8/8/8/8/8/8/8",
	}

	for _, p := range placements {
		t.Run(p, func(t *testing.T) {
			b, err := ParsePlacement(p)
			if err != nil {
				t.Fatalf("ParsePlacement() error = %v", err)
			}
			if got := b.Placement(); got != p {
				t.Errorf("Placement() = %q; want %q", got, p)
			}
		})
	}
}

func TestParsePlacement_IgnoresTrailingFields(t *testing.T) {
	b, err := ParsePlacement(InitialPlacement + " w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParsePlacement() error = %v", err)
	}
	if !b.Equal(NewInitialBoard()) {
		t.Error("board should equal the initial position")
	}
}

func TestParsePlacement_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		placement string
	}{
		{"empty", ""},
		{"bad letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"long rank", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"seven ranks", "8/8/8/8/8/8/8"},
		{"nine ranks", "8/8/8/8/8/8/8/8/8"},
		{"overflowing digit", "9/8/8/8/8/8/8/8"},
		{"non-ascii letter", "4ŋ3/8/8/8/8/8/8/4K3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlacement(tt.placement)
			if !errors.Is(err, chesserrors.ErrInvalidPlacement) {
				t.Errorf("ParsePlacement(%q) error = %v; want ErrInvalidPlacement", tt.placement, err)
			}
		})
	}
}
