package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Outcome is the result of a game. Running is the only non-terminal value.
type Outcome int

const (
	Running Outcome = iota
	WhiteWin
	BlackWin
	Draw
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "Running"
	case WhiteWin:
		return "WhiteWin"
	case BlackWin:
		return "BlackWin"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether the game has ended.
func (o Outcome) IsTerminal() bool {
	return o != Running
}

// Result returns the PGN-style result string.
func (o Outcome) Result() string {
	switch o {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// WinFor returns the outcome in which colour wins.
func WinFor(colour chess.Colour) Outcome {
	if colour == chess.White {
		return WhiteWin
	}
	return BlackWin
}

// Termination records why a game ended.
type Termination int

const (
	NotTerminated Termination = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	ThreefoldRepetition
	DeadPosition
)

// String returns the string representation of a termination.
func (t Termination) String() string {
	names := []string{"None", "Checkmate", "Stalemate", "FiftyMoveRule", "ThreefoldRepetition", "DeadPosition"}
	if int(t) >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// State is the mutable game state beside the board: whose turn it is, the
// half-move counter for the fifty-move rule, and the outcome.
type State struct {
	SideToMove    chess.Colour
	HalfMoveClock uint
	Outcome       Outcome
	Termination   Termination
}

// NewState creates the state of a fresh game: White to move, Running.
func NewState() *State {
	return &State{SideToMove: chess.White, Outcome: Running}
}

// end records a terminal outcome.
func (s *State) end(outcome Outcome, why Termination) {
	s.Outcome = outcome
	s.Termination = why
}
