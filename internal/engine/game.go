package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game ties the board, historic, state and castling rights together. It is
// the only entry point collaborators use. A Game is not safe for concurrent
// use; callers serialize access or work on clones.
type Game struct {
	cfg      *config.Config
	board    *chess.Board
	historic *Historic
	state    *State
	castling [2]CastlingRights
	start    StartPosition
}

// StartPosition is the position a game began from, enough to replay it.
type StartPosition struct {
	Board         *chess.Board
	SideToMove    chess.Colour
	HalfMoveClock uint
	Castling      [2]CastlingRights
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithConfig sets the configuration (rule limits, logging).
func WithConfig(cfg *config.Config) GameOption {
	return func(g *Game) {
		if cfg != nil {
			g.cfg = cfg
		}
	}
}

// WithSideToMove sets the side to move of a set-up position.
func WithSideToMove(colour chess.Colour) GameOption {
	return func(g *Game) {
		g.state.SideToMove = colour
	}
}

// WithHalfMoveClock sets the initial fifty-move counter.
func WithHalfMoveClock(n uint) GameOption {
	return func(g *Game) {
		g.state.HalfMoveClock = n
	}
}

// WithCastlingRights overrides the castling rights of one colour.
func WithCastlingRights(colour chess.Colour, rights CastlingRights) GameOption {
	return func(g *Game) {
		g.castling[colour] = rights
	}
}

// NewGame creates a game at the standard initial position, White to move.
func NewGame(opts ...GameOption) *Game {
	g, err := NewGameFromBoard(chess.NewInitialBoard(), opts...)
	if err != nil {
		// The initial position always has both kings.
		panic(err)
	}
	return g
}

// NewGameFromBoard creates a game from a set-up position. The board is
// copied. Castling rights default to whatever the placement implies (king
// and rook on their home squares). Boards without exactly one king of each
// colour are rejected, as are positions where the side not to move is
// already in check.
func NewGameFromBoard(board *chess.Board, opts ...GameOption) (*Game, error) {
	if err := board.ValidateKings(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      config.NewConfig(),
		board:    board.Copy(),
		historic: NewHistoric(),
		state:    NewState(),
	}
	for _, c := range chess.Colours {
		g.castling[c] = DeriveCastlingRights(g.board, c)
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if IsInCheck(g.board, g.state.SideToMove.Opposite()) {
		return nil, fmt.Errorf("%s is in check with %s to move: %w",
			g.state.SideToMove.Opposite(), g.state.SideToMove, errors.ErrInvalidPlacement)
	}
	g.start = StartPosition{
		Board:         g.board.Copy(),
		SideToMove:    g.state.SideToMove,
		HalfMoveClock: g.state.HalfMoveClock,
		Castling:      g.castling,
	}
	return g, nil
}

// AvailableMoves returns every legal move of the side to move in board-scan
// order, a king's castling moves following its ordinary moves.
func (g *Game) AvailableMoves() []chess.Move {
	var moves []chess.Move
	side := g.state.SideToMove
	for _, origin := range g.board.Occupied() {
		piece, _ := g.board.Get(origin)
		if piece.Colour != side {
			continue
		}
		moves = append(moves, g.movesFrom(origin, piece)...)
	}
	return moves
}

// SquareAvailableMoves returns the legal moves of the piece on origin,
// castling included, for highlighting reachable squares. It is empty when
// origin is vacant or holds a piece of the side not to move.
func (g *Game) SquareAvailableMoves(origin chess.Square) []chess.Move {
	piece, ok := g.board.Get(origin)
	if !ok || piece.Colour != g.state.SideToMove {
		return nil
	}
	return g.movesFrom(origin, piece)
}

// movesFrom is LegalMovesFrom plus castling for the king.
func (g *Game) movesFrom(origin chess.Square, piece chess.Piece) []chess.Move {
	moves := LegalMovesFrom(origin, g.board, g.historic)
	if piece.Kind == chess.King {
		moves = append(moves, CastlingMoves(piece.Colour, g.board, g.castling[piece.Colour])...)
	}
	return moves
}

// ApplyMove plays move if it is one of AvailableMoves. The check happens
// before anything is mutated, so a rejected move leaves the game untouched.
func (g *Game) ApplyMove(move chess.Move) error {
	if g.state.Outcome.IsTerminal() {
		return g.moveError(move, errors.ErrGameOver)
	}
	if !slices.Contains(g.AvailableMoves(), move) {
		return g.moveError(move, errors.ErrIllegalMove)
	}
	g.play(move)
	return nil
}

// ResolveMove finds the available move from origin to destination. The
// promotion kind picks between promotion variants and is ignored for other
// moves; zero means queen.
func (g *Game) ResolveMove(from, to chess.Square, promotion chess.PieceKind) (chess.Move, error) {
	if promotion == 0 {
		promotion = chess.Queen
	}
	for _, m := range g.SquareAvailableMoves(from) {
		if m.To != to {
			continue
		}
		if m.IsPromotion() && m.PromotedKind() != promotion {
			continue
		}
		return m, nil
	}
	return chess.Move{}, g.moveError(chess.NewMove(from, to, chess.Standard), errors.ErrIllegalMove)
}

// ResolveCoordinates resolves a move written in coordinate form, such as
// "e2e4" or "e7e8n", against the available moves.
func (g *Game) ResolveCoordinates(text string) (chess.Move, error) {
	from, to, promotion, err := chess.ParseCoordinates(text)
	if err != nil {
		return chess.Move{}, err
	}
	return g.ResolveMove(from, to, promotion)
}

// play applies a move already known to be legal.
func (g *Game) play(move chess.Move) {
	mover, _ := g.board.Get(move.From)

	move.Apply(g.board)
	repetitions := g.historic.Record(move, g.board)
	for _, c := range chess.Colours {
		g.castling[c].Update(c, move, mover)
	}

	g.state.SideToMove = g.state.SideToMove.Opposite()
	updateOutcome(g.state, g.cfg.Rules, g.board, g.historic, move, mover, repetitions)

	g.cfg.Logf(2, "ply %d: %s %s (%s), half-move clock %d",
		g.historic.Len(), mover.Colour, move, move.Kind, g.state.HalfMoveClock)
	if g.state.Outcome.IsTerminal() {
		g.cfg.Logf(2, "game over after ply %d: %s by %s",
			g.historic.Len(), g.state.Outcome, g.state.Termination)
	}
}

// moveError wraps err with the context of the rejected move.
func (g *Game) moveError(move chess.Move, err error) error {
	return &errors.MoveError{
		Err:    err,
		Ply:    g.historic.Len() + 1,
		Move:   move.String(),
		Colour: g.state.SideToMove.String(),
	}
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	return g.state.SideToMove
}

// Outcome returns the current outcome.
func (g *Game) Outcome() Outcome {
	return g.state.Outcome
}

// Termination returns why the game ended, or NotTerminated.
func (g *Game) Termination() Termination {
	return g.state.Termination
}

// HalfMoveClock returns the number of half-moves since the last capture or pawn move.
func (g *Game) HalfMoveClock() uint {
	return g.state.HalfMoveClock
}

// PieceAt returns the piece on sq, if any.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, bool) {
	return g.board.Get(sq)
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Moves returns the moves played so far.
func (g *Game) Moves() []chess.Move {
	return g.historic.Moves()
}

// Occurrences returns how many times the current position has arisen
// after a move.
func (g *Game) Occurrences() int {
	return g.historic.Occurrences(g.board.Fingerprint())
}

// CastlingRights returns the castling rights still held by colour.
func (g *Game) CastlingRights(colour chess.Colour) CastlingRights {
	return g.castling[colour]
}

// InCheck returns true if the side to move is in check.
func (g *Game) InCheck() bool {
	return IsInCheck(g.board, g.state.SideToMove)
}

// Start returns the position the game began from.
func (g *Game) Start() StartPosition {
	start := g.start
	start.Board = g.start.Board.Copy()
	return start
}

// Config returns the game's configuration.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Clone returns an independent copy of the game sharing only the config.
func (g *Game) Clone() *Game {
	state := *g.state
	return &Game{
		cfg:      g.cfg,
		board:    g.board.Copy(),
		historic: g.historic.Clone(),
		state:    &state,
		castling: g.castling,
		start:    g.start,
	}
}

// String returns the board diagram followed by a status line.
func (g *Game) String() string {
	return fmt.Sprintf("%s%s to move, %s", g.board, g.state.SideToMove, g.state.Outcome)
}
