// Package archive stores finished games in a badger database so they can be
// listed and replayed later.
package archive

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

const keyPrefix = "game/"

// GameRecord is the stored form of a game: where it started, the moves in
// coordinate form and how it stood when saved.
type GameRecord struct {
	ID            string                `json:"id"`
	Placement     string                `json:"placement"`
	SideToMove    string                `json:"side_to_move"`
	HalfMoveClock uint                  `json:"half_move_clock"`
	WhiteCastling engine.CastlingRights `json:"white_castling"`
	BlackCastling engine.CastlingRights `json:"black_castling"`
	Moves         []string              `json:"moves"`
	Outcome       string                `json:"outcome"`
	Termination   string                `json:"termination"`
	Result        string                `json:"result"`
	SavedAt       time.Time             `json:"saved_at"`
}

// RecordFromGame captures g under the given id.
func RecordFromGame(id string, g *engine.Game) *GameRecord {
	start := g.Start()
	moves := g.Moves()
	text := make([]string, len(moves))
	for i, m := range moves {
		text[i] = m.String()
	}

	return &GameRecord{
		ID:            id,
		Placement:     start.Board.Placement(),
		SideToMove:    sideLetter(start.SideToMove),
		HalfMoveClock: start.HalfMoveClock,
		WhiteCastling: start.Castling[chess.White],
		BlackCastling: start.Castling[chess.Black],
		Moves:         text,
		Outcome:       g.Outcome().String(),
		Termination:   g.Termination().String(),
		Result:        g.Outcome().Result(),
	}
}

// Replay rebuilds a game from its record by replaying every move. Any move
// that no longer resolves is reported with its position in the record.
func Replay(record *GameRecord, cfg *config.Config) (*engine.Game, error) {
	board, err := chess.ParsePlacement(record.Placement)
	if err != nil {
		return nil, errors.Wrapf(err, "replaying %q", record.ID)
	}

	side := chess.White
	if record.SideToMove == "b" {
		side = chess.Black
	}
	g, err := engine.NewGameFromBoard(board,
		engine.WithConfig(cfg),
		engine.WithSideToMove(side),
		engine.WithHalfMoveClock(record.HalfMoveClock),
		engine.WithCastlingRights(chess.White, record.WhiteCastling),
		engine.WithCastlingRights(chess.Black, record.BlackCastling),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "replaying %q", record.ID)
	}

	for i, text := range record.Moves {
		move, err := g.ResolveCoordinates(text)
		if err == nil {
			err = g.ApplyMove(move)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "replaying %q move %d", record.ID, i+1)
		}
	}
	return g, nil
}

func sideLetter(c chess.Colour) string {
	if c == chess.Black {
		return "b"
	}
	return "w"
}

// Archive wraps BadgerDB for persistent game storage.
type Archive struct {
	db *badger.DB
}

// Open opens the archive described by cfg, on disk or in memory.
func Open(cfg *config.ArchiveConfig) (*Archive, error) {
	if cfg == nil || !cfg.Enabled() {
		return nil, fmt.Errorf("no archive directory configured: %w", errors.ErrInvalidConfig)
	}

	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %v: %w", cfg.Dir, err, errors.ErrArchive)
	}
	return &Archive{db: db}, nil
}

// Close closes the database.
func (a *Archive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Save stores record under its ID, replacing any earlier version.
func (a *Archive) Save(record *GameRecord) error {
	if record.ID == "" {
		return fmt.Errorf("record without id: %w", errors.ErrArchive)
	}
	record.SavedAt = time.Now().UTC()

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding %q: %v: %w", record.ID, err, errors.ErrArchive)
	}

	err = a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(record.ID), data)
	})
	if err != nil {
		return fmt.Errorf("saving %q: %v: %w", record.ID, err, errors.ErrArchive)
	}
	return nil
}

// Load returns the record stored under id, or ErrGameNotFound.
func (a *Archive) Load(id string) (*GameRecord, error) {
	var record GameRecord

	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %q: %w", id, errors.ErrGameNotFound)
		}
		if err != nil {
			return fmt.Errorf("loading %q: %v: %w", id, err, errors.ErrArchive)
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &record); err != nil {
				return fmt.Errorf("decoding %q: %v: %w", id, err, errors.ErrArchive)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes the record stored under id. Deleting an unknown id is not
// an error.
func (a *Archive) Delete(id string) error {
	err := a.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
	if err != nil {
		return fmt.Errorf("deleting %q: %v: %w", id, err, errors.ErrArchive)
	}
	return nil
}

// List returns the stored game ids in key order.
func (a *Archive) List() ([]string, error) {
	var ids []string

	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			ids = append(ids, string(key[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing games: %v: %w", err, errors.ErrArchive)
	}
	return ids, nil
}

func gameKey(id string) []byte {
	return []byte(keyPrefix + id)
}
