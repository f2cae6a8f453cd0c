package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/michaelkrisper/gochess/internal/game"
)

const gameKeyPrefix = "game:"

// SavedGame wraps a game snapshot with save metadata.
type SavedGame struct {
	Name     string        `json:"name"`
	SavedAt  time.Time     `json:"saved_at"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// Storage wraps BadgerDB for persistent storage of saved games.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens the database at the given directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame stores a snapshot under the given name, overwriting any
// previous save with that name.
func (s *Storage) SaveGame(name string, snap game.Snapshot) error {
	if name == "" {
		return fmt.Errorf("save name must not be empty")
	}

	data, err := json.Marshal(SavedGame{
		Name:     name,
		SavedAt:  time.Now(),
		Snapshot: snap,
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gameKeyPrefix+name), data)
	})
}

// LoadGame loads the snapshot saved under the given name.
func (s *Storage) LoadGame(name string) (*SavedGame, error) {
	var saved SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gameKeyPrefix + name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("no saved game named %q", name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &saved)
		})
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// ListGames returns the names of all saved games.
func (s *Storage) ListGames() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, gameKeyPrefix))
		}
		return nil
	})

	return names, err
}

// DeleteGame removes the saved game with the given name.
func (s *Storage) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gameKeyPrefix + name))
	})
}
