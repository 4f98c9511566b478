package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// DefaultServerURL is used until the player points the client somewhere else.
const DefaultServerURL = "ws://localhost:8080/ws"

// Preferences stores user settings between sessions.
type Preferences struct {
	PlayerName   string    `json:"player_name"`
	ServerURL    string    `json:"server_url"`
	SoundEnabled bool      `json:"sound_enabled"`
	LastJoined   time.Time `json:"last_joined"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		PlayerName:   "Player",
		ServerURL:    DefaultServerURL,
		SoundEnabled: true,
	}
}

// MatchStats stores outcomes of completed online games, as declared by the
// server's ending status tokens.
type MatchStats struct {
	GamesPlayed int            `json:"games_played"`
	Wins        int            `json:"wins"`
	Losses      int            `json:"losses"`
	Draws       int            `json:"draws"`
	GamesByRole map[string]int `json:"games_by_role"`
}

// NewMatchStats returns empty match statistics.
func NewMatchStats() *MatchStats {
	return &MatchStats{
		GamesByRole: make(map[string]int),
	}
}

// WinRate returns the win rate as a percentage (0-100).
func (s *MatchStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// MatchResult describes one finished game for recording.
type MatchResult struct {
	Won  bool
	Draw bool
	Role string
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return openAt(dbDir)
}

// OpenAt opens the database in an explicit directory. Tests use this to
// avoid touching the real data dir.
func OpenAt(dir string) (*Storage, error) {
	return openAt(dir)
}

func openAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging

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

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastJoined = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves match statistics.
func (s *Storage) SaveStats(stats *MatchStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads match statistics, returning empty stats if not found.
func (s *Storage) LoadStats() (*MatchStats, error) {
	stats := NewMatchStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordMatch records a completed game and updates statistics.
func (s *Storage) RecordMatch(result MatchResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	if result.Role != "" {
		stats.GamesByRole[result.Role]++
	}

	switch {
	case result.Draw:
		stats.Draws++
	case result.Won:
		stats.Wins++
	default:
		stats.Losses++
	}

	return s.SaveStats(stats)
}
