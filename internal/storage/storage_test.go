package storage

import (
	"os"
	"testing"
)

func TestDefaultsAndWinRate(t *testing.T) {
	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		if prefs.PlayerName != "Player" {
			t.Errorf("Expected player name 'Player', got '%s'", prefs.PlayerName)
		}
		if prefs.ServerURL != DefaultServerURL {
			t.Errorf("Expected default server URL, got '%s'", prefs.ServerURL)
		}
		if !prefs.SoundEnabled {
			t.Errorf("Expected sound enabled by default")
		}
	})

	t.Run("NewMatchStats", func(t *testing.T) {
		stats := NewMatchStats()
		if stats.GamesPlayed != 0 {
			t.Errorf("Expected 0 games played")
		}
		if stats.WinRate() != 0 {
			t.Errorf("Expected 0 win rate")
		}
	})

	t.Run("WinRate", func(t *testing.T) {
		stats := &MatchStats{
			GamesPlayed: 10,
			Wins:        5,
			Losses:      3,
			Draws:       2,
		}
		if rate := stats.WinRate(); rate != 50 {
			t.Errorf("Expected 50%% win rate, got %.2f%%", rate)
		}
	})
}

func TestRoundTripInTempDB(t *testing.T) {
	dir, err := os.MkdirTemp("", "mannchess-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	s, err := OpenAt(dir)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	defer s.Close()

	prefs := DefaultPreferences()
	prefs.PlayerName = "Dana"
	prefs.ServerURL = "ws://play.example:9000/ws"
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences failed: %v", err)
	}

	loaded, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences failed: %v", err)
	}
	if loaded.PlayerName != "Dana" || loaded.ServerURL != "ws://play.example:9000/ws" {
		t.Errorf("preferences did not round trip: %+v", loaded)
	}
	if loaded.LastJoined.IsZero() {
		t.Error("LastJoined should be stamped on save")
	}

	if err := s.RecordMatch(MatchResult{Won: true, Role: "white"}); err != nil {
		t.Fatalf("RecordMatch failed: %v", err)
	}
	if err := s.RecordMatch(MatchResult{Draw: true, Role: "white"}); err != nil {
		t.Fatalf("RecordMatch failed: %v", err)
	}
	if err := s.RecordMatch(MatchResult{Role: "black"}); err != nil {
		t.Fatalf("RecordMatch failed: %v", err)
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if stats.GamesPlayed != 3 || stats.Wins != 1 || stats.Draws != 1 || stats.Losses != 1 {
		t.Errorf("stats wrong: %+v", stats)
	}
	if stats.GamesByRole["white"] != 2 || stats.GamesByRole["black"] != 1 {
		t.Errorf("per-role counts wrong: %+v", stats.GamesByRole)
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}
}
