package ui

import (
	"testing"

	"mannchess/internal/game"
	"mannchess/internal/storage"
)

func TestWinRateLabel(t *testing.T) {
	cases := []struct {
		name  string
		stats storage.MatchStats
		want  string
	}{
		{"no games", storage.MatchStats{}, "Win rate: 0%"},
		{"half wins", storage.MatchStats{GamesPlayed: 10, Wins: 5, Losses: 5}, "Win rate: 50%"},
		{"all wins", storage.MatchStats{GamesPlayed: 4, Wins: 4}, "Win rate: 100%"},
		{"one of three", storage.MatchStats{GamesPlayed: 3, Wins: 1, Losses: 2}, "Win rate: 33%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := winRateLabel(&tc.stats); got != tc.want {
				t.Errorf("winRateLabel() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{game.StatusPlaying, "In progress"},
		{"waiting", "Waiting for opponent"},
		{"white-won", "white-won"},
		{"draw", "draw"},
	}

	for _, tc := range cases {
		if got := statusLabel(tc.status); got != tc.want {
			t.Errorf("statusLabel(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestRoleLabel(t *testing.T) {
	if got := roleLabel(game.RoleWhite); got != "White" {
		t.Errorf("roleLabel(RoleWhite) = %q", got)
	}
	if got := roleLabel(game.RoleBlack); got != "Black" {
		t.Errorf("roleLabel(RoleBlack) = %q", got)
	}
	if got := roleLabel(game.RoleObserver); got != "Observer" {
		t.Errorf("roleLabel(RoleObserver) = %q", got)
	}
}
