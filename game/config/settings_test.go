package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	settings := Defaults()

	tests := []struct {
		name     string
		actual   int
		expected int
	}{
		{"BoardSize", settings.BoardSize, 12},
		{"MaxUsersPerTeam", settings.MaxUsersPerTeam, 12},
		{"MaxTurns", settings.MaxTurns, 1250},
	}
	for _, test := range tests {
		if test.actual != test.expected {
			t.Errorf("%s: expected %d, got %d", test.name, test.expected, test.actual)
		}
	}

	if err := settings.Validate(); err != nil {
		t.Errorf("Expected defaults to be valid, got %v", err)
	}
}

func TestMerge(t *testing.T) {
	settings, err := Merge(map[string]any{
		"maxUsersPerTeam": 4,
		"maxTurns":        float64(300),
		"tournament":      "spring",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if settings.BoardSize != 12 {
		t.Errorf("Expected default board size to survive, got %d", settings.BoardSize)
	}
	if settings.MaxUsersPerTeam != 4 {
		t.Errorf("Expected max users per team 4, got %d", settings.MaxUsersPerTeam)
	}
	if settings.MaxTurns != 300 {
		t.Errorf("Expected max turns 300, got %d", settings.MaxTurns)
	}
	if settings.Extra["tournament"] != "spring" {
		t.Errorf("Expected unknown key to pass through, got %v", settings.Extra)
	}
}

func TestMergeInvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{"string board size", map[string]any{"boardSize": "big"}},
		{"fractional turns", map[string]any{"maxTurns": 12.5}},
		{"nil team size", map[string]any{"maxUsersPerTeam": nil}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Merge(test.overrides)
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}

func TestWithDoesNotMutateReceiver(t *testing.T) {
	base := Defaults()
	base.Extra["league"] = "a"

	merged, err := base.With(map[string]any{"league": "b", "maxTurns": 10})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if base.Extra["league"] != "a" || base.MaxTurns != DefaultMaxTurns {
		t.Errorf("Receiver was modified: %+v", base)
	}
	if merged.Extra["league"] != "b" || merged.MaxTurns != 10 {
		t.Errorf("Overrides not applied: %+v", merged)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Settings)
		expectedError string
	}{
		{"board too small", func(s *Settings) { s.BoardSize = 1 }, "boardSize must be between"},
		{"board too large", func(s *Settings) { s.BoardSize = 51 }, "boardSize must be between"},
		{"no users", func(s *Settings) { s.MaxUsersPerTeam = 0 }, "maxUsersPerTeam must be at least 1"},
		{"no turns", func(s *Settings) { s.MaxTurns = 0 }, "maxTurns must be at least 1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			settings := Defaults()
			test.mutate(&settings)
			err := settings.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Expected ErrInvalidSettings, got %v", err)
			}
			if !strings.Contains(err.Error(), test.expectedError) {
				t.Errorf("Expected error containing '%s', got: %v", test.expectedError, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "settings-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "battle.yaml")
	content := "maxUsersPerTeam: 3\ntournament: spring\nrounds: 2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	settings, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if settings.MaxUsersPerTeam != 3 {
		t.Errorf("Expected max users per team 3, got %d", settings.MaxUsersPerTeam)
	}
	if settings.BoardSize != 12 || settings.MaxTurns != 1250 {
		t.Errorf("Expected defaults for missing keys, got %+v", settings)
	}
	if settings.Extra["tournament"] != "spring" || settings.Extra["rounds"] != 2 {
		t.Errorf("Expected unknown keys in Extra, got %v", settings.Extra)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := Parse([]byte("boardSize: [1, 2")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
