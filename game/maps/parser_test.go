package maps

import (
	"errors"
	"strings"
	"testing"

	"github.com/wricardo/hero-battle/game/engine"
)

const testMap = `S1|  |DM|
  |IM|HW|
  |SP|  |
  |  |  |S2
`

func TestParseLayout(t *testing.T) {
	layout, err := ParseLayout(strings.NewReader(testMap))
	if err != nil {
		t.Fatalf("Failed to parse map: %v", err)
	}

	if layout.Size() != 4 {
		t.Errorf("Expected size 4, got %d", layout.Size())
	}
	if layout[0][2] != TokenDiamondMine {
		t.Errorf("Expected DM at (0,2), got %q", layout[0][2])
	}
	if layout[3][3] != TokenSpawnTwo {
		t.Errorf("Expected S2 at (3,3), got %q", layout[3][3])
	}
}

func TestParseLayoutEdgeCases(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedSize int
		expectedErr  error
	}{
		{"empty", "", 0, ErrEmptyMap},
		{"only blank lines", "\n\n  \n", 0, ErrEmptyMap},
		{"windows line endings", "DM|  \r\n  |HW\r\n", 2, nil},
		{"no trailing newline", "DM|  \n  |HW", 2, nil},
		{"short rows padded", "DM\n\n  |  |HW", 3, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			layout, err := ParseLayout(strings.NewReader(test.input))
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("Expected error %v, got %v", test.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if layout.Size() != test.expectedSize {
				t.Errorf("Expected size %d, got %d", test.expectedSize, layout.Size())
			}
			for i, row := range layout {
				if len(row) != test.expectedSize {
					t.Errorf("Row %d: expected %d cells, got %d", i, test.expectedSize, len(row))
				}
			}
		})
	}
}

func TestParseBuildsGame(t *testing.T) {
	game, err := Parse(strings.NewReader(testMap))
	if err != nil {
		t.Fatalf("Failed to parse map: %v", err)
	}

	if game.Size() != 4 {
		t.Errorf("Expected size 4, got %d", game.Size())
	}
	if len(game.DiamondMines()) != 1 {
		t.Errorf("Expected 1 diamond mine, got %d", len(game.DiamondMines()))
	}
	if len(game.HealthWells()) != 1 {
		t.Errorf("Expected 1 health well, got %d", len(game.HealthWells()))
	}
	if game.Board().CountKind(engine.KindImpassable) != 1 {
		t.Errorf("Expected 1 impassable cell, got %d", game.Board().CountKind(engine.KindImpassable))
	}

	// spawn points do not occupy their cells
	if !game.Board().IsUnoccupied(0, 0) {
		t.Error("Expected spawn point cell to stay unoccupied")
	}

	if game.Board().SpawnPointCount(engine.TeamOne) != 1 ||
		game.Board().SpawnPointCount(engine.TeamTwo) != 1 ||
		game.Board().SpawnPointCount(engine.TeamAny) != 1 {
		t.Error("Expected one spawn point for each of S1, S2 and SP")
	}
	if !game.HasValidSpawnPoints(1) {
		t.Error("Expected map to seat one hero per team")
	}
}

func TestBuildRowMajorOrder(t *testing.T) {
	layout := Layout{
		{"DM", "DM"},
		{"DM", "S1"},
	}
	game := layout.Build()

	expected := []engine.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}
	for i, mine := range game.DiamondMines() {
		if mine.ID != i {
			t.Errorf("Expected mine id %d, got %d", i, mine.ID)
		}
		if mine.Pos != expected[i] {
			t.Errorf("Expected mine %d at %+v, got %+v", i, expected[i], mine.Pos)
		}
	}
}

func TestBuildReturnsIndependentGames(t *testing.T) {
	layout, _ := ParseLayout(strings.NewReader(testMap))
	first := layout.Build()
	second := layout.Build()

	first.AddHero(1, 0, "a", engine.TeamOne)
	if !second.Board().IsUnoccupied(1, 0) {
		t.Error("Games built from one layout must not share a board")
	}
}

func TestAnalyze(t *testing.T) {
	layout, _ := ParseLayout(strings.NewReader(testMap))
	stats := Analyze(layout)

	expected := Stats{Size: 4, DiamondMines: 1, HealthWells: 1, Impassable: 1, SpawnOne: 1, SpawnTwo: 1, SpawnAny: 1}
	if stats != expected {
		t.Errorf("Expected %+v, got %+v", expected, stats)
	}
}

func TestStatsMaxTeamSize(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		expected int
	}{
		{"one each", Stats{SpawnOne: 1, SpawnTwo: 1}, 1},
		{"uneven", Stats{SpawnOne: 3, SpawnTwo: 1}, 1},
		{"shared only", Stats{SpawnAny: 5}, 2},
		{"shared evens out", Stats{SpawnOne: 3, SpawnTwo: 1, SpawnAny: 2}, 3},
		{"none", Stats{}, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.stats.MaxTeamSize(); got != test.expected {
				t.Errorf("Expected %d, got %d", test.expected, got)
			}
		})
	}
}
