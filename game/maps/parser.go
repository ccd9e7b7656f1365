package maps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wricardo/hero-battle/game/engine"
)

// Map tokens
const (
	TokenDiamondMine = "DM"
	TokenHealthWell  = "HW"
	TokenImpassable  = "IM"
	TokenSpawnOne    = "S1"
	TokenSpawnTwo    = "S2"
	TokenSpawnAny    = "SP"

	CellSeparator = "|"
)

var ErrEmptyMap = errors.New("map is empty")

// Layout is a parsed map: one token per cell, square, row-major
type Layout [][]string

// Size returns the board size the layout describes
func (l Layout) Size() int {
	return len(l)
}

// ParseLayout reads a map file. Rows are separated by newlines and cells by '|'.
// Trailing blank lines are ignored; the board is as wide as it is tall, so long
// rows are truncated and short rows are padded with unoccupied cells.
func ParseLayout(r io.Reader) (Layout, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}

	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	size := len(rows)
	layout := make(Layout, size)
	for i, row := range rows {
		tokens := strings.Split(row, CellSeparator)
		layout[i] = make([]string, size)
		for j := 0; j < size && j < len(tokens); j++ {
			layout[i][j] = strings.TrimSpace(tokens[j])
		}
	}

	return layout, nil
}

// Build creates a fresh game from the layout, making one setup call per token
// in row-major order
func (l Layout) Build() *engine.Game {
	game := engine.NewGame(l.Size())

	for row, tokens := range l {
		for col, token := range tokens {
			switch token {
			case TokenDiamondMine:
				game.AddDiamondMine(row, col)
			case TokenHealthWell:
				game.AddHealthWell(row, col)
			case TokenImpassable:
				game.AddImpassable(row, col)
			case TokenSpawnOne:
				game.AddSpawnPoint(row, col, engine.TeamOne)
			case TokenSpawnTwo:
				game.AddSpawnPoint(row, col, engine.TeamTwo)
			case TokenSpawnAny:
				game.AddSpawnPoint(row, col, engine.TeamAny)
			default:
				// Unoccupied
			}
		}
	}

	return game
}

// Parse reads a map file and builds the game it describes
func Parse(r io.Reader) (*engine.Game, error) {
	layout, err := ParseLayout(r)
	if err != nil {
		return nil, err
	}
	return layout.Build(), nil
}

// Stats summarizes what a layout contains
type Stats struct {
	Size         int `json:"size"`
	DiamondMines int `json:"diamond_mines"`
	HealthWells  int `json:"health_wells"`
	Impassable   int `json:"impassable"`
	SpawnOne     int `json:"spawn_team_one"`
	SpawnTwo     int `json:"spawn_team_two"`
	SpawnAny     int `json:"spawn_any"`
}

// Analyze counts the tokens of a layout
func Analyze(layout Layout) Stats {
	stats := Stats{Size: layout.Size()}
	for _, tokens := range layout {
		for _, token := range tokens {
			switch token {
			case TokenDiamondMine:
				stats.DiamondMines++
			case TokenHealthWell:
				stats.HealthWells++
			case TokenImpassable:
				stats.Impassable++
			case TokenSpawnOne:
				stats.SpawnOne++
			case TokenSpawnTwo:
				stats.SpawnTwo++
			case TokenSpawnAny:
				stats.SpawnAny++
			}
		}
	}
	return stats
}

// MaxTeamSize returns the largest per-team roster the layout's spawn points can seat
func (s Stats) MaxTeamSize() int {
	n := (s.SpawnOne + s.SpawnTwo + s.SpawnAny) / 2
	if one := s.SpawnOne + s.SpawnAny; one < n {
		n = one
	}
	if two := s.SpawnTwo + s.SpawnAny; two < n {
		n = two
	}
	return n
}
