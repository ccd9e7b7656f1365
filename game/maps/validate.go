package maps

import (
	"fmt"

	"github.com/wricardo/hero-battle/game/engine"
)

// ValidationResult captures the outcome of validating a single map.
// Info holds notes about checks that passed.
type ValidationResult struct {
	Map    string   `json:"map"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
	Info   []string `json:"info"`
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) note(format string, args ...any) {
	r.Info = append(r.Info, fmt.Sprintf(format, args...))
}

var knownTokens = map[string]bool{
	"":               true,
	TokenDiamondMine: true,
	TokenHealthWell:  true,
	TokenImpassable:  true,
	TokenSpawnOne:    true,
	TokenSpawnTwo:    true,
	TokenSpawnAny:    true,
}

// Validate checks that a layout can host a game of the given board size with
// maxPerTeam heroes on each team:
//   - the layout is boardSize x boardSize and uses only known tokens
//   - spawn points can seat both full teams
//   - every spawn point, mine and well is reachable from the first spawn point
func Validate(name string, layout Layout, boardSize, maxPerTeam int) ValidationResult {
	result := ValidationResult{
		Map:    name,
		Valid:  true,
		Errors: []string{},
		Info:   []string{},
	}

	if layout.Size() == 0 {
		result.fail("Layout is empty")
		return result
	}
	if layout.Size() != boardSize {
		result.fail("Map is %dx%d, board size is %d", layout.Size(), layout.Size(), boardSize)
	}

	for row, tokens := range layout {
		for col, token := range tokens {
			if !knownTokens[token] {
				result.fail("Unknown token %q at (%d,%d)", token, row, col)
			}
		}
	}

	stats := Analyze(layout)
	if !layout.Build().HasValidSpawnPoints(maxPerTeam) {
		result.fail("Spawn points (S1=%d S2=%d SP=%d) cannot seat %d per team, at most %d",
			stats.SpawnOne, stats.SpawnTwo, stats.SpawnAny, maxPerTeam, stats.MaxTeamSize())
	} else {
		result.note("Spawn points seat up to %d per team", stats.MaxTeamSize())
	}

	validateConnectivity(layout, &result)
	return result
}

// validateConnectivity flood-fills walkable cells from the first spawn point.
// Mines and wells block movement, so they count as reachable when any neighbor is.
func validateConnectivity(layout Layout, result *ValidationResult) {
	board := engine.NewBoard(layout.Size())

	var spawns, targets []engine.Position
	for row, tokens := range layout {
		for col, token := range tokens {
			pos := engine.Position{Row: row, Col: col}
			switch token {
			case TokenSpawnOne, TokenSpawnTwo, TokenSpawnAny:
				spawns = append(spawns, pos)
			case TokenDiamondMine, TokenHealthWell:
				targets = append(targets, pos)
			}
		}
	}

	if len(spawns) == 0 {
		result.fail("No spawn points found for connectivity test")
		return
	}

	walkable := func(pos engine.Position) bool {
		switch layout[pos.Row][pos.Col] {
		case "", TokenSpawnOne, TokenSpawnTwo, TokenSpawnAny:
			return true
		}
		return false
	}

	visited := map[engine.Position]bool{spawns[0]: true}
	queue := []engine.Position{spawns[0]}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range board.Neighbors(current) {
			if !visited[next] && walkable(next) {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	unreachable := 0
	for _, spawn := range spawns {
		if !visited[spawn] {
			unreachable++
			result.fail("Unreachable: spawn point at (%d,%d)", spawn.Row, spawn.Col)
		}
	}
	for _, target := range targets {
		reached := false
		for _, next := range board.Neighbors(target) {
			if visited[next] {
				reached = true
				break
			}
		}
		if !reached {
			unreachable++
			result.fail("Unreachable: %s at (%d,%d)", layout[target.Row][target.Col], target.Row, target.Col)
		}
	}

	if unreachable == 0 {
		result.note("Connectivity: all %d spawn points and %d mines/wells reachable", len(spawns), len(targets))
	}

	// straight-line lower bound, ignoring obstacles
	nearest := -1
	for _, target := range targets {
		if layout[target.Row][target.Col] != TokenDiamondMine {
			continue
		}
		for _, spawn := range spawns {
			if d := engine.ManhattanDistance(spawn, target); nearest < 0 || d < nearest {
				nearest = d
			}
		}
	}
	if nearest >= 0 {
		result.note("Nearest diamond mine is %d cells from a spawn point", nearest)
	}
}
