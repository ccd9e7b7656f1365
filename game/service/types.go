package service

import (
	"time"

	"github.com/wricardo/hero-battle/game/engine"
	"github.com/wricardo/hero-battle/game/planner"
)

// MatchInfo provides information about a planned match
type MatchInfo struct {
	ID             string               `json:"id"`
	CreatedAt      time.Time            `json:"created_at"`
	LastAccessedAt time.Time            `json:"last_accessed_at"`
	Participants   int                  `json:"participants"`
	Games          []*GameSummary       `json:"games"`
	Assignments    []planner.Assignment `json:"assignments"`
}

// GameSummary is a snapshot of one game, taken under the game's lock
type GameSummary struct {
	Index        int            `json:"index"`
	Map          string         `json:"map"`
	Size         int            `json:"size"`
	Turn         int            `json:"turn"`
	MaxTurn      int            `json:"max_turn"`
	Over         bool           `json:"over"`
	DiamondMines int            `json:"diamond_mines"`
	HealthWells  int            `json:"health_wells"`
	Board        []string       `json:"board"` // one "|"-joined row of cell codes per line
	Heroes       []*HeroSummary `json:"heroes"`
}

// HeroSummary is the public view of a hero
type HeroSummary struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Code           string          `json:"code"`
	Team           engine.Team     `json:"team"` // 0 or 1; prints as its spawn token
	SubType        string          `json:"sub_type"`
	Position       engine.Position `json:"position"`
	Health         int             `json:"health"`
	Dead           bool            `json:"dead"`
	MineCount      int             `json:"mine_count"`
	DiamondsEarned int             `json:"diamonds_earned"`
}

// MapInfo provides information about a map file
type MapInfo struct {
	Name         string         `json:"name"`
	Filename     string         `json:"filename"`
	Size         int            `json:"size"`
	DiamondMines int            `json:"diamond_mines"`
	HealthWells  int            `json:"health_wells"`
	Impassable   int            `json:"impassable"`
	SpawnPoints  map[string]int `json:"spawn_points"` // keyed by token: S1, S2, SP
	MaxTeamSize  int            `json:"max_team_size"`
}
