package service

import (
	"context"
	"time"

	"github.com/wricardo/hero-battle/game/config"
	"github.com/wricardo/hero-battle/game/engine"
	"github.com/wricardo/hero-battle/game/match"
	"github.com/wricardo/hero-battle/game/planner"
)

// MatchService defines the operations a host uses to plan and inspect matches
type MatchService interface {
	// Matches
	PlanMatches(ctx context.Context, participants []planner.Participant) (*MatchInfo, error)
	GetMatch(ctx context.Context, matchID string) (*MatchInfo, error)
	ListMatches(ctx context.Context) ([]*MatchInfo, error)
	DeleteMatch(ctx context.Context, matchID string) error
	CleanupMatches(ctx context.Context, maxAge time.Duration) (int, error)

	// Games
	GetGame(ctx context.Context, matchID string, index int) (*GameSummary, error)

	// Maps and settings
	ListMaps(ctx context.Context) ([]*MapInfo, error)
	Settings() config.Settings
}

// MatchRegistry defines match storage operations
type MatchRegistry interface {
	Create(plan *planner.Plan) *match.Match
	Get(id string) (*match.Match, error)
	List() []*match.Match
	Delete(id string) error
	Touch(id string) error
	CleanupExpired(maxAge time.Duration) int
}

// MapManager lists, loads and describes maps
type MapManager interface {
	List() ([]string, error)
	Load(name string) (*engine.Game, error)
	Describe() ([]*MapInfo, error)
}
