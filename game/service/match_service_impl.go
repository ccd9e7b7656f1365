package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wricardo/hero-battle/game/config"
	"github.com/wricardo/hero-battle/game/engine"
	"github.com/wricardo/hero-battle/game/match"
	"github.com/wricardo/hero-battle/game/planner"
)

var ErrGameNotFound = errors.New("game not found")

// matchServiceImpl implements the MatchService interface
type matchServiceImpl struct {
	matches MatchRegistry
	maps    MapManager
	planner *planner.Planner
	log     zerolog.Logger

	// the planner's random source is not safe for concurrent use
	mu sync.Mutex
}

// NewMatchService creates a new match service. Planner options (random
// source, logger) are passed through; the logger is also used by the service.
func NewMatchService(matches MatchRegistry, maps MapManager, settings config.Settings, logger zerolog.Logger, opts ...planner.Option) (MatchService, error) {
	opts = append([]planner.Option{planner.WithLogger(logger)}, opts...)
	p, err := planner.New(settings, maps, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create planner: %w", err)
	}

	return &matchServiceImpl{
		matches: matches,
		maps:    maps,
		planner: p,
		log:     logger,
	}, nil
}

// PlanMatches plans games for the roster and stores them as a new match
func (s *matchServiceImpl) PlanMatches(ctx context.Context, participants []planner.Participant) (*MatchInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	plan, err := s.planner.Plan(participants)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to plan matches: %w", err)
	}

	m := s.matches.Create(plan)
	s.log.Info().
		Str("match", m.ID).
		Int("games", m.NumGames()).
		Int("users", len(participants)).
		Msg("match created")

	return s.matchInfo(m)
}

// GetMatch retrieves match information
func (s *matchServiceImpl) GetMatch(ctx context.Context, matchID string) (*MatchInfo, error) {
	m, err := s.matches.Get(matchID)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", matchID, err)
	}

	s.touch(m.ID)

	return s.matchInfo(m)
}

// ListMatches returns all stored matches
func (s *matchServiceImpl) ListMatches(ctx context.Context) ([]*MatchInfo, error) {
	matches := s.matches.List()
	result := make([]*MatchInfo, 0, len(matches))

	for _, m := range matches {
		info, err := s.matchInfo(m)
		if err != nil {
			return nil, err
		}
		result = append(result, info)
	}

	return result, nil
}

// DeleteMatch removes a match
func (s *matchServiceImpl) DeleteMatch(ctx context.Context, matchID string) error {
	if err := s.matches.Delete(matchID); err != nil {
		return fmt.Errorf("failed to delete match %s: %w", matchID, err)
	}
	s.log.Info().Str("match", matchID).Msg("match deleted")
	return nil
}

// GetGame returns a snapshot of one game of a match
func (s *matchServiceImpl) GetGame(ctx context.Context, matchID string, index int) (*GameSummary, error) {
	m, err := s.matches.Get(matchID)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", matchID, err)
	}

	s.touch(m.ID)

	summary, err := summarizeGame(m, index)
	if errors.Is(err, match.ErrGameIndex) {
		return nil, fmt.Errorf("%w: match %s has no game %d", ErrGameNotFound, matchID, index)
	}
	return summary, err
}

// CleanupMatches removes matches that have not been accessed within maxAge
func (s *matchServiceImpl) CleanupMatches(ctx context.Context, maxAge time.Duration) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	removed := s.matches.CleanupExpired(maxAge)
	if removed > 0 {
		s.log.Info().Int("removed", removed).Dur("max_age", maxAge).Msg("expired matches removed")
	}
	return removed, nil
}

// ListMaps describes every map the service can plan with
func (s *matchServiceImpl) ListMaps(ctx context.Context) ([]*MapInfo, error) {
	infos, err := s.maps.Describe()
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}
	return infos, nil
}

// Settings returns the settings used for planning
func (s *matchServiceImpl) Settings() config.Settings {
	return s.planner.Settings()
}

// touch records an access; failures are only logged
func (s *matchServiceImpl) touch(matchID string) {
	if err := s.matches.Touch(matchID); err != nil {
		s.log.Debug().Err(err).Str("match", matchID).Msg("failed to update last access")
	}
}

func (s *matchServiceImpl) matchInfo(m *match.Match) (*MatchInfo, error) {
	info := &MatchInfo{
		ID:             m.ID,
		CreatedAt:      m.CreatedAt,
		LastAccessedAt: m.LastAccessed(),
		Participants:   len(m.Plan.UserLookup),
		Games:          make([]*GameSummary, 0, m.NumGames()),
		Assignments:    m.Plan.Assignments,
	}

	for i := 0; i < m.NumGames(); i++ {
		summary, err := summarizeGame(m, i)
		if err != nil {
			return nil, err
		}
		info.Games = append(info.Games, summary)
	}

	return info, nil
}

func summarizeGame(m *match.Match, index int) (*GameSummary, error) {
	var summary *GameSummary
	err := m.WithGame(index, func(game *engine.Game) error {
		summary = &GameSummary{
			Index:        index,
			Map:          m.Plan.MapNames[index],
			Size:         game.Size(),
			Turn:         game.Turn,
			MaxTurn:      game.MaxTurn,
			Over:         game.IsOver(),
			DiamondMines: len(game.DiamondMines()),
			HealthWells:  len(game.HealthWells()),
			Board:        strings.Split(game.Board().String(), "\n"),
		}

		for _, hero := range game.Heroes() {
			summary.Heroes = append(summary.Heroes, &HeroSummary{
				ID:             hero.ID,
				Name:           hero.Name,
				Code:           hero.Code(),
				Team:           hero.Team,
				SubType:        hero.SubType,
				Position:       hero.Pos,
				Health:         hero.Health,
				Dead:           hero.Dead,
				MineCount:      hero.MineCount,
				DiamondsEarned: hero.DiamondsEarned,
			})
		}
		return nil
	})
	return summary, err
}
