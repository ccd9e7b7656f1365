package planner

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wricardo/hero-battle/game/config"
	"github.com/wricardo/hero-battle/game/engine"
)

var (
	ErrNoMaps               = errors.New("no maps available")
	ErrInvalidSpawnPoints   = errors.New("invalid spawn points in map")
	ErrBoardSizeMismatch    = errors.New("map size does not match board size")
	ErrDuplicateParticipant = errors.New("duplicate participant id")
	ErrEmptyParticipantID   = errors.New("participant id is empty")
	ErrBoardFull            = errors.New("no free cell left on board")
)

var teamsPerGame = len(engine.RequiredTeams)

// MapRepository lists and loads maps; every Load must return a new Game
type MapRepository interface {
	List() ([]string, error)
	Load(name string) (*engine.Game, error)
}

// Assignment records where one participant ended up
type Assignment struct {
	ParticipantID string          `json:"participant_id"`
	Game          int             `json:"game"`
	Map           string          `json:"map"`
	Team          engine.Team     `json:"team"`
	HeroID        int             `json:"hero_id"`
	Position      engine.Position `json:"position"`
	// Spawned is false when the hero was put on a random free cell instead of a spawn point
	Spawned bool `json:"spawned"`
}

// Plan is the result of matchmaking: ready-to-run games plus a lookup of every participant
type Plan struct {
	Games       []*engine.Game         `json:"-"`
	MapNames    []string               `json:"maps"`
	UserLookup  map[string]Participant `json:"user_lookup"`
	Assignments []Assignment           `json:"assignments"`
}

// AssignmentFor returns the assignment of a participant
func (p *Plan) AssignmentFor(participantID string) (Assignment, bool) {
	for _, a := range p.Assignments {
		if a.ParticipantID == participantID {
			return a, true
		}
	}
	return Assignment{}, false
}

// Planner splits a roster into games and teams and seats every hero on a board
type Planner struct {
	settings config.Settings
	maps     MapRepository
	rand     Rand
	log      zerolog.Logger
}

// Option configures a Planner
type Option func(*Planner)

// WithRand replaces the random source
func WithRand(r Rand) Option {
	return func(p *Planner) {
		p.rand = r
	}
}

// WithLogger sets the logger used for planning output
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Planner) {
		p.log = logger
	}
}

// New creates a planner. Settings are validated up front.
func New(settings config.Settings, maps MapRepository, opts ...Option) (*Planner, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if maps == nil {
		return nil, fmt.Errorf("map repository cannot be nil")
	}

	p := &Planner{
		settings: settings,
		maps:     maps,
		rand:     NewRand(0),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Settings returns the settings the planner was built with
func (p *Planner) Settings() config.Settings {
	return p.settings
}

// NumberOfGames returns how many games are needed to seat participants
// with two teams of at most maxUsersPerTeam each
func NumberOfGames(participants, maxUsersPerTeam int) int {
	if participants <= 0 || maxUsersPerTeam <= 0 {
		return 0
	}
	seats := maxUsersPerTeam * teamsPerGame
	return (participants + seats - 1) / seats
}

// Plan builds the games for a roster. The input slice is not modified.
//
// Participants are drawn at random and dealt to the games in turn (0, 1, ...,
// last, 0, ...). Each game alternates its own teams starting with team one.
// A hero goes to the next spawn point of its team when one is left, and to a
// random free cell otherwise.
func (p *Planner) Plan(participants []Participant) (*Plan, error) {
	if err := checkParticipants(participants); err != nil {
		return nil, err
	}

	numberOfGames := NumberOfGames(len(participants), p.settings.MaxUsersPerTeam)
	p.log.Info().
		Int("users", len(participants)).
		Int("games", numberOfGames).
		Msg("planning games")

	plan := &Plan{
		Games:       make([]*engine.Game, 0, numberOfGames),
		MapNames:    make([]string, 0, numberOfGames),
		UserLookup:  make(map[string]Participant, len(participants)),
		Assignments: make([]Assignment, 0, len(participants)),
	}
	if numberOfGames == 0 {
		return plan, nil
	}

	names, err := p.maps.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}
	if len(names) == 0 {
		return nil, ErrNoMaps
	}

	for i := 0; i < numberOfGames; i++ {
		name := names[p.rand.Intn(len(names))]
		game, err := p.createGame(name)
		if err != nil {
			return nil, err
		}
		plan.Games = append(plan.Games, game)
		plan.MapNames = append(plan.MapNames, name)
	}

	// which team the next hero of each game joins
	nextTeam := make([]engine.Team, numberOfGames)
	for i := range nextTeam {
		nextTeam[i] = engine.TeamOne
	}

	pool := make([]Participant, len(participants))
	copy(pool, participants)

	current := 0
	for len(pool) > 0 {
		team := nextTeam[current]
		nextTeam[current] = team.Other()

		idx := p.rand.Intn(len(pool))
		participant := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		plan.UserLookup[participant.ID] = participant

		assignment, err := p.seat(plan.Games[current], participant.ID, team)
		if err != nil {
			return nil, fmt.Errorf("failed to seat %s in game %d: %w", participant.ID, current, err)
		}
		assignment.Game = current
		assignment.Map = plan.MapNames[current]
		plan.Assignments = append(plan.Assignments, assignment)

		p.log.Debug().
			Str("user", participant.ID).
			Int("game", current).
			Int("team", int(team)).
			Int("hero", assignment.HeroID).
			Bool("spawned", assignment.Spawned).
			Msg("adding user")

		current = (current + 1) % numberOfGames
	}

	// unused spawn points must not leak into turn logic
	for _, game := range plan.Games {
		game.FlushSpawnPoints()
	}

	return plan, nil
}

func (p *Planner) createGame(name string) (*engine.Game, error) {
	game, err := p.maps.Load(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load map %s: %w", name, err)
	}
	if game.Size() != p.settings.BoardSize {
		return nil, fmt.Errorf("%w: map %s is %dx%d, board size is %d",
			ErrBoardSizeMismatch, name, game.Size(), game.Size(), p.settings.BoardSize)
	}
	if !game.HasValidSpawnPoints(p.settings.MaxUsersPerTeam) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSpawnPoints, name)
	}
	game.MaxTurn = p.settings.MaxTurns
	return game, nil
}

// seat puts a hero for the participant on the team's next spawn point, or on a
// random free cell when the team has none left or the spawn cell is taken
func (p *Planner) seat(game *engine.Game, name string, team engine.Team) (Assignment, error) {
	if game.HasSpawnPointsLeft(team) {
		pos, err := game.NextSpawnPoint(team)
		if err != nil {
			return Assignment{}, err
		}
		if hero, ok := game.AddHero(pos.Row, pos.Col, name, team); ok {
			return newAssignment(hero, true), nil
		}
		p.log.Warn().
			Str("user", name).
			Int("row", pos.Row).
			Int("col", pos.Col).
			Msg("spawn point occupied, placing at random")
	}

	free := game.Board().FreeCells()
	if len(free) == 0 {
		return Assignment{}, ErrBoardFull
	}
	pos := free[p.rand.Intn(len(free))]
	hero, ok := game.AddHero(pos.Row, pos.Col, name, team)
	if !ok {
		return Assignment{}, fmt.Errorf("free cell (%d,%d) rejected hero", pos.Row, pos.Col)
	}
	return newAssignment(hero, false), nil
}

func newAssignment(hero *engine.Hero, spawned bool) Assignment {
	return Assignment{
		ParticipantID: hero.Name,
		Team:          hero.Team,
		HeroID:        hero.ID,
		Position:      hero.Pos,
		Spawned:       spawned,
	}
}

func checkParticipants(participants []Participant) error {
	seen := make(map[string]bool, len(participants))
	for i, participant := range participants {
		if participant.ID == "" {
			return fmt.Errorf("%w: entry %d", ErrEmptyParticipantID, i)
		}
		if seen[participant.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, participant.ID)
		}
		seen[participant.ID] = true
	}
	return nil
}
