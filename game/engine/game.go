package engine

import "fmt"

// Game owns one board and everything placed on it for a single match.
// A hero's id is its index in the hero list and never changes.
type Game struct {
	board        *Board
	heroes       []*Hero
	diamondMines []*DiamondMine
	healthWells  []*HealthWell

	Turn    int `json:"turn"`
	MaxTurn int `json:"max_turn"`
}

// NewGame creates a game with an empty size x size board
func NewGame(size int) *Game {
	return &Game{
		board:        NewBoard(size),
		heroes:       []*Hero{},
		diamondMines: []*DiamondMine{},
		healthWells:  []*HealthWell{},
	}
}

// Board returns the game board
func (g *Game) Board() *Board {
	return g.board
}

// Size returns the board edge length
func (g *Game) Size() int {
	return g.board.Size()
}

// AddDiamondMine places a new unowned mine during map setup
func (g *Game) AddDiamondMine(row, col int) *DiamondMine {
	mine := newDiamondMine(len(g.diamondMines), row, col, g)
	g.diamondMines = append(g.diamondMines, mine)
	g.board.set(mine)
	return mine
}

// AddHealthWell places a new health well during map setup
func (g *Game) AddHealthWell(row, col int) *HealthWell {
	well := NewHealthWell(len(g.healthWells), row, col)
	g.healthWells = append(g.healthWells, well)
	g.board.set(well)
	return well
}

// AddImpassable blocks a cell for the rest of the game
func (g *Game) AddImpassable(row, col int) {
	g.board.set(Impassable{Pos: Position{Row: row, Col: col}})
}

// AddSpawnPoint registers a spawn point for team
func (g *Game) AddSpawnPoint(row, col int, team Team) {
	g.board.RegisterSpawnPoint(row, col, team)
}

// AddHero creates a hero on an unoccupied cell and assigns it the next id.
// It returns false, leaving the game untouched, when the cell is taken or off the board.
func (g *Game) AddHero(row, col int, name string, team Team) (*Hero, bool) {
	hero := NewHero(row, col, name, team)
	if !g.board.Place(hero) {
		return nil, false
	}
	hero.ID = len(g.heroes)
	g.heroes = append(g.heroes, hero)
	return hero, true
}

// HasSpawnPointsLeft delegates to the board
func (g *Game) HasSpawnPointsLeft(team Team) bool {
	return g.board.HasSpawnPointsLeft(team)
}

// NextSpawnPoint delegates to the board
func (g *Game) NextSpawnPoint(team Team) (Position, error) {
	return g.board.NextSpawnPoint(team)
}

// FlushSpawnPoints delegates to the board
func (g *Game) FlushSpawnPoints() {
	g.board.FlushSpawnPoints()
}

// HasValidSpawnPoints delegates to the board
func (g *Game) HasValidSpawnPoints(maxPerTeam int) bool {
	return g.board.HasValidSpawnPoints(maxPerTeam)
}

// Heroes returns every hero in id order
func (g *Game) Heroes() []*Hero {
	return g.heroes
}

// HeroByID implements HeroLookup
func (g *Game) HeroByID(id int) (*Hero, bool) {
	if id < 0 || id >= len(g.heroes) {
		return nil, false
	}
	return g.heroes[id], true
}

// HeroByName returns the first hero with the given name
func (g *Game) HeroByName(name string) (*Hero, bool) {
	for _, h := range g.heroes {
		if h.Name == name {
			return h, true
		}
	}
	return nil, false
}

// TeamHeroes returns the heroes of one team in id order
func (g *Game) TeamHeroes(team Team) []*Hero {
	var result []*Hero
	for _, h := range g.heroes {
		if h.Team == team {
			result = append(result, h)
		}
	}
	return result
}

// LivingHeroes returns every hero that is not dead
func (g *Game) LivingHeroes() []*Hero {
	var result []*Hero
	for _, h := range g.heroes {
		if !h.Dead {
			result = append(result, h)
		}
	}
	return result
}

// DiamondMines returns the mines in id order
func (g *Game) DiamondMines() []*DiamondMine {
	return g.diamondMines
}

// DiamondMineByID returns the mine with the given id
func (g *Game) DiamondMineByID(id int) (*DiamondMine, bool) {
	if id < 0 || id >= len(g.diamondMines) {
		return nil, false
	}
	return g.diamondMines[id], true
}

// HealthWells returns the wells in id order
func (g *Game) HealthWells() []*HealthWell {
	return g.healthWells
}

// IsOver reports whether the turn limit has been reached.
// The turn driver decides when to consult it.
func (g *Game) IsOver() bool {
	return g.MaxTurn > 0 && g.Turn >= g.MaxTurn
}

// String summarizes the game for logs
func (g *Game) String() string {
	return fmt.Sprintf("game{size=%d heroes=%d mines=%d wells=%d turn=%d/%d}",
		g.Size(), len(g.heroes), len(g.diamondMines), len(g.healthWells), g.Turn, g.MaxTurn)
}
