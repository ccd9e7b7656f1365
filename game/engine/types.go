package engine

import "errors"

// Team identifies which side a hero fights for
type Team int

const (
	TeamOne Team = 0
	TeamTwo Team = 1
	// TeamAny is the free-for-all marker; map token SP registers spawn points for it
	TeamAny Team = -1
)

const (
	DefaultBoardSize = 12
	MaxHealth        = 100
	DefaultHealRate  = 30
	DefaultMineValue = 1

	// NoID marks a hero that has not been added to a game yet and a mine without owner
	NoID = -1

	SubTypeBlackKnight = "BlackKnight"
	SubTypeAdventurer  = "Adventurer"
)

var (
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
	ErrNoSpawnPoints = errors.New("no spawn points left")
)

// RequiredTeams are the teams a map must be able to seat
var RequiredTeams = []Team{TeamOne, TeamTwo}

// String returns the map token used for the team's spawn points
func (t Team) String() string {
	switch t {
	case TeamOne:
		return "S1"
	case TeamTwo:
		return "S2"
	case TeamAny:
		return "SP"
	}
	return "team?"
}

// Other returns the opposing team; TeamAny has no opponent and is returned unchanged
func (t Team) Other() Team {
	switch t {
	case TeamOne:
		return TeamTwo
	case TeamTwo:
		return TeamOne
	}
	return t
}

// Position represents row/col coordinates, measured from the top-left corner
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
