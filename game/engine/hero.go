package engine

import (
	"fmt"
	"sort"
)

// Hero is a participant's avatar on the board
type Hero struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Pos     Position `json:"position"`
	Team    Team     `json:"team"`
	SubType string   `json:"sub_type"`

	Health int  `json:"health"`
	Dead   bool `json:"dead"`

	// Mines are tracked by identity only; DiamondMine keeps the reverse relation
	MinesOwned    map[int]bool `json:"mines_owned"`
	MineCount     int          `json:"mine_count"`
	MinesCaptured int          `json:"mines_captured"`
	MinesLost     int          `json:"mines_lost"`

	DiamondsEarned  int   `json:"diamonds_earned"`
	DamageDone      int   `json:"damage_done"`
	HeroesKilled    []int `json:"heroes_killed"`
	LastActiveTurn  int   `json:"last_active_turn"`
	GravesRobbed    int   `json:"graves_robbed"`
	HealthRecovered int   `json:"health_recovered"`
	HealthGiven     int   `json:"health_given"`

	Won bool `json:"won"`
}

// NewHero creates a hero at full health. The id stays NoID until a Game adopts it.
func NewHero(row, col int, name string, team Team) *Hero {
	subType := SubTypeAdventurer
	if team == TeamOne {
		subType = SubTypeBlackKnight
	}

	return &Hero{
		ID:           NoID,
		Name:         name,
		Pos:          Position{Row: row, Col: col},
		Team:         team,
		SubType:      subType,
		Health:       MaxHealth,
		MinesOwned:   make(map[int]bool),
		HeroesKilled: []int{},
	}
}

func (h *Hero) Kind() OccupantKind   { return KindHero }
func (h *Hero) Position() Position   { return h.Pos }
func (h *Hero) BlocksMovement() bool { return true }
func (h *Hero) occupant()            {}

// Code returns "H" followed by the zero-padded id, e.g. H07.
// The hero must have been added to a game.
func (h *Hero) Code() string {
	if h.ID == NoID {
		panic(fmt.Sprintf("engine: hero %q has no id", h.Name))
	}
	return fmt.Sprintf("H%02d", h.ID)
}

// KilledHero records other as killed by this hero. It does not touch other.
func (h *Hero) KilledHero(other *Hero) {
	h.HeroesKilled = append(h.HeroesKilled, other.ID)
}

// TakeDamage subtracts amount from health and returns the damage actually taken:
// when the hit is lethal only the part needed to reach zero is counted.
// A dead hero takes no further damage.
func (h *Hero) TakeDamage(amount int) int {
	if h.Dead {
		return 0
	}

	h.Health -= amount
	if h.Health <= 0 {
		h.Dead = true
		return amount + h.Health
	}
	return amount
}

// HealDamage adds amount to health, capped at MaxHealth, and returns the amount applied
func (h *Hero) HealDamage(amount int) int {
	start := h.Health

	h.Health += amount
	if h.Health > MaxHealth {
		h.Health = MaxHealth
	}

	healed := h.Health - start
	h.HealthRecovered += healed
	return healed
}

// OwnsMine reports whether the mine with the given id belongs to this hero
func (h *Hero) OwnsMine(mineID int) bool {
	return h.MinesOwned[mineID]
}

// OwnedMineIDs returns the owned mine ids in ascending order
func (h *Hero) OwnedMineIDs() []int {
	ids := make([]int, 0, len(h.MinesOwned))
	for id := range h.MinesOwned {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// CaptureMine takes control of mine at the price of healthCost health.
// Nothing happens if the hero already owns it or the mine belongs to another
// game; if the cost kills the hero the mine is not taken.
func (h *Hero) CaptureMine(mine *DiamondMine, healthCost int) {
	if h.OwnsMine(mine.ID) || !mine.onRoster(h) {
		return
	}

	h.TakeDamage(healthCost)
	if h.Dead {
		return
	}

	h.MinesOwned[mine.ID] = true
	h.MineCount++
	h.MinesCaptured++

	mine.UpdateOwner(h)
}

// LoseMine gives up control of mine; a no-op when it is not owned
func (h *Hero) LoseMine(mine *DiamondMine) {
	if !h.OwnsMine(mine.ID) || !mine.onRoster(h) {
		return
	}
	h.MineCount--
	h.MinesLost++
	delete(h.MinesOwned, mine.ID)
}
