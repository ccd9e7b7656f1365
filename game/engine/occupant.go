package engine

// OccupantKind enumerates everything a board cell can hold
type OccupantKind int

const (
	KindUnoccupied OccupantKind = iota
	KindImpassable
	KindDiamondMine
	KindHealthWell
	KindHero
)

func (k OccupantKind) String() string {
	switch k {
	case KindUnoccupied:
		return "Unoccupied"
	case KindImpassable:
		return "Impassable"
	case KindDiamondMine:
		return "DiamondMine"
	case KindHealthWell:
		return "HealthWell"
	case KindHero:
		return "Hero"
	}
	return "Unknown"
}

// Occupant is the closed set of values a cell can hold: Unoccupied, Impassable,
// *DiamondMine, *HealthWell and *Hero. Callers switch on Kind() to handle each.
type Occupant interface {
	Kind() OccupantKind
	Position() Position
	// Code is the short token used when dumping a board, matching the map file tokens
	Code() string
	BlocksMovement() bool

	occupant()
}

// Unoccupied is the placeholder held by every empty cell
type Unoccupied struct {
	Pos Position `json:"position"`
}

func (u Unoccupied) Kind() OccupantKind   { return KindUnoccupied }
func (u Unoccupied) Position() Position   { return u.Pos }
func (u Unoccupied) Code() string         { return "  " }
func (u Unoccupied) BlocksMovement() bool { return false }
func (u Unoccupied) occupant()            {}

// Impassable terrain is set at map-load time and never removed
type Impassable struct {
	Pos Position `json:"position"`
}

func (i Impassable) Kind() OccupantKind   { return KindImpassable }
func (i Impassable) Position() Position   { return i.Pos }
func (i Impassable) Code() string         { return "IM" }
func (i Impassable) BlocksMovement() bool { return true }
func (i Impassable) occupant()            {}
