package engine

// HeroLookup resolves hero identities; Game implements it
type HeroLookup interface {
	HeroByID(id int) (*Hero, bool)
}

// DiamondMine yields diamonds to whichever hero currently owns it.
// The owner is stored by identity and resolved through the game's roster.
type DiamondMine struct {
	ID      int      `json:"id"`
	Pos     Position `json:"position"`
	Value   int      `json:"value"`
	OwnerID int      `json:"owner_id"`

	heroes HeroLookup
}

// newDiamondMine creates an unowned mine whose owners are resolved through heroes.
// Mines are only built by Game.AddDiamondMine, so heroes is never nil.
func newDiamondMine(id, row, col int, heroes HeroLookup) *DiamondMine {
	return &DiamondMine{
		ID:      id,
		Pos:     Position{Row: row, Col: col},
		Value:   DefaultMineValue,
		OwnerID: NoID,
		heroes:  heroes,
	}
}

func (m *DiamondMine) Kind() OccupantKind   { return KindDiamondMine }
func (m *DiamondMine) Position() Position   { return m.Pos }
func (m *DiamondMine) Code() string         { return "DM" }
func (m *DiamondMine) BlocksMovement() bool { return true }
func (m *DiamondMine) occupant()            {}

// HasOwner reports whether some hero controls the mine
func (m *DiamondMine) HasOwner() bool {
	return m.OwnerID != NoID
}

// Owner returns the hero controlling the mine
func (m *DiamondMine) Owner() (*Hero, bool) {
	if !m.HasOwner() || m.heroes == nil {
		return nil, false
	}
	return m.heroes.HeroByID(m.OwnerID)
}

// onRoster reports whether h is the hero the mine's game knows under h.ID
func (m *DiamondMine) onRoster(h *Hero) bool {
	if m.heroes == nil {
		return false
	}
	got, ok := m.heroes.HeroByID(h.ID)
	return ok && got == h
}

// UpdateOwner hands the mine to h. The previous owner loses it first, so at
// most one hero ever holds the mine. Heroes from another game are ignored.
func (m *DiamondMine) UpdateOwner(h *Hero) {
	if m.OwnerID == h.ID || !m.onRoster(h) {
		return
	}
	if prev, ok := m.Owner(); ok && prev.OwnsMine(m.ID) {
		prev.LoseMine(m)
	}
	m.OwnerID = h.ID
}

// ClearOwner removes the current owner, if any
func (m *DiamondMine) ClearOwner() {
	if prev, ok := m.Owner(); ok {
		prev.LoseMine(m)
	}
	m.OwnerID = NoID
}

// HealthWell heals the heroes that draw from it, once per turn
type HealthWell struct {
	ID       int      `json:"id"`
	Pos      Position `json:"position"`
	HealRate int      `json:"heal_rate"`
}

// NewHealthWell creates a well with DefaultHealRate
func NewHealthWell(id, row, col int) *HealthWell {
	return &HealthWell{
		ID:       id,
		Pos:      Position{Row: row, Col: col},
		HealRate: DefaultHealRate,
	}
}

func (w *HealthWell) Kind() OccupantKind   { return KindHealthWell }
func (w *HealthWell) Position() Position   { return w.Pos }
func (w *HealthWell) Code() string         { return "HW" }
func (w *HealthWell) BlocksMovement() bool { return true }
func (w *HealthWell) occupant()            {}

// Heal applies one turn of healing to a living hero and returns the health restored
func (w *HealthWell) Heal(h *Hero) int {
	if h.Dead {
		return 0
	}
	return h.HealDamage(w.HealRate)
}
