package engine

import "fmt"

// Board is a fixed-size square grid. Every cell holds exactly one occupant.
type Board struct {
	size        int
	cells       [][]Occupant
	spawnPoints map[Team][]Position
}

// NewBoard creates a size x size board with every cell unoccupied
func NewBoard(size int) *Board {
	if size < 0 {
		size = 0
	}
	cells := make([][]Occupant, size)
	for row := range cells {
		cells[row] = make([]Occupant, size)
		for col := range cells[row] {
			cells[row][col] = Unoccupied{Pos: Position{Row: row, Col: col}}
		}
	}

	return &Board{
		size:        size,
		cells:       cells,
		spawnPoints: make(map[Team][]Position),
	}
}

// Size returns the board edge length
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether row and col are both within [0, size)
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// At returns the occupant of a cell
func (b *Board) At(row, col int) (Occupant, error) {
	if !b.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.size, b.size)
	}
	return b.cells[row][col], nil
}

// IsUnoccupied reports whether the cell exists and holds nothing
func (b *Board) IsUnoccupied(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	return b.cells[row][col].Kind() == KindUnoccupied
}

// Place puts occ on its cell if that cell is currently unoccupied.
// It returns false without changing anything when the placement is rejected.
func (b *Board) Place(occ Occupant) bool {
	pos := occ.Position()
	if !b.IsUnoccupied(pos.Row, pos.Col) {
		return false
	}
	b.cells[pos.Row][pos.Col] = occ
	return true
}

// set overwrites a cell unconditionally. Only used for map setup, before any hero exists.
func (b *Board) set(occ Occupant) {
	pos := occ.Position()
	if !b.InBounds(pos.Row, pos.Col) {
		return
	}
	b.cells[pos.Row][pos.Col] = occ
}

// Remove resets a cell to unoccupied and returns what was there
func (b *Board) Remove(row, col int) (Occupant, error) {
	prev, err := b.At(row, col)
	if err != nil {
		return nil, err
	}
	b.cells[row][col] = Unoccupied{Pos: Position{Row: row, Col: col}}
	return prev, nil
}

// RegisterSpawnPoint appends a coordinate to the team's spawn queue.
// The cell itself is not occupied.
func (b *Board) RegisterSpawnPoint(row, col int, team Team) {
	b.spawnPoints[team] = append(b.spawnPoints[team], Position{Row: row, Col: col})
}

// SpawnPointCount returns the number of unused spawn points registered for exactly this team
func (b *Board) SpawnPointCount(team Team) int {
	return len(b.spawnPoints[team])
}

// HasSpawnPointsLeft reports whether NextSpawnPoint(team) would succeed.
// Teams fall back to the shared TeamAny queue once their own queue is empty.
func (b *Board) HasSpawnPointsLeft(team Team) bool {
	if len(b.spawnPoints[team]) > 0 {
		return true
	}
	return team != TeamAny && len(b.spawnPoints[TeamAny]) > 0
}

// NextSpawnPoint dequeues the next spawn point for the team.
// Callers must check HasSpawnPointsLeft first; an empty queue is ErrNoSpawnPoints.
func (b *Board) NextSpawnPoint(team Team) (Position, error) {
	queue := team
	if len(b.spawnPoints[queue]) == 0 {
		queue = TeamAny
	}
	points := b.spawnPoints[queue]
	if len(points) == 0 {
		return Position{}, fmt.Errorf("%w for team %s", ErrNoSpawnPoints, team)
	}

	next := points[0]
	b.spawnPoints[queue] = points[1:]
	return next, nil
}

// FlushSpawnPoints discards every unused spawn point in every queue
func (b *Board) FlushSpawnPoints() {
	b.spawnPoints = make(map[Team][]Position)
}

// HasValidSpawnPoints reports whether the spawn points can seat maxPerTeam heroes on
// each required team, counting shared SP points toward either team but only once overall.
func (b *Board) HasValidSpawnPoints(maxPerTeam int) bool {
	shared := len(b.spawnPoints[TeamAny])
	total := shared
	for _, team := range RequiredTeams {
		own := len(b.spawnPoints[team])
		if own+shared < maxPerTeam {
			return false
		}
		total += own
	}
	return total >= maxPerTeam*len(RequiredTeams)
}

// FreeCells lists, in row-major order, every unoccupied cell that is not
// reserved by a pending spawn point
func (b *Board) FreeCells() []Position {
	reserved := make(map[Position]bool)
	for _, points := range b.spawnPoints {
		for _, p := range points {
			reserved[p] = true
		}
	}

	var free []Position
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			pos := Position{Row: row, Col: col}
			if b.cells[row][col].Kind() == KindUnoccupied && !reserved[pos] {
				free = append(free, pos)
			}
		}
	}
	return free
}

// Codes returns the board as a grid of occupant codes
func (b *Board) Codes() [][]string {
	codes := make([][]string, b.size)
	for row := range b.cells {
		codes[row] = make([]string, b.size)
		for col, occ := range b.cells[row] {
			codes[row][col] = occ.Code()
		}
	}
	return codes
}

// String renders the board in the map file format, one row per line
func (b *Board) String() string {
	out := make([]byte, 0, b.size*b.size*3)
	for row, codes := range b.Codes() {
		if row > 0 {
			out = append(out, '\n')
		}
		for col, code := range codes {
			if col > 0 {
				out = append(out, '|')
			}
			out = append(out, code...)
		}
	}
	return string(out)
}
