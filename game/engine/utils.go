package engine

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Neighbors returns the in-bounds cells north, east, south and west of pos
func (b *Board) Neighbors(pos Position) []Position {
	directions := []struct{ dr, dc int }{
		{-1, 0}, // North
		{0, 1},  // East
		{1, 0},  // South
		{0, -1}, // West
	}

	var result []Position
	for _, d := range directions {
		row, col := pos.Row+d.dr, pos.Col+d.dc
		if b.InBounds(row, col) {
			result = append(result, Position{Row: row, Col: col})
		}
	}
	return result
}

// CountKind counts the cells holding a given kind of occupant
func (b *Board) CountKind(kind OccupantKind) int {
	count := 0
	for _, row := range b.cells {
		for _, occ := range row {
			if occ.Kind() == kind {
				count++
			}
		}
	}
	return count
}
