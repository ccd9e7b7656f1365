// Package maps loads hero battle maps.
//
// Map Format:
//
// A map is UTF-8 text, one board row per line, cells separated by '|'. Each
// cell is a two-character token:
//   - DM: diamond mine
//   - HW: health well
//   - IM: impassable terrain
//   - S1, S2: spawn point for team one or team two
//   - SP: spawn point for either team
//
// Any other token, including blanks, is an unoccupied cell. The number of
// rows sets the board size.
//
// Validation:
//
// Validate checks a layout against a board size and team size: known tokens
// only, enough spawn points for two full teams, and every spawn point, mine
// and well reachable on foot. Unknown tokens still load as unoccupied cells.
//
// Usage:
//
//	manager, err := maps.NewManager("maps")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	names, err := manager.List()
//	game, err := manager.Load(names[0])
package maps
