// Package config provides engine settings for hero battles.
//
// The config package handles:
//   - Default settings (12x12 boards, 12 heroes per team, 1250 turns)
//   - Merging host-supplied overrides over the defaults
//   - Loading settings from YAML files
//   - Validation of the merged result
//
// Settings Format:
//
//	boardSize: 12
//	maxUsersPerTeam: 12
//	maxTurns: 1250
//	tournament: spring   # unknown keys are kept in Extra
//
// Keys the engine does not know about are passed through untouched so hosts
// can carry their own options alongside the engine's.
//
// Usage:
//
//	settings, err := config.LoadFile("battle.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	settings, err = config.Merge(map[string]any{"maxUsersPerTeam": 4})
package config
