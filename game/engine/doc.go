// Package engine provides the game-state model for hero battles.
//
// The engine package implements:
//   - A square board where each cell holds exactly one occupant
//   - Heroes with health, team, diamond mine ownership and combat statistics
//   - Diamond mines, health wells and impassable terrain
//   - Per-team spawn point queues used while seating heroes
//
// Core Types:
//
// Game owns a Board together with the heroes, diamond mines and health wells
// placed on it. Occupant is the closed set of things a cell can hold; callers
// switch on Occupant.Kind to handle each variant.
//
// Usage:
//
//	game := engine.NewGame(12)
//	game.AddDiamondMine(3, 4)
//	game.AddSpawnPoint(0, 0, engine.TeamOne)
//
//	pos, err := game.NextSpawnPoint(engine.TeamOne)
//	if err != nil {
//		log.Fatal(err)
//	}
//	hero, ok := game.AddHero(pos.Row, pos.Col, "octocat", engine.TeamOne)
//
// Ownership:
//
// Heroes hold diamond mines by mine id, and a mine holds its owner by hero id,
// resolved through the Game. Handing a mine to a new owner always revokes it
// from the previous one first, so a mine never has two owners. Mines are
// only created through Game.AddDiamondMine, and heroes of another game cannot
// capture them.
//
// Turns:
//
// Game carries Turn and MaxTurn and every hero carries LastActiveTurn, but
// advancing turns is left to the caller driving the match. A Game has no
// internal locking; callers that share one across goroutines must serialize
// access themselves.
package engine
