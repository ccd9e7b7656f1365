// Package service provides the business logic layer for hero battles.
//
// The service package implements:
//   - Matchmaking of a roster into stored matches
//   - Read access to matches and their games
//   - Map discovery for hosts choosing what to play on
//
// Core Interfaces:
//
// MatchService is the main service interface used by hosts and the CLI.
// MatchRegistry stores planned matches; MapManager lists, loads and
// describes map files.
//
// Architecture:
//
// The service sits between a host and the engine. Planning goes through the
// planner package, and every planned set of games is stored as a match in
// the registry. Game snapshots are taken under the per-game lock of the
// match, so a host driving turns concurrently never sees a half-applied turn.
//
// Usage:
//
//	registry := match.NewRegistry()
//	mapManager, _ := maps.NewManager("maps")
//	svc, err := service.NewMatchService(registry, mapManager, config.Defaults(), log.Logger)
//	if err != nil {
//		log.Fatal().Err(err).Msg("service")
//	}
//
//	info, err := svc.PlanMatches(ctx, participants)
//	game, err := svc.GetGame(ctx, info.ID, 0)
package service
