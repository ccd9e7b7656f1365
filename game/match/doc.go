// Package match keeps planned matches in memory for the host.
//
// A Match wraps one planner.Plan under a generated UUID. The engine itself
// does no locking, so a host that drives several games from different
// goroutines goes through Match.WithGame, which holds a per-game mutex for
// the duration of the callback. Games of the same match run independently.
//
// Usage:
//
//	registry := match.NewRegistry()
//	m := registry.Create(plan)
//
//	err := m.WithGame(0, func(g *engine.Game) error {
//		g.Turn++
//		return nil
//	})
//
//	// drop matches idle for more than an hour
//	registry.CleanupExpired(time.Hour)
package match
