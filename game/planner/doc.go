// Package planner implements matchmaking for hero battles.
//
// Given a roster of participants, the planner works out how many games are
// needed (two teams of at most maxUsersPerTeam each), builds each game from a
// randomly chosen map, and seats every participant:
//
//   - participants are drawn uniformly at random without replacement
//   - games receive participants in round-robin order
//   - within one game, teams alternate starting with team one
//   - heroes take the next spawn point of their team, or a random free cell
//     once the team's spawn points are used up
//
// Maps whose spawn points cannot seat a full team are rejected before anyone
// is placed. All randomness comes from the Rand passed with WithRand, so a
// seeded source reproduces a plan exactly.
//
// Usage:
//
//	mapManager, _ := maps.NewManager("maps")
//	p, err := planner.New(config.Defaults(), mapManager, planner.WithRand(planner.NewRand(42)))
//	if err != nil {
//		log.Fatal(err)
//	}
//	plan, err := p.Plan(participants)
package planner
