package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/hero-battle/game/config"
	"github.com/wricardo/hero-battle/game/maps"
	"github.com/wricardo/hero-battle/game/match"
	"github.com/wricardo/hero-battle/game/planner"
	"github.com/wricardo/hero-battle/game/service"
)

var errInvalidMaps = errors.New("some maps are invalid")

func planCommand() *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "plan games for a roster",
		ArgsUsage: "<roster.yaml|->",
		Description: "Reads a YAML or JSON list of participants (each with an id) and\n" +
			"prints the games, teams and starting cells. Use - to read from stdin.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagFormat,
				Usage: "output format: json or text",
				Value: "json",
			},
		},
		Action: planAction,
	}
}

func mapsCommand() *cli.Command {
	return &cli.Command{
		Name:  "maps",
		Usage: "inspect map files",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list maps with their contents",
				Action: mapsListAction,
			},
			{
				Name:   "validate",
				Usage:  "check every map against the board size and team size",
				Action: mapsValidateAction,
			},
		},
	}
}

// loadSettings reads the settings file, if any, and applies flag overrides
func loadSettings(cmd *cli.Command) (config.Settings, error) {
	settings := config.Defaults()
	if path := cmd.String(flagConfig); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return config.Settings{}, err
		}
		settings = loaded
	}

	overrides := map[string]any{}
	if cmd.IsSet(flagBoardSize) {
		overrides[config.KeyBoardSize] = cmd.Int(flagBoardSize)
	}
	if cmd.IsSet(flagMaxUsersPerTeam) {
		overrides[config.KeyMaxUsersPerTeam] = cmd.Int(flagMaxUsersPerTeam)
	}
	if cmd.IsSet(flagMaxTurns) {
		overrides[config.KeyMaxTurns] = cmd.Int(flagMaxTurns)
	}

	settings, err := settings.With(overrides)
	if err != nil {
		return config.Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// initializeServices wires the map manager, registry and match service
func initializeServices(cmd *cli.Command) (service.MatchService, *maps.Manager, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, err
	}

	mapManager, err := maps.NewManager(cmd.String(flagMapsDir))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create map manager: %w", err)
	}

	svc, err := service.NewMatchService(match.NewRegistry(), mapManager, settings, log.Logger,
		planner.WithRand(planner.NewRand(cmd.Int64(flagSeed))))
	if err != nil {
		return nil, nil, err
	}

	return svc, mapManager, nil
}

func planAction(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String(flagFormat)
	if format != "json" && format != "text" {
		return fmt.Errorf("unknown format %q, expected json or text", format)
	}

	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("roster file is required")
	}

	var participants []planner.Participant
	var err error
	if path == "-" {
		participants, err = planner.LoadRoster(os.Stdin)
	} else {
		participants, err = planner.LoadRosterFile(path)
	}
	if err != nil {
		return err
	}

	svc, _, err := initializeServices(cmd)
	if err != nil {
		return err
	}

	info, err := svc.PlanMatches(ctx, participants)
	if err != nil {
		return err
	}

	if format == "text" {
		return printPlanText(cmd.Root().Writer, info)
	}
	return printJSON(cmd.Root().Writer, info)
}

func mapsListAction(ctx context.Context, cmd *cli.Command) error {
	svc, _, err := initializeServices(cmd)
	if err != nil {
		return err
	}

	infos, err := svc.ListMaps(ctx)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	if len(infos) == 0 {
		fmt.Fprintln(w, "No maps found")
		return nil
	}

	fmt.Fprintf(w, "%-20s %5s %4s %4s %4s %4s %4s %4s %8s\n",
		"NAME", "SIZE", "DM", "HW", "IM", "S1", "S2", "SP", "MAX TEAM")
	for _, info := range infos {
		fmt.Fprintf(w, "%-20s %5d %4d %4d %4d %4d %4d %4d %8d\n",
			info.Name, info.Size, info.DiamondMines, info.HealthWells, info.Impassable,
			info.SpawnPoints["S1"], info.SpawnPoints["S2"], info.SpawnPoints["SP"], info.MaxTeamSize)
	}
	return nil
}

func mapsValidateAction(ctx context.Context, cmd *cli.Command) error {
	svc, mapManager, err := initializeServices(cmd)
	if err != nil {
		return err
	}
	settings := svc.Settings()

	results, err := mapManager.ValidateAll(settings.BoardSize, settings.MaxUsersPerTeam)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	invalid := 0
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.Map)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Info {
				fmt.Fprintln(w, "  ✓ "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			invalid++
			for _, e := range result.Errors {
				fmt.Fprintln(w, "  ❌ "+e)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if invalid > 0 {
		fmt.Fprintf(w, "❌ %d of %d maps have errors\n", invalid, len(results))
		return fmt.Errorf("%w: %d of %d", errInvalidMaps, invalid, len(results))
	}
	fmt.Fprintf(w, "✅ All %d maps are valid for %dx%d boards and %d per team\n",
		len(results), settings.BoardSize, settings.BoardSize, settings.MaxUsersPerTeam)
	return nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printPlanText(w io.Writer, info *service.MatchInfo) error {
	fmt.Fprintf(w, "Match %s: %d participants in %d games\n", info.ID, info.Participants, len(info.Games))

	for _, game := range info.Games {
		fmt.Fprintf(w, "\n=== Game %d (%s, %dx%d, max turn %d) ===\n",
			game.Index, game.Map, game.Size, game.Size, game.MaxTurn)
		for _, row := range game.Board {
			fmt.Fprintln(w, row)
		}
		for _, hero := range game.Heroes {
			fmt.Fprintf(w, "  %s %-20s team %s at (%d,%d)\n",
				hero.Code, hero.Name, hero.Team, hero.Position.Row, hero.Position.Col)
		}
	}

	return nil
}
