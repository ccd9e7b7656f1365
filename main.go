// Command herobattle plans hero battle matches from a roster and inspects the
// map files they are played on.
//
// Commands:
//  1. "plan <roster>" - splits a roster into games and teams and prints the plan
//  2. "maps list" - lists the maps with their contents and spawn capacity
//  3. "maps validate" - checks every map against the configured board and team size
//
// Global flags select the maps directory, an optional YAML settings file,
// per-setting overrides, the random seed and the log level. A .env file in the
// working directory is loaded first.
package main

import (
	"context"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "herobattle"
)

// Flag names shared between the root command and its subcommands
const (
	flagMapsDir         = "maps-dir"
	flagConfig          = "config"
	flagBoardSize       = "board-size"
	flagMaxUsersPerTeam = "max-users-per-team"
	flagMaxTurns        = "max-turns"
	flagSeed            = "seed"
	flagLogLevel        = "log-level"
	flagFormat          = "format"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg(AppName + " failed")
		os.Exit(1)
	}
}

// newApp builds the command tree; output goes to w
func newApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "plan hero battle matches",
		Version: Version,
		Writer:  w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagMapsDir,
				Usage:   "directory containing map files",
				Value:   "maps",
				Sources: cli.EnvVars("MAPS_DIR"),
			},
			&cli.StringFlag{
				Name:    flagConfig,
				Usage:   "YAML settings file",
				Sources: cli.EnvVars("HEROBATTLE_CONFIG"),
			},
			&cli.IntFlag{
				Name:  flagBoardSize,
				Usage: "board size override",
			},
			&cli.IntFlag{
				Name:  flagMaxUsersPerTeam,
				Usage: "maximum heroes per team override",
			},
			&cli.IntFlag{
				Name:  flagMaxTurns,
				Usage: "turn limit override",
			},
			&cli.Int64Flag{
				Name:  flagSeed,
				Usage: "random seed, 0 seeds from the clock",
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			planCommand(),
			mapsCommand(),
		},
	}
}

// setupLogging sets the global zerolog level and writes human-readable logs to stderr
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level, err := zerolog.ParseLevel(cmd.String(flagLogLevel))
	if err != nil {
		return ctx, err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return ctx, nil
}
