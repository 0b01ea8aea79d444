package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"rently/config"
	logs "rently/internal/infra/log"
	"rently/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - up:     apply all pending migrations
// - down:   roll back the latest migration, or down to -to <version>
// - status: print applied and pending migrations

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "up", "down", "status":
	default:
		printUsage()
		os.Exit(1)
	}

	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downTo := downCmd.Int64("to", 0, "Roll back to this version instead of only the latest migration")

	var migrator *postgres.Migrator
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewMigrator,
		),
		fx.Populate(&migrator),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := runSubcommand(ctx, migrator, downCmd, downTo)

	if err := app.Stop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, migrator *postgres.Migrator, downCmd *flag.FlagSet, downTo *int64) error {
	switch os.Args[1] {
	case "up":
		return migrator.Up(ctx)
	case "down":
		if err := downCmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse down flags")
		}

		// A bare positional version is accepted as well: migrate down 3
		if *downTo == 0 && downCmd.NArg() > 0 {
			version, err := strconv.ParseInt(downCmd.Arg(0), 10, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid version %q", downCmd.Arg(0))
			}
			*downTo = version
		}

		return migrator.Down(ctx, *downTo)
	case "status":
		return migrator.Status(ctx)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  up          Apply all pending migrations")
	fmt.Println("  down        Roll back the latest migration (-to <version> to roll back further)")
	fmt.Println("  status      Show applied and pending migrations")
}
