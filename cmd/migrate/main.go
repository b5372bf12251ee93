// Command migrate applies the SQL migrations that create the assessment
// schema. It shares the migrations source and DSN with the API server.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"meansassess/internal/config"
	"meansassess/internal/database"
	"meansassess/internal/logger"
)

const usage = "usage: migrate up | down [N] | goto V | force V | version"

// command is a parsed invocation. arg is a step count for down and a
// schema version for goto and force.
type command struct {
	name string
	arg  int
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	cmd, err := parseCommand(os.Args[1:])
	if err != nil {
		logger.Get().Fatalf("%v\n%s", err, usage)
	}
	if err := run(cmd); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errors.New("no command given")
	}

	cmd := command{name: args[0]}
	switch cmd.name {
	case "up", "version":
		if len(args) > 1 {
			return command{}, fmt.Errorf("%s takes no arguments", cmd.name)
		}
	case "down":
		cmd.arg = 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return command{}, fmt.Errorf("invalid step count %q", args[1])
			}
			cmd.arg = n
		}
	case "goto", "force":
		if len(args) != 2 {
			return command{}, fmt.Errorf("%s needs a version", cmd.name)
		}
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 0 {
			return command{}, fmt.Errorf("invalid version %q", args[1])
		}
		cmd.arg = v
	default:
		return command{}, fmt.Errorf("unknown command %q", cmd.name)
	}
	return cmd, nil
}

func run(cmd command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	m, err := migrate.New(database.MigrationsSource, cfg.MigrationDSN())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := apply(m, cmd); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s failed: %w", cmd.name, err)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Get().Infow("Schema is empty", "command", cmd.name)
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	default:
		logger.Get().Infow("Schema version", "command", cmd.name, "version", version, "dirty", dirty)
	}
	return nil
}

// apply runs cmd against m. "version" only reports, which run does for
// every command.
func apply(m *migrate.Migrate, cmd command) error {
	switch cmd.name {
	case "up":
		return m.Up()
	case "down":
		return m.Steps(-cmd.arg)
	case "goto":
		return m.Migrate(uint(cmd.arg))
	case "force":
		return m.Force(cmd.arg)
	}
	return nil
}
