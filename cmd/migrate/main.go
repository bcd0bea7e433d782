package main

import (
	"blog/internal/config"
	"blog/internal/db"
	"errors"
	"fmt"
	"os"
	"strconv"
)

const usage = "usage: migrate up | down [steps] | version"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	cfg, err := config.LoadMigrations()
	if err != nil {
		return err
	}
	migrator, err := db.NewMigrator(cfg.PostgresqlURL, cfg.MigrationsPath)
	if err != nil {
		return err
	}
	defer migrator.Close()

	switch args[0] {
	case "up":
		if err := migrator.Up(); err != nil {
			return err
		}
	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil || steps < 1 {
				return fmt.Errorf("invalid number of steps: %s", args[1])
			}
		}
		if err := migrator.Down(steps); err != nil {
			return err
		}
	case "version":
	default:
		return errors.New(usage)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return err
	}
	fmt.Printf("Migration version: %d, dirty: %v\n", version, dirty)
	return nil
}
