package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"workshoppro/internal/config"
	"workshoppro/internal/logging"
	"workshoppro/pkg/database"
)

func main() {
	ctx := context.Background()
	logger := logging.New(logging.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "migration command: up|down|status|redo|reset|version")
	version := flag.String("version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Error(ctx, "migrate", "failed to load config", err, nil)
		os.Exit(1)
	}
	ctx = logger.WithField(ctx, "cmd", *cmd)

	pool, err := database.NewPool(ctx, cfg.DB.URL, cfg.DB.MaxConns)
	if err != nil {
		logger.Error(ctx, "migrate", "failed to connect to database", err, nil)
		os.Exit(1)
	}
	defer pool.Close()

	db := database.OpenSQL(pool)
	defer db.Close()

	switch *cmd {
	case "version":
		if *version == "" {
			fmt.Fprintln(os.Stderr, "missing -version for version command")
			os.Exit(1)
		}
		err = database.MigrateToVersion(ctx, db, *version)
	case "up", "down", "status", "redo", "reset":
		err = database.Migrate(ctx, db, *cmd)
	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}
	if err != nil {
		logger.Error(ctx, "migrate", "migration failed", err, nil)
		os.Exit(1)
	}
	logger.Info(ctx, "migrate", "migration finished", nil)
}
