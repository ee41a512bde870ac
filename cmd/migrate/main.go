// Command migrate runs goose migrations against the configured database.
//
// Usage:
//
//	migrate up
//	migrate down
//	migrate status
//	migrate create add_column sql
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/perfectbooks/stock-api/pkg/config"
	"github.com/perfectbooks/stock-api/pkg/db"
	"github.com/perfectbooks/stock-api/pkg/logger"
	"github.com/perfectbooks/stock-api/pkg/migrate"
)

func main() {
	_ = godotenv.Load()

	dir := flag.String("dir", migrate.DefaultDir, "directory with migration files")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: migrate [-dir path] <command> [args]")
		os.Exit(2)
	}
	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	logg := logger.New(logger.Options{
		ServiceName: "stock-api-migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	ctx := context.Background()

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "opening database", err)
		os.Exit(1)
	}
	defer client.Close()

	sqlDB, err := client.DB().DB()
	if err != nil {
		logg.Error(ctx, "extracting sql.DB", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"driver":  cfg.DB.Driver,
		"command": command,
		"dir":     *dir,
	})
	logg.Info(ctx, "running migration command")

	if err := migrate.Run(ctx, sqlDB, cfg.DB.Driver, *dir, command, args[1:]...); err != nil {
		logg.Error(ctx, "migration failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "migration command completed")
}
