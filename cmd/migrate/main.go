// Command migrate applies the embedded goose migrations.
//
//	migrate [up|down|status|redo|version] [args...]
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"travel_journal/internal/platform/db"
)

func main() {
	_ = godotenv.Load(".env")
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	command := "up"
	var args []string
	if len(os.Args) > 1 {
		command, args = os.Args[1], os.Args[2:]
	}

	cfg := db.LoadConfigFromEnv()
	gdb, err := db.ConnectWithRetry(db.BuildDSN(cfg), cfg.ConnectTimeout, db.PostgresOpener)
	if err != nil {
		slog.Error("database unreachable", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close(gdb) }()

	sqlDB, err := gdb.DB()
	if err != nil {
		slog.Error("failed to access sql.DB", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := db.Migrate(ctx, sqlDB, command, args...); err != nil {
		slog.Error("migration failed", "command", command, "error", err)
		cancel()
		os.Exit(1)
	}
	slog.Info("migration ok", "command", command)
}
