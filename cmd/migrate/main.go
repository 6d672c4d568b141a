package main

import (
	"casino_settlement/internal/config"
	"casino_settlement/internal/config/env"
	"casino_settlement/internal/migrations"
	"casino_settlement/internal/repository/game_repo"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

const usage = "usage: migrate up|down|status|seed"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	_ = config.Load(".env")

	if err := run(context.Background(), os.Args[1]); err != nil {
		slog.Error("migrate failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	pgCfg, err := env.NewPGConfig()
	if err != nil {
		return err
	}
	if !pgCfg.Enabled() {
		return errors.New("PG_DSN is not set")
	}

	pool, err := pgxpool.New(ctx, pgCfg.DSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	switch command {
	case "up":
		return migrations.Up(ctx, pool)
	case "down":
		return migrations.Down(ctx, pool)
	case "status":
		return migrations.Status(ctx, pool)
	case "seed":
		return seed(ctx, pool)
	default:
		return errors.New(usage)
	}
}

// seed каталог игр из YAML в таблицу games
func seed(ctx context.Context, pool *pgxpool.Pool) error {
	catalog, err := env.NewCatalogConfigFromYAML(env.CatalogPath())
	if err != nil {
		return err
	}

	repo := game_repo.NewGameRepository(pool)
	for _, g := range catalog.Games() {
		if err = repo.UpsertGame(ctx, g); err != nil {
			return fmt.Errorf("upsert %s: %w", g.Slug, err)
		}
		slog.Info("game seeded", "slug", g.Slug, "type", g.Type)
	}
	return nil
}
