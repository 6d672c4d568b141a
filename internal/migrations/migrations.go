// Package migrations схема Postgres, встроенная в бинарник и применяемая goose.
package migrations

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedded embed.FS

const dir = "sql"

func setup() error {
	goose.SetBaseFS(embedded)
	return goose.SetDialect("postgres")
}

// Up применяет все новые миграции
func Up(ctx context.Context, pool *pgxpool.Pool) error {
	if err := setup(); err != nil {
		return err
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down откатывает последнюю миграцию
func Down(ctx context.Context, pool *pgxpool.Pool) error {
	if err := setup(); err != nil {
		return err
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.DownContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Status печатает состояние миграций в лог goose
func Status(ctx context.Context, pool *pgxpool.Pool) error {
	if err := setup(); err != nil {
		return err
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return goose.StatusContext(ctx, db, dir)
}
