package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lib/pq"

	"stockflow/internal/core/domain"
	"stockflow/internal/core/port"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// seedSymbols is the one-time bootstrap set inserted when the table is
// created empty. Seeding never runs against a non-empty table.
var seedSymbols = []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA"}

// SymbolRepository persists the watchlist in a single Postgres table.
// Uniqueness is enforced by the schema; insertion order is the id order.
type SymbolRepository struct {
	db *sql.DB
}

// NewSymbolRepository runs the migration, seeds an empty table and
// returns the repository.
func NewSymbolRepository(db *sql.DB) (port.SymbolRepository, error) {
	r := &SymbolRepository{db: db}
	if err := r.migrate(); err != nil {
		return nil, fmt.Errorf("migrate watchlist: %w", err)
	}
	if err := r.seed(); err != nil {
		return nil, fmt.Errorf("seed watchlist: %w", err)
	}
	return r, nil
}

func (r *SymbolRepository) migrate() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS watchlist (
			id         SERIAL PRIMARY KEY,
			symbol     TEXT NOT NULL UNIQUE,
			added_date TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (r *SymbolRepository) seed() error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM watchlist`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, symbol := range seedSymbols {
		if _, err := tx.Exec(`INSERT INTO watchlist (symbol) VALUES ($1)`, symbol); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Info("Watchlist seeded with default symbols", "symbols", seedSymbols)
	return nil
}

func (r *SymbolRepository) List(ctx context.Context) ([]domain.WatchedSymbol, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, symbol, added_date FROM watchlist ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	defer rows.Close()

	symbols := []domain.WatchedSymbol{}
	for rows.Next() {
		var ws domain.WatchedSymbol
		if err := rows.Scan(&ws.ID, &ws.Symbol, &ws.AddedAt); err != nil {
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		symbols = append(symbols, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}

	return symbols, nil
}

func (r *SymbolRepository) Add(ctx context.Context, symbol string) (*domain.WatchedSymbol, error) {
	symbol = strings.ToUpper(symbol)

	ws := domain.WatchedSymbol{Symbol: symbol}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO watchlist (symbol) VALUES ($1) RETURNING id, added_date`,
		symbol).Scan(&ws.ID, &ws.AddedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateSymbol
		}
		return nil, fmt.Errorf("add symbol %s: %w", symbol, err)
	}

	return &ws, nil
}

func (r *SymbolRepository) Remove(ctx context.Context, symbol string) error {
	symbol = strings.ToUpper(symbol)

	res, err := r.db.ExecContext(ctx, `DELETE FROM watchlist WHERE symbol = $1`, symbol)
	if err != nil {
		return fmt.Errorf("remove symbol %s: %w", symbol, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove symbol %s: %w", symbol, err)
	}
	if affected == 0 {
		return domain.ErrSymbolNotFound
	}

	return nil
}
