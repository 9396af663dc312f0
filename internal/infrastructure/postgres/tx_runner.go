package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	applager "github.com/ep-bau/ep-system/internal/application/lager"
	"github.com/ep-bau/ep-system/internal/domain/repository"
)

var _ applager.TxRunner = (*TxRunner)(nil)
var _ applager.KassaTxRunner = (*TxRunner)(nil)

// TxRunner führt Callbacks innerhalb einer PostgreSQL-Transaktion aus.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner konstruiert den Runner mit dem Pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run startet eine Transaktion, führt fn mit transaktionsgebundenen Repos aus
// und beendet mit Commit oder Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	wareRepo repository.WareRepository,
	logRepo repository.WarenLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("transaktion starten: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewWareRepository(tx), NewWarenLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("transaktion committen: %w", err)
	}
	return nil
}

// RunKassa startet eine Transaktion mit Lager- und Kassen-Repos (Webhook-Pfad).
func (r *TxRunner) RunKassa(ctx context.Context, fn func(
	wareRepo repository.WareRepository,
	logRepo repository.WarenLogRepository,
	kassaRepo repository.KassaRepository,
	saleRepo repository.KassaSaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("transaktion starten: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewWareRepository(tx),
		NewWarenLogRepository(tx),
		NewKassaRepository(tx),
		NewKassaSaleRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("transaktion committen: %w", err)
	}
	return nil
}
