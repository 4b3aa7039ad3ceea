package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salesiana/inventory-system/internal/application/engine"
	"github.com/salesiana/inventory-system/internal/domain"
)

// Ensure TxRunner implements engine.TxRunner.
var _ engine.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Pone un lock_timeout local para que la espera por filas bloqueadas sea
// acotada; el vencimiento se traduce a domain.ErrConflict, igual que los
// fallos de serialización y los deadlocks, para que el motor reintente.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos engine.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '2s'"); err != nil {
		return fmt.Errorf("set lock_timeout: %w", err)
	}

	repos := engine.TxRepos{
		Products:  NewProductRepository(tx),
		Locations: NewLocationRepository(tx),
		Lots:      NewLotRepository(tx),
		Movements: NewMovementRepository(tx),
		Transfers: NewTransferRepository(tx),
	}

	if err := fn(repos); err != nil {
		if isRetryableTxError(err) {
			return fmt.Errorf("%w: %v", domain.ErrConflict, err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isRetryableTxError(err) {
			return fmt.Errorf("%w: %v", domain.ErrConflict, err)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
