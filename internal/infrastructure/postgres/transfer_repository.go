package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/salesiana/inventory-system/internal/domain/entity"
	"github.com/salesiana/inventory-system/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

const transferColumns = "id, product_id, lot_id, from_location_id, to_location_id, quantity, date, user_id, created_at"

// TransferRepo implementación del libro de transferencias sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste una transferencia en el libro.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), $9)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.ProductID, transfer.LotID,
		transfer.FromLocationID, transfer.ToLocationID,
		transfer.Quantity, transfer.Date, transfer.UserID, transfer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID obtiene una transferencia por ID.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	query := "SELECT " + transferColumns + " FROM transfers WHERE id = $1"
	row := r.q.QueryRow(context.Background(), query, id)
	t, err := scanTransferRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return t, nil
}

// ListByProduct lista las transferencias de un producto, más recientes primero.
func (r *TransferRepo) ListByProduct(productID string) ([]*entity.Transfer, error) {
	query := "SELECT " + transferColumns + " FROM transfers WHERE product_id = $1 ORDER BY date DESC"
	return r.list(query, productID)
}

// ListByLot lista las transferencias de un lote, más recientes primero.
func (r *TransferRepo) ListByLot(lotID string) ([]*entity.Transfer, error) {
	query := "SELECT " + transferColumns + " FROM transfers WHERE lot_id = $1 ORDER BY date DESC"
	return r.list(query, lotID)
}

// ListByLocation lista transferencias donde la ubicación fue origen o destino.
func (r *TransferRepo) ListByLocation(locationID string) ([]*entity.Transfer, error) {
	query := "SELECT " + transferColumns + ` FROM transfers
		WHERE from_location_id = $1 OR to_location_id = $1 ORDER BY date DESC`
	return r.list(query, locationID)
}

// ListBetween lista transferencias en un rango de fechas, más recientes primero.
func (r *TransferRepo) ListBetween(from, to time.Time) ([]*entity.Transfer, error) {
	query := "SELECT " + transferColumns + " FROM transfers WHERE date >= $1 AND date <= $2 ORDER BY date DESC"
	return r.list(query, from, to)
}

// ListRecent devuelve las últimas N transferencias.
func (r *TransferRepo) ListRecent(limit int) ([]*entity.Transfer, error) {
	query := "SELECT " + transferColumns + " FROM transfers ORDER BY date DESC LIMIT $1"
	return r.list(query, limit)
}

// ListAllAsc devuelve el libro completo en orden de fecha ascendente (solo recovery).
func (r *TransferRepo) ListAllAsc() ([]*entity.Transfer, error) {
	query := "SELECT " + transferColumns + " FROM transfers ORDER BY date ASC, created_at ASC"
	return r.list(query)
}

func (r *TransferRepo) list(query string, args ...any) ([]*entity.Transfer, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		t, err := scanTransferRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTransferRow(row pgx.Row) (*entity.Transfer, error) {
	var t entity.Transfer
	var lotID, fromID, userID *string
	if err := row.Scan(&t.ID, &t.ProductID, &lotID, &fromID, &t.ToLocationID,
		&t.Quantity, &t.Date, &userID, &t.CreatedAt); err != nil {
		return nil, err
	}
	if lotID != nil {
		t.LotID = *lotID
	}
	if fromID != nil {
		t.FromLocationID = *fromID
	}
	if userID != nil {
		t.UserID = *userID
	}
	return &t, nil
}
