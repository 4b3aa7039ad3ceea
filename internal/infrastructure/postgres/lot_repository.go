package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salesiana/inventory-system/internal/domain/entity"
	"github.com/salesiana/inventory-system/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = "id, product_id, code, location_id, expires_at, created_at"

// LotRepo implementación del puerto LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un nuevo lote.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (` + lotColumns + `)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ProductID, lot.Code, lot.LocationID, lot.ExpiresAt, lot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	return r.getOne("SELECT " + lotColumns + " FROM lots WHERE id = $1", id)
}

// GetForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE).
func (r *LotRepo) GetForUpdate(id string) (*entity.Lot, error) {
	return r.getOne("SELECT " + lotColumns + " FROM lots WHERE id = $1 FOR UPDATE", id)
}

func (r *LotRepo) getOne(query, id string) (*entity.Lot, error) {
	var l entity.Lot
	var locationID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.ProductID, &l.Code, &locationID, &l.ExpiresAt, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	if locationID != nil {
		l.LocationID = *locationID
	}
	return &l, nil
}

// UpdateLocation reubica el lote. Solo el motor de consistencia debe
// llamarlo, dentro de la transacción de la transferencia.
func (r *LotRepo) UpdateLocation(lotID, locationID string) error {
	query := `UPDATE lots SET location_id = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, lotID, locationID)
	if err != nil {
		return fmt.Errorf("update lot location: %w", err)
	}
	return nil
}

// ListByProduct lista los lotes de un producto.
func (r *LotRepo) ListByProduct(productID string) ([]*entity.Lot, error) {
	query := "SELECT " + lotColumns + " FROM lots WHERE product_id = $1 ORDER BY code"
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		var locationID *string
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Code, &locationID, &l.ExpiresAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		if locationID != nil {
			l.LocationID = *locationID
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
