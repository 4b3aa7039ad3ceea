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

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = "id, product_id, movement_type_id, quantity, reason, date, user_id, created_at"

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento en el libro.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.MovementTypeID,
		movement.Quantity, movement.Reason, movement.Date,
		movement.UserID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := "SELECT " + movementColumns + " FROM movements WHERE id = $1"
	row := r.q.QueryRow(context.Background(), query, id)
	m, err := scanMovementRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByProduct lista los movimientos de un producto, más recientes primero.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	query := "SELECT " + movementColumns + " FROM movements WHERE product_id = $1 ORDER BY date DESC"
	return r.list(query, productID)
}

// ListBetween lista movimientos en un rango de fechas, más recientes primero.
func (r *MovementRepo) ListBetween(from, to time.Time) ([]*entity.Movement, error) {
	query := "SELECT " + movementColumns + " FROM movements WHERE date >= $1 AND date <= $2 ORDER BY date DESC"
	return r.list(query, from, to)
}

// ListRecent devuelve los últimos N movimientos de todos los productos.
func (r *MovementRepo) ListRecent(limit int) ([]*entity.Movement, error) {
	query := "SELECT " + movementColumns + " FROM movements ORDER BY date DESC LIMIT $1"
	return r.list(query, limit)
}

// ListAllAsc devuelve el libro completo en orden de fecha ascendente (solo recovery).
func (r *MovementRepo) ListAllAsc() ([]*entity.Movement, error) {
	query := "SELECT " + movementColumns + " FROM movements ORDER BY date ASC, created_at ASC"
	return r.list(query)
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovementRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovementRow(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var userID *string
	if err := row.Scan(&m.ID, &m.ProductID, &m.MovementTypeID, &m.Quantity,
		&m.Reason, &m.Date, &userID, &m.CreatedAt); err != nil {
		return nil, err
	}
	if userID != nil {
		m.UserID = *userID
	}
	return &m, nil
}
