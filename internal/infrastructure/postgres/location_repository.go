package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/salesiana/inventory-system/internal/domain"
	"github.com/salesiana/inventory-system/internal/domain/entity"
	"github.com/salesiana/inventory-system/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

const locationColumns = "id, code, name, max_capacity, current_capacity, created_at, updated_at"

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva ubicación.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Code, location.Name,
		location.MaxCapacity, location.CurrentCapacity,
		location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: código %s", domain.ErrDuplicate, location.Code)
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.getOne("SELECT " + locationColumns + " FROM locations WHERE id = $1", id)
}

// GetForUpdate obtiene la ubicación y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción.
func (r *LocationRepo) GetForUpdate(id string) (*entity.Location, error) {
	return r.getOne("SELECT " + locationColumns + " FROM locations WHERE id = $1 FOR UPDATE", id)
}

func (r *LocationRepo) getOne(query, id string) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Code, &l.Name, &l.MaxCapacity, &l.CurrentCapacity,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// Update actualiza los datos maestros de la ubicación (no la capacidad ocupada).
func (r *LocationRepo) Update(location *entity.Location) error {
	query := `
		UPDATE locations
		SET code = $2, name = $3, max_capacity = $4, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Code, location.Name, location.MaxCapacity,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// UpdateCapacity escribe la capacidad ocupada materializada. Solo el motor
// de consistencia debe llamarlo, dentro de la transacción de la transferencia.
func (r *LocationRepo) UpdateCapacity(locationID string, currentCapacity int) error {
	query := `UPDATE locations SET current_capacity = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, locationID, currentCapacity)
	if err != nil {
		return fmt.Errorf("update capacity: %w", err)
	}
	return nil
}

// List lista ubicaciones paginadas. limit <= 0 devuelve todas.
func (r *LocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	query := "SELECT " + locationColumns + " FROM locations ORDER BY code"
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.MaxCapacity,
			&l.CurrentCapacity, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina una ubicación por ID.
func (r *LocationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), "DELETE FROM locations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}
