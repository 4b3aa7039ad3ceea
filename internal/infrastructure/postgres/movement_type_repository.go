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

var _ repository.MovementTypeRepository = (*MovementTypeRepo)(nil)

// MovementTypeRepo implementación del puerto MovementTypeRepository sobre PostgreSQL.
type MovementTypeRepo struct {
	q Querier
}

// NewMovementTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementTypeRepository(q Querier) *MovementTypeRepo {
	return &MovementTypeRepo{q: q}
}

// Create persiste un tipo de movimiento (dato de referencia, alta única).
func (r *MovementTypeRepo) Create(movementType *entity.MovementType) error {
	query := `INSERT INTO movement_types (id, name, affects_stock) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		movementType.ID, movementType.Name, movementType.AffectsStock,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: tipo %s", domain.ErrDuplicate, movementType.Name)
		}
		return fmt.Errorf("insert movement type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de movimiento por ID.
func (r *MovementTypeRepo) GetByID(id string) (*entity.MovementType, error) {
	query := `SELECT id, name, affects_stock FROM movement_types WHERE id = $1`
	var t entity.MovementType
	err := r.q.QueryRow(context.Background(), query, id).Scan(&t.ID, &t.Name, &t.AffectsStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement type: %w", err)
	}
	return &t, nil
}

// List devuelve todos los tipos de movimiento.
func (r *MovementTypeRepo) List() ([]*entity.MovementType, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name, affects_stock FROM movement_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list movement types: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementType
	for rows.Next() {
		var t entity.MovementType
		if err := rows.Scan(&t.ID, &t.Name, &t.AffectsStock); err != nil {
			return nil, fmt.Errorf("scan movement type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
