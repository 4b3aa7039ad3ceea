package repository

import "github.com/salesiana/inventory-system/internal/domain/entity"

// MovementTypeRepository define el puerto para los tipos de movimiento
// (dato de referencia inmutable).
type MovementTypeRepository interface {
	Create(movementType *entity.MovementType) error
	GetByID(id string) (*entity.MovementType, error)
	List() ([]*entity.MovementType, error)
}
