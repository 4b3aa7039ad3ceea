package repository

import (
	"time"

	"github.com/salesiana/inventory-system/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// ListByProduct devuelve los movimientos de un producto, más recientes primero.
	ListByProduct(productID string) ([]*entity.Movement, error)
	ListBetween(from, to time.Time) ([]*entity.Movement, error)
	// ListRecent devuelve los últimos N movimientos de todos los productos.
	ListRecent(limit int) ([]*entity.Movement, error)
	// ListAllAsc devuelve el libro completo en orden de fecha ascendente (solo recovery).
	ListAllAsc() ([]*entity.Movement, error)
}
