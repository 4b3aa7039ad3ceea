package repository

import (
	"time"

	"github.com/salesiana/inventory-system/internal/domain/entity"
)

// TransferRepository define el puerto de persistencia del libro de transferencias.
// Append-only, igual que los movimientos.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	ListByProduct(productID string) ([]*entity.Transfer, error)
	ListByLot(lotID string) ([]*entity.Transfer, error)
	// ListByLocation devuelve transferencias donde la ubicación es origen o destino.
	ListByLocation(locationID string) ([]*entity.Transfer, error)
	ListBetween(from, to time.Time) ([]*entity.Transfer, error)
	ListRecent(limit int) ([]*entity.Transfer, error)
	// ListAllAsc devuelve el libro completo en orden de fecha ascendente (solo recovery).
	ListAllAsc() ([]*entity.Transfer, error)
}
