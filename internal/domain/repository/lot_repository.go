package repository

import "github.com/salesiana/inventory-system/internal/domain/entity"

// LotRepository define el puerto de persistencia para Lot (DIP).
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	GetForUpdate(id string) (*entity.Lot, error)
	UpdateLocation(lotID, locationID string) error
	ListByProduct(productID string) ([]*entity.Lot, error)
}
