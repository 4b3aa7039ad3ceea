package repository

import "github.com/salesiana/inventory-system/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	GetForUpdate(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	UpdateCapacity(locationID string, currentCapacity int) error
	List(limit, offset int) ([]*entity.Location, error)
	Delete(id string) error
}
