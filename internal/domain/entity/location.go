package entity

import "time"

// Location representa una ubicación física de almacén con capacidad acotada.
// CurrentCapacity es el espacio ocupado; invariante: 0 <= current <= max.
// Solo el motor de consistencia muta CurrentCapacity.
type Location struct {
	ID              string
	Code            string
	Name            string
	MaxCapacity     int
	CurrentCapacity int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Available devuelve la capacidad libre de la ubicación.
func (l *Location) Available() int {
	return l.MaxCapacity - l.CurrentCapacity
}

// HasCapacityFor indica si la ubicación puede recibir la cantidad indicada.
func (l *Location) HasCapacityFor(quantity int) bool {
	return l.CurrentCapacity+quantity <= l.MaxCapacity
}
