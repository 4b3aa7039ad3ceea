package entity

import "time"

// Lot representa un lote rastreable de un producto. Un lote está en una sola
// ubicación a la vez; el motor actualiza LocationID cuando se transfiere.
type Lot struct {
	ID         string
	ProductID  string
	Code       string
	LocationID string
	ExpiresAt  *time.Time
	CreatedAt  time.Time
}
