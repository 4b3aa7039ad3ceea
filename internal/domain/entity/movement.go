package entity

import "time"

// Movement representa un movimiento de stock registrado en el libro.
// Es un hecho append-only: se crea exactamente una vez y nunca se
// modifica ni elimina.
type Movement struct {
	ID             string
	ProductID      string
	MovementTypeID string
	Quantity       int // siempre > 0; la dirección la da el tipo
	Reason         string
	Date           time.Time
	UserID         string // usuario que registró el movimiento
	CreatedAt      time.Time
}
