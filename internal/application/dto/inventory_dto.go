package dto

import "time"

// RegisterMovementRequest entrada HTTP para registrar un movimiento de stock.
type RegisterMovementRequest struct {
	ProductID      string     `json:"product_id"`
	MovementTypeID string     `json:"movement_type_id"`
	Quantity       int        `json:"quantity"`
	Reason         string     `json:"reason"`
	Date           *time.Time `json:"date"` // opcional: vacío = ahora
}

// RegisterTransferRequest entrada HTTP para registrar una transferencia.
// from_location_id vacío = ingreso externo; lot_id opcional.
type RegisterTransferRequest struct {
	ProductID      string     `json:"product_id"`
	FromLocationID string     `json:"from_location_id"`
	ToLocationID   string     `json:"to_location_id"`
	LotID          string     `json:"lot_id"`
	Quantity       int        `json:"quantity"`
	Date           *time.Time `json:"date"`
}

// MovementResponse representación HTTP de un movimiento confirmado.
type MovementResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	MovementTypeID string    `json:"movement_type_id"`
	Quantity       int       `json:"quantity"`
	Reason         string    `json:"reason,omitempty"`
	Date           time.Time `json:"date"`
	UserID         string    `json:"user_id,omitempty"`
}

// TransferResponse representación HTTP de una transferencia confirmada.
type TransferResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	LotID          string    `json:"lot_id,omitempty"`
	FromLocationID string    `json:"from_location_id,omitempty"`
	ToLocationID   string    `json:"to_location_id"`
	Quantity       int       `json:"quantity"`
	Date           time.Time `json:"date"`
	UserID         string    `json:"user_id,omitempty"`
}

// StockResponse stock actual de un producto.
type StockResponse struct {
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
}

// CapacityResponse capacidad ocupada de una ubicación.
type CapacityResponse struct {
	LocationID      string `json:"location_id"`
	CurrentCapacity int    `json:"current_capacity"`
}
