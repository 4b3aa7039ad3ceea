package entity

import "time"

// Transfer representa el traslado de una cantidad de producto entre dos
// ubicaciones de almacén. FromLocationID vacío significa ingreso externo
// (mercadería que entra desde fuera del almacén). Append-only.
type Transfer struct {
	ID             string
	ProductID      string
	LotID          string // opcional: lote trasladado
	FromLocationID string // opcional: vacío = ingreso externo
	ToLocationID   string
	Quantity       int // siempre > 0
	Date           time.Time
	UserID         string // opcional: vacío cuando no hay actor autenticado
	CreatedAt      time.Time
}

// External indica si la transferencia es un ingreso externo (sin origen).
func (t *Transfer) External() bool {
	return t.FromLocationID == ""
}
