package entity

// Dirección en la que un tipo de movimiento afecta el stock.
const (
	StockIncrease = 1  // entrada
	StockDecrease = -1 // salida
	StockNeutral  = 0  // no afecta stock (ej. conteo, auditoría)
)

// MovementType es dato de referencia inmutable: define si un movimiento
// suma, resta o no toca el stock del producto.
type MovementType struct {
	ID           string
	Name         string
	AffectsStock int // StockIncrease, StockDecrease o StockNeutral
}

// Valid indica si la dirección del tipo es una de las tres conocidas.
func (t *MovementType) Valid() bool {
	switch t.AffectsStock {
	case StockIncrease, StockDecrease, StockNeutral:
		return true
	}
	return false
}
