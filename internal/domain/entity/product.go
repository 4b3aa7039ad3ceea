package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El stock actual es el valor
// materializado del libro de movimientos y solo lo muta el motor de consistencia.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int // siempre >= 0
	MinStock    int // umbral de stock mínimo para alertas
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelowMinimum indica si el stock actual está por debajo del mínimo configurado.
func (p *Product) BelowMinimum() bool {
	return p.Stock < p.MinStock
}
