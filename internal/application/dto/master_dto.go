package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto (datos maestros; el stock inicial es 0).
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int             `json:"min_stock"`
}

// CreateLocationRequest alta de ubicación de almacén.
type CreateLocationRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	MaxCapacity int    `json:"max_capacity"`
}

// CreateMovementTypeRequest alta de tipo de movimiento.
// affects_stock: 1 entrada, -1 salida, 0 neutro.
type CreateMovementTypeRequest struct {
	Name         string `json:"name"`
	AffectsStock int    `json:"affects_stock"`
}

// CreateLotRequest alta de lote de un producto.
type CreateLotRequest struct {
	ProductID  string `json:"product_id"`
	Code       string `json:"code"`
	LocationID string `json:"location_id"`
}
