package query

import (
	"context"
	"fmt"
	"time"

	"github.com/salesiana/inventory-system/internal/domain"
	"github.com/salesiana/inventory-system/internal/domain/entity"
	"github.com/salesiana/inventory-system/internal/domain/repository"
)

// Límite por defecto para los listados "últimos N".
const defaultRecentLimit = 10

// Queries es la fachada de solo lectura sobre el libro y las proyecciones.
// Nunca devuelve errores de validación más allá de ErrNotFound.
type Queries struct {
	products  repository.ProductRepository
	locations repository.LocationRepository
	lots      repository.LotRepository
	movements repository.MovementRepository
	transfers repository.TransferRepository
}

// New construye la fachada de consultas.
func New(
	products repository.ProductRepository,
	locations repository.LocationRepository,
	lots repository.LotRepository,
	movements repository.MovementRepository,
	transfers repository.TransferRepository,
) *Queries {
	return &Queries{
		products:  products,
		locations: locations,
		lots:      lots,
		movements: movements,
		transfers: transfers,
	}
}

// MovementsForProduct lista los movimientos de un producto, más recientes primero.
func (q *Queries) MovementsForProduct(ctx context.Context, productID string) ([]*entity.Movement, error) {
	if err := q.requireProduct(productID); err != nil {
		return nil, err
	}
	return q.movements.ListByProduct(productID)
}

// TransfersForProduct lista las transferencias de un producto, más recientes primero.
func (q *Queries) TransfersForProduct(ctx context.Context, productID string) ([]*entity.Transfer, error) {
	if err := q.requireProduct(productID); err != nil {
		return nil, err
	}
	return q.transfers.ListByProduct(productID)
}

// TransfersForLot lista las transferencias de un lote, más recientes primero.
func (q *Queries) TransfersForLot(ctx context.Context, lotID string) ([]*entity.Transfer, error) {
	lot, err := q.lots.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, fmt.Errorf("%w: lote %s", domain.ErrNotFound, lotID)
	}
	return q.transfers.ListByLot(lotID)
}

// TransfersForLocation lista las transferencias donde la ubicación fue
// origen o destino, más recientes primero.
func (q *Queries) TransfersForLocation(ctx context.Context, locationID string) ([]*entity.Transfer, error) {
	location, err := q.locations.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, fmt.Errorf("%w: ubicación %s", domain.ErrNotFound, locationID)
	}
	return q.transfers.ListByLocation(locationID)
}

// RecentMovements devuelve los últimos N movimientos de todos los productos.
func (q *Queries) RecentMovements(ctx context.Context, limit int) ([]*entity.Movement, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return q.movements.ListRecent(limit)
}

// RecentTransfers devuelve las últimas N transferencias.
func (q *Queries) RecentTransfers(ctx context.Context, limit int) ([]*entity.Transfer, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return q.transfers.ListRecent(limit)
}

// MovementsForProductBetween lista los movimientos de un producto dentro de
// un rango de fechas inclusivo.
func (q *Queries) MovementsForProductBetween(ctx context.Context, productID string, from, to time.Time) ([]*entity.Movement, error) {
	if err := q.requireProduct(productID); err != nil {
		return nil, err
	}
	movements, err := q.movements.ListBetween(from, to)
	if err != nil {
		return nil, err
	}
	out := movements[:0]
	for _, m := range movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

// MovementsBetween lista movimientos en un rango de fechas.
func (q *Queries) MovementsBetween(ctx context.Context, from, to time.Time) ([]*entity.Movement, error) {
	return q.movements.ListBetween(from, to)
}

// TransfersBetween lista transferencias en un rango de fechas.
func (q *Queries) TransfersBetween(ctx context.Context, from, to time.Time) ([]*entity.Transfer, error) {
	return q.transfers.ListBetween(from, to)
}

func (q *Queries) requireProduct(productID string) error {
	product, err := q.products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	return nil
}
