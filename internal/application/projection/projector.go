package projection

import (
	"context"
	"fmt"

	"github.com/salesiana/inventory-system/internal/application/engine"
	"github.com/salesiana/inventory-system/internal/domain"
	"github.com/salesiana/inventory-system/internal/domain/repository"
)

// Projector expone las proyecciones materializadas del libro: stock actual
// por producto y capacidad ocupada por ubicación. Son lecturas del último
// valor confirmado; nunca se recalculan replayando el libro en el camino
// caliente (eso es Rebuild, una operación de recovery).
type Projector struct {
	products      repository.ProductRepository
	locations     repository.LocationRepository
	movementTypes repository.MovementTypeRepository
	tx            engine.TxRunner
}

// New construye el proyector. tx solo se usa en Rebuild.
func New(
	products repository.ProductRepository,
	locations repository.LocationRepository,
	movementTypes repository.MovementTypeRepository,
	tx engine.TxRunner,
) *Projector {
	return &Projector{
		products:      products,
		locations:     locations,
		movementTypes: movementTypes,
		tx:            tx,
	}
}

// CurrentStock devuelve el stock actual confirmado de un producto.
func (p *Projector) CurrentStock(ctx context.Context, productID string) (int, error) {
	product, err := p.products.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	return product.Stock, nil
}

// CurrentCapacity devuelve la capacidad ocupada confirmada de una ubicación.
func (p *Projector) CurrentCapacity(ctx context.Context, locationID string) (int, error) {
	location, err := p.locations.GetByID(locationID)
	if err != nil {
		return 0, err
	}
	if location == nil {
		return 0, fmt.Errorf("%w: ubicación %s", domain.ErrNotFound, locationID)
	}
	return location.CurrentCapacity, nil
}
