package projection

import (
	"context"
	"fmt"

	"github.com/salesiana/inventory-system/internal/application/engine"
	"github.com/salesiana/inventory-system/internal/domain"
)

// Rebuild reconstruye las proyecciones desde el libro (recovery tras
// corrupción): replaya todos los movimientos y transferencias en orden de
// fecha, aplicando los mismos deltas que el motor, partiendo de stock cero
// y capacidad cero. Escribe los valores resultantes en una sola transacción.
//
// No usar en operación normal: el camino caliente lee las proyecciones
// materializadas.
func (p *Projector) Rebuild(ctx context.Context) error {
	types, err := p.movementTypes.List()
	if err != nil {
		return err
	}
	direction := make(map[string]int, len(types))
	for _, t := range types {
		direction[t.ID] = t.AffectsStock
	}

	return p.tx.Run(ctx, func(r engine.TxRepos) error {
		movements, err := r.Movements.ListAllAsc()
		if err != nil {
			return err
		}
		transfers, err := r.Transfers.ListAllAsc()
		if err != nil {
			return err
		}

		stock := make(map[string]int)
		capacity := make(map[string]int)
		lotLocation := make(map[string]string)

		// Replay intercalado por fecha de ambos libros.
		i, j := 0, 0
		for i < len(movements) || j < len(transfers) {
			if j >= len(transfers) || (i < len(movements) && !movements[i].Date.After(transfers[j].Date)) {
				m := movements[i]
				dir, ok := direction[m.MovementTypeID]
				if !ok {
					return fmt.Errorf("%w: tipo de movimiento %s referenciado por el libro", domain.ErrNotFound, m.MovementTypeID)
				}
				stock[m.ProductID] += dir * m.Quantity
				i++
				continue
			}
			t := transfers[j]
			if t.FromLocationID != "" {
				capacity[t.FromLocationID] -= t.Quantity
			}
			capacity[t.ToLocationID] += t.Quantity
			if t.LotID != "" {
				lotLocation[t.LotID] = t.ToLocationID
			}
			j++
		}

		// Los agregados sin eventos vuelven a cero, no quedan con el valor viejo.
		products, err := r.Products.List(0, 0)
		if err != nil {
			return err
		}
		for _, product := range products {
			if err := r.Products.UpdateStock(product.ID, stock[product.ID]); err != nil {
				return err
			}
		}
		locations, err := r.Locations.List(0, 0)
		if err != nil {
			return err
		}
		for _, location := range locations {
			if err := r.Locations.UpdateCapacity(location.ID, capacity[location.ID]); err != nil {
				return err
			}
		}
		for lotID, locationID := range lotLocation {
			if err := r.Lots.UpdateLocation(lotID, locationID); err != nil {
				return err
			}
		}
		return nil
	})
}
