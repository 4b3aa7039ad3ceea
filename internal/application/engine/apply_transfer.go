package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/salesiana/inventory-system/internal/domain"
	"github.com/salesiana/inventory-system/internal/domain/entity"
)

// TransferInput entrada para aplicar una transferencia entre ubicaciones.
// FromLocationID vacío = ingreso externo. LotID y UserID son opcionales.
type TransferInput struct {
	ProductID      string
	FromLocationID string
	ToLocationID   string
	LotID          string
	Quantity       int
	UserID         string
	Date           time.Time // cero = ahora
}

// ApplyTransfer valida y aplica una transferencia de forma atómica: ajusta
// la capacidad de origen y destino, reubica el lote si corresponde y
// persiste el registro en el libro, todo en la misma transacción.
//
// El chequeo de "stock suficiente en origen" se hace contra el stock total
// del producto (modelo de stock único, no por ubicación).
func (e *Engine) ApplyTransfer(ctx context.Context, in TransferInput) (*entity.Transfer, error) {
	// Validaciones de forma, antes de cualquier búsqueda.
	if in.ProductID == "" {
		return nil, fmt.Errorf("%w: debe indicar un producto", domain.ErrValidation)
	}
	if in.ToLocationID == "" {
		return nil, fmt.Errorf("%w: debe indicar una ubicación destino", domain.ErrValidation)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrValidation)
	}
	if in.FromLocationID != "" && in.FromLocationID == in.ToLocationID {
		return nil, fmt.Errorf("%w: la ubicación de origen y destino no pueden ser iguales", domain.ErrValidation)
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	var committed *entity.Transfer
	err := e.withRetry(ctx, func() error {
		return e.tx.Run(ctx, func(r TxRepos) error {
			destination, err := r.Locations.GetForUpdate(in.ToLocationID)
			if err != nil {
				return err
			}
			if destination == nil {
				return fmt.Errorf("%w: ubicación destino %s", domain.ErrNotFound, in.ToLocationID)
			}
			if !destination.HasCapacityFor(in.Quantity) {
				return &domain.CapacityExceededError{Available: destination.Available(), Requested: in.Quantity}
			}

			// Se bloquea también el producto: serializa la lectura de stock
			// frente a movimientos concurrentes sobre el mismo producto.
			product, err := r.Products.GetForUpdate(in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
			}

			var source *entity.Location
			if in.FromLocationID != "" {
				if product.Stock < in.Quantity {
					return &domain.InsufficientStockError{Current: product.Stock, Requested: in.Quantity}
				}
				source, err = r.Locations.GetForUpdate(in.FromLocationID)
				if err != nil {
					return err
				}
				if source == nil {
					return fmt.Errorf("%w: ubicación origen %s", domain.ErrNotFound, in.FromLocationID)
				}
				// Guarda del invariante 0 <= capacidad: el origen debe tener
				// registrada al menos la cantidad que sale.
				if source.CurrentCapacity < in.Quantity {
					return fmt.Errorf("%w: la ubicación origen solo tiene %d unidades registradas", domain.ErrValidation, source.CurrentCapacity)
				}
			}

			var lot *entity.Lot
			if in.LotID != "" {
				lot, err = r.Lots.GetForUpdate(in.LotID)
				if err != nil {
					return err
				}
				if lot == nil {
					return fmt.Errorf("%w: lote %s", domain.ErrNotFound, in.LotID)
				}
				if lot.ProductID != product.ID {
					return fmt.Errorf("%w: el lote seleccionado no pertenece al producto", domain.ErrValidation)
				}
			}

			// Todas las validaciones pasaron: recién ahora se escribe.
			if source != nil {
				if err := r.Locations.UpdateCapacity(source.ID, source.CurrentCapacity-in.Quantity); err != nil {
					return err
				}
			}
			if err := r.Locations.UpdateCapacity(destination.ID, destination.CurrentCapacity+in.Quantity); err != nil {
				return err
			}
			if lot != nil {
				if err := r.Lots.UpdateLocation(lot.ID, destination.ID); err != nil {
					return err
				}
			}

			transfer := &entity.Transfer{
				ID:             uuid.New().String(),
				ProductID:      product.ID,
				LotID:          in.LotID,
				FromLocationID: in.FromLocationID,
				ToLocationID:   destination.ID,
				Quantity:       in.Quantity,
				Date:           date,
				UserID:         in.UserID,
				CreatedAt:      time.Now(),
			}
			if err := r.Transfers.Create(transfer); err != nil {
				return err
			}
			committed = transfer
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}
