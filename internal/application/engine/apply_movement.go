package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/salesiana/inventory-system/internal/domain"
	"github.com/salesiana/inventory-system/internal/domain/entity"
)

// MovementInput entrada para aplicar un movimiento de stock.
// UserID lo resuelve la capa de borde (middleware JWT) una sola vez;
// el motor nunca consulta la sesión ambiente.
type MovementInput struct {
	ProductID      string
	MovementTypeID string
	Quantity       int
	Reason         string
	UserID         string
	Date           time.Time // cero = ahora
}

// ApplyMovement valida y aplica un movimiento de stock de forma atómica:
// persiste el registro en el libro y el nuevo stock del producto en la misma
// transacción, con la fila del producto bloqueada durante la validación.
// Devuelve el movimiento confirmado o un error tipado de dominio.
func (e *Engine) ApplyMovement(ctx context.Context, in MovementInput) (*entity.Movement, error) {
	if in.ProductID == "" {
		return nil, fmt.Errorf("%w: debe indicar un producto", domain.ErrValidation)
	}
	if in.MovementTypeID == "" {
		return nil, fmt.Errorf("%w: debe indicar un tipo de movimiento", domain.ErrValidation)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrValidation)
	}

	// Carga explícita del tipo completo: dato de referencia inmutable,
	// puede resolverse fuera de la transacción.
	movementType, err := e.movementTypes.GetByID(in.MovementTypeID)
	if err != nil {
		return nil, err
	}
	if movementType == nil {
		return nil, fmt.Errorf("%w: tipo de movimiento %s", domain.ErrNotFound, in.MovementTypeID)
	}
	if !movementType.Valid() {
		return nil, fmt.Errorf("%w: tipo de movimiento con dirección desconocida", domain.ErrValidation)
	}

	// Un movimiento siempre exige un actor registrado.
	if in.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	var committed *entity.Movement
	err = e.withRetry(ctx, func() error {
		return e.tx.Run(ctx, func(r TxRepos) error {
			product, err := r.Products.GetForUpdate(in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
			}

			if movementType.AffectsStock == entity.StockDecrease && product.Stock < in.Quantity {
				return &domain.InsufficientStockError{Current: product.Stock, Requested: in.Quantity}
			}

			// El stock nuevo se calcula y escribe aquí, en la misma
			// transacción que el registro del libro: no hay trigger oculto.
			newStock := product.Stock + movementType.AffectsStock*in.Quantity
			if err := r.Products.UpdateStock(product.ID, newStock); err != nil {
				return err
			}

			movement := &entity.Movement{
				ID:             uuid.New().String(),
				ProductID:      product.ID,
				MovementTypeID: movementType.ID,
				Quantity:       in.Quantity,
				Reason:         in.Reason,
				Date:           date,
				UserID:         in.UserID,
				CreatedAt:      time.Now(),
			}
			if err := r.Movements.Create(movement); err != nil {
				return err
			}
			committed = movement
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}
