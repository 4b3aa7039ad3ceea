package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/salesiana/inventory-system/internal/application/dto"
	"github.com/salesiana/inventory-system/internal/application/engine"
	"github.com/salesiana/inventory-system/internal/domain/entity"
)

// InventoryHandler maneja el registro de movimientos y transferencias (protegido).
// El UserID sale del token (middleware) y se pasa explícito al motor.
type InventoryHandler struct {
	engine *engine.Engine
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(eng *engine.Engine) *InventoryHandler {
	return &InventoryHandler{engine: eng}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, movement_type_id, quantity, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := engine.MovementInput{
		ProductID:      in.ProductID,
		MovementTypeID: in.MovementTypeID,
		Quantity:       in.Quantity,
		Reason:         in.Reason,
		UserID:         GetUserID(c),
	}
	if in.Date != nil {
		input.Date = *in.Date
	}
	movement, err := h.engine.ApplyMovement(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(movement))
}

// RegisterTransfer godoc
// @Summary      Registrar transferencia entre ubicaciones
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterTransferRequest  true  "product_id, to_location_id, quantity; from_location_id y lot_id opcionales"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) RegisterTransfer(c *fiber.Ctx) error {
	var in dto.RegisterTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := engine.TransferInput{
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		LotID:          in.LotID,
		Quantity:       in.Quantity,
		UserID:         GetUserID(c),
	}
	if in.Date != nil {
		input.Date = *in.Date
	}
	transfer, err := h.engine.ApplyTransfer(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransferResponse(transfer))
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		MovementTypeID: m.MovementTypeID,
		Quantity:       m.Quantity,
		Reason:         m.Reason,
		Date:           m.Date.Truncate(time.Millisecond),
		UserID:         m.UserID,
	}
}

func toTransferResponse(t *entity.Transfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:             t.ID,
		ProductID:      t.ProductID,
		LotID:          t.LotID,
		FromLocationID: t.FromLocationID,
		ToLocationID:   t.ToLocationID,
		Quantity:       t.Quantity,
		Date:           t.Date.Truncate(time.Millisecond),
		UserID:         t.UserID,
	}
}
