package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/salesiana/inventory-system/internal/application/dto"
	"github.com/salesiana/inventory-system/internal/application/projection"
	"github.com/salesiana/inventory-system/internal/application/query"
	"github.com/salesiana/inventory-system/internal/domain/entity"
)

// QueryHandler expone las lecturas: stock/capacidad actuales e historial
// de movimientos y transferencias (protegido, solo lectura).
type QueryHandler struct {
	queries   *query.Queries
	projector *projection.Projector
}

// NewQueryHandler construye el handler.
func NewQueryHandler(q *query.Queries, p *projection.Projector) *QueryHandler {
	return &QueryHandler{queries: q, projector: p}
}

// CurrentStock godoc
// @Summary      Stock actual de un producto
// @Tags         queries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *QueryHandler) CurrentStock(c *fiber.Ctx) error {
	productID := c.Params("id")
	stock, err := h.projector.CurrentStock(c.Context(), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockResponse{ProductID: productID, Stock: stock})
}

// CurrentCapacity godoc
// @Summary      Capacidad ocupada de una ubicación
// @Tags         queries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CapacityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/capacity [get]
func (h *QueryHandler) CurrentCapacity(c *fiber.Ctx) error {
	locationID := c.Params("id")
	capacity, err := h.projector.CurrentCapacity(c.Context(), locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CapacityResponse{LocationID: locationID, CurrentCapacity: capacity})
}

// MovementsForProduct lista los movimientos de un producto, más recientes primero.
// Acepta from/to (RFC3339) para filtrar por rango de fechas.
func (h *QueryHandler) MovementsForProduct(c *fiber.Ctx) error {
	if from, to, ok := dateRange(c); ok {
		movements, err := h.queries.MovementsForProductBetween(c.Context(), c.Params("id"), from, to)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(movementList(movements))
	}
	movements, err := h.queries.MovementsForProduct(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movementList(movements))
}

// RecentMovements lista los últimos N movimientos (query param limit, default 10).
func (h *QueryHandler) RecentMovements(c *fiber.Ctx) error {
	movements, err := h.queries.RecentMovements(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movementList(movements))
}

// TransfersForProduct lista las transferencias de un producto.
func (h *QueryHandler) TransfersForProduct(c *fiber.Ctx) error {
	transfers, err := h.queries.TransfersForProduct(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transferList(transfers))
}

// TransfersForLot lista las transferencias de un lote.
func (h *QueryHandler) TransfersForLot(c *fiber.Ctx) error {
	transfers, err := h.queries.TransfersForLot(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transferList(transfers))
}

// TransfersForLocation lista las transferencias con la ubicación como origen o destino.
func (h *QueryHandler) TransfersForLocation(c *fiber.Ctx) error {
	transfers, err := h.queries.TransfersForLocation(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transferList(transfers))
}

// RecentTransfers lista las últimas N transferencias (query param limit, default 10).
func (h *QueryHandler) RecentTransfers(c *fiber.Ctx) error {
	if from, to, ok := dateRange(c); ok {
		transfers, err := h.queries.TransfersBetween(c.Context(), from, to)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(transferList(transfers))
	}
	transfers, err := h.queries.RecentTransfers(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transferList(transfers))
}

// dateRange lee los query params from/to en RFC3339; ok solo si vienen ambos.
func dateRange(c *fiber.Ctx) (from, to time.Time, ok bool) {
	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, false
	}
	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse(time.RFC3339, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func movementList(movements []*entity.Movement) fiber.Map {
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return fiber.Map{"total": len(out), "movements": out}
}

func transferList(transfers []*entity.Transfer) fiber.Map {
	out := make([]dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, toTransferResponse(t))
	}
	return fiber.Map{"total": len(out), "transfers": out}
}
