package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/salesiana/inventory-system/internal/application/dto"
	"github.com/salesiana/inventory-system/internal/domain/entity"
	"github.com/salesiana/inventory-system/internal/domain/repository"
)

// MasterDataHandler CRUD plano de datos maestros: productos, ubicaciones,
// tipos de movimiento y lotes. Sin reglas de negocio más allá de unicidad;
// el stock y la capacidad solo los muta el motor.
type MasterDataHandler struct {
	products      repository.ProductRepository
	locations     repository.LocationRepository
	movementTypes repository.MovementTypeRepository
	lots          repository.LotRepository
}

// NewMasterDataHandler construye el handler.
func NewMasterDataHandler(
	products repository.ProductRepository,
	locations repository.LocationRepository,
	movementTypes repository.MovementTypeRepository,
	lots repository.LotRepository,
) *MasterDataHandler {
	return &MasterDataHandler{
		products:      products,
		locations:     locations,
		movementTypes: movementTypes,
		lots:          lots,
	}
}

// CreateProduct alta de producto; el stock nace en 0 y solo lo mueve el motor.
func (h *MasterDataHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       0,
		MinStock:    in.MinStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.products.Create(product); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": product.ID})
}

// GetProduct devuelve un producto por ID.
func (h *MasterDataHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.products.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(product)
}

// ListProducts lista productos (query params limit/offset).
func (h *MasterDataHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.products.List(c.QueryInt("limit", 50), c.QueryInt("offset"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(products), "products": products})
}

// CreateLocation alta de ubicación; la capacidad ocupada nace en 0.
func (h *MasterDataHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.MaxCapacity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la capacidad máxima no puede ser negativa"})
	}
	now := time.Now()
	location := &entity.Location{
		ID:              uuid.New().String(),
		Code:            in.Code,
		Name:            in.Name,
		MaxCapacity:     in.MaxCapacity,
		CurrentCapacity: 0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.locations.Create(location); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": location.ID})
}

// ListLocations lista ubicaciones.
func (h *MasterDataHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.locations.List(c.QueryInt("limit", 50), c.QueryInt("offset"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(locations), "locations": locations})
}

// CreateMovementType alta de tipo de movimiento (dato de referencia).
func (h *MasterDataHandler) CreateMovementType(c *fiber.Ctx) error {
	var in dto.CreateMovementTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movementType := &entity.MovementType{
		ID:           uuid.New().String(),
		Name:         in.Name,
		AffectsStock: in.AffectsStock,
	}
	if !movementType.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "affects_stock debe ser 1, -1 o 0"})
	}
	if err := h.movementTypes.Create(movementType); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": movementType.ID})
}

// ListMovementTypes lista los tipos de movimiento.
func (h *MasterDataHandler) ListMovementTypes(c *fiber.Ctx) error {
	types, err := h.movementTypes.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(types), "movement_types": types})
}

// CreateLot alta de lote asociado a un producto.
func (h *MasterDataHandler) CreateLot(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.products.GetByID(in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	lot := &entity.Lot{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		Code:       in.Code,
		LocationID: in.LocationID,
		CreatedAt:  time.Now(),
	}
	if err := h.lots.Create(lot); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": lot.ID})
}
