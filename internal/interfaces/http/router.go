package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salesiana/inventory-system/internal/application/auth"
	"github.com/salesiana/inventory-system/internal/application/engine"
	"github.com/salesiana/inventory-system/internal/application/projection"
	"github.com/salesiana/inventory-system/internal/application/query"
	"github.com/salesiana/inventory-system/internal/domain/entity"
	"github.com/salesiana/inventory-system/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Engine        *engine.Engine
	Queries       *query.Queries
	Projector     *projection.Projector
	AuthUC        *auth.AuthUseCase
	Products      repository.ProductRepository
	Locations     repository.LocationRepository
	MovementTypes repository.MovementTypeRepository
	Lots          repository.LotRepository
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Datos maestros (protegido; escritura solo admin/almacen)
	master := NewMasterDataHandler(deps.Products, deps.Locations, deps.MovementTypes, deps.Lots)
	writer := RequireRole(entity.RoleAdmin, entity.RoleAlmacen)

	products := protected.Group("/products")
	products.Post("/", writer, master.CreateProduct)
	products.Get("/", master.ListProducts)
	products.Get("/:id", master.GetProduct)

	locations := protected.Group("/locations")
	locations.Post("/", writer, master.CreateLocation)
	locations.Get("/", master.ListLocations)

	movementTypes := protected.Group("/movement-types")
	movementTypes.Post("/", RequireRole(entity.RoleAdmin), master.CreateMovementType)
	movementTypes.Get("/", master.ListMovementTypes)

	lots := protected.Group("/lots")
	lots.Post("/", writer, master.CreateLot)

	// Motor de inventario (protegido; escribe el libro)
	inventoryHandler := NewInventoryHandler(deps.Engine)
	inventory := protected.Group("/inventory")
	inventory.Post("/movements", writer, inventoryHandler.RegisterMovement)
	inventory.Post("/transfers", writer, inventoryHandler.RegisterTransfer)

	// Consultas (protegido, solo lectura)
	queryHandler := NewQueryHandler(deps.Queries, deps.Projector)
	products.Get("/:id/stock", queryHandler.CurrentStock)
	products.Get("/:id/movements", queryHandler.MovementsForProduct)
	products.Get("/:id/transfers", queryHandler.TransfersForProduct)
	locations.Get("/:id/capacity", queryHandler.CurrentCapacity)
	locations.Get("/:id/transfers", queryHandler.TransfersForLocation)
	lots.Get("/:id/transfers", queryHandler.TransfersForLot)
	inventory.Get("/movements", queryHandler.RecentMovements)
	inventory.Get("/transfers", queryHandler.RecentTransfers)
}
