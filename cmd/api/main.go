package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/salesiana/inventory-system/internal/application/auth"
	"github.com/salesiana/inventory-system/internal/application/engine"
	"github.com/salesiana/inventory-system/internal/application/projection"
	"github.com/salesiana/inventory-system/internal/application/query"
	"github.com/salesiana/inventory-system/internal/infrastructure/postgres"
	httprouter "github.com/salesiana/inventory-system/internal/interfaces/http"
	"github.com/salesiana/inventory-system/pkg/config"
	"github.com/salesiana/inventory-system/pkg/logger"
)

func main() {
	rebuild := flag.Bool("rebuild-projections", false, "reconstruye stock y capacidades replayando el libro y termina")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	movementTypeRepo := postgres.NewMovementTypeRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	eng := engine.New(txRunner, movementTypeRepo, engine.Config{
		MaxRetries:   cfg.Engine.MaxRetries,
		RetryBackoff: time.Duration(cfg.Engine.RetryBackoffMs) * time.Millisecond,
	})
	projector := projection.New(productRepo, locationRepo, movementTypeRepo, txRunner)
	queries := query.New(productRepo, locationRepo, lotRepo, movementRepo, transferRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Modo recovery: reconstruir proyecciones desde el libro y salir.
	if *rebuild {
		log.Warn().Msg("reconstruyendo proyecciones desde el libro")
		if err := projector.Rebuild(ctx); err != nil {
			log.Fatal().Err(err).Msg("rebuild de proyecciones")
		}
		log.Info().Msg("proyecciones reconstruidas")
		return
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httprouter.Router(app, httprouter.RouterDeps{
		Engine:        eng,
		Queries:       queries,
		Projector:     projector,
		AuthUC:        authUC,
		Products:      productRepo,
		Locations:     locationRepo,
		MovementTypes: movementTypeRepo,
		Lots:          lotRepo,
		JWTSecret:     cfg.JWT.Secret,
	})

	// Apagado ordenado con SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("apagando servidor")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
	if err := app.Listen(cfg.HTTP.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
}
