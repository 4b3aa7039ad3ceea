package engine

import (
	"context"
	"errors"
	"time"

	"github.com/salesiana/inventory-system/internal/domain"
	"github.com/salesiana/inventory-system/internal/domain/repository"
)

// Valores por defecto del reintento ante ErrConflict.
const (
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 50 * time.Millisecond
)

// Config parámetros de reintento del motor.
type Config struct {
	MaxRetries   int           // reintentos adicionales tras el primer ErrConflict
	RetryBackoff time.Duration // espera base; crece linealmente por intento
}

// Engine es el motor de consistencia de inventario: valida y aplica
// movimientos y transferencias de forma atómica, preservando los
// invariantes de stock y capacidad bajo peticiones concurrentes.
//
// La serialización por agregado se logra con bloqueo pesimista de fila
// (SELECT FOR UPDATE) dentro de una única transacción. Un deadlock entre
// transferencias cruzadas lo resuelve PostgreSQL abortando una de las dos;
// esa víctima llega aquí como domain.ErrConflict y se reintenta.
type Engine struct {
	tx            TxRunner
	movementTypes repository.MovementTypeRepository
	maxRetries    int
	retryBackoff  time.Duration
}

// New construye el motor. Los valores no positivos de cfg toman los defaults.
func New(tx TxRunner, movementTypes repository.MovementTypeRepository, cfg Config) *Engine {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = DefaultRetryBackoff
	}
	return &Engine{
		tx:            tx,
		movementTypes: movementTypes,
		maxRetries:    cfg.MaxRetries,
		retryBackoff:  cfg.RetryBackoff,
	}
}

// withRetry ejecuta fn y la reintenta con backoff lineal mientras devuelva
// domain.ErrConflict, hasta agotar maxRetries. Cualquier otro error corta.
func (e *Engine) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * e.retryBackoff):
			}
		}
		err = fn()
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}
	}
	return err
}
