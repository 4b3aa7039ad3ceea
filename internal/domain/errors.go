package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrValidation        = errors.New("entrada inválida")
	ErrUnauthenticated   = errors.New("no hay usuario autenticado")
	ErrConflict          = errors.New("conflicto de concurrencia, reintentos agotados")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrCapacityExceeded  = errors.New("capacidad insuficiente en la ubicación destino")
	ErrDuplicate         = errors.New("recurso duplicado")
)

// InsufficientStockError indica una salida o transferencia que dejaría el stock en negativo.
// Lleva el stock actual y la cantidad solicitada para construir el mensaje al usuario.
type InsufficientStockError struct {
	Current   int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: stock actual %d, cantidad solicitada %d", e.Current, e.Requested)
}

// Is permite errors.Is(err, ErrInsufficientStock) sobre el error tipado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// CapacityExceededError indica que la ubicación destino no puede recibir la cantidad.
type CapacityExceededError struct {
	Available int
	Requested int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("la ubicación destino no tiene capacidad suficiente: capacidad disponible %d, cantidad solicitada %d", e.Available, e.Requested)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
