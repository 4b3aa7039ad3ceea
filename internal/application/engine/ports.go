package engine

import (
	"context"

	"github.com/salesiana/inventory-system/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Products  repository.ProductRepository
	Locations repository.LocationRepository
	Lots      repository.LotRepository
	Movements repository.MovementRepository
	Transfers repository.TransferRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor: todos
// los efectos de fn se confirman juntos o ninguno.
//
// La implementación debe traducir fallos de serialización o de espera de
// lock a domain.ErrConflict para que el motor pueda reintentar.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
