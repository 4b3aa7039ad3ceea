package query_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesiana/inventory-system/internal/application/query"
	"github.com/salesiana/inventory-system/internal/domain"
	"github.com/salesiana/inventory-system/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// ledger contiene los datos que la fachada consulta. Los fakes reproducen el
// contrato de orden de los repositorios reales: listados más recientes primero,
// rangos de fecha inclusivos.
type ledger struct {
	products  map[string]*entity.Product
	locations map[string]*entity.Location
	lots      map[string]*entity.Lot
	movements []*entity.Movement
	transfers []*entity.Transfer
}

type qProducts struct{ l *ledger }

func (r *qProducts) Create(p *entity.Product) error                  { return nil }
func (r *qProducts) GetByID(id string) (*entity.Product, error)      { return r.l.products[id], nil }
func (r *qProducts) GetBySKU(sku string) (*entity.Product, error)    { return nil, nil }
func (r *qProducts) GetForUpdate(id string) (*entity.Product, error) { return r.l.products[id], nil }
func (r *qProducts) Update(p *entity.Product) error                  { return nil }
func (r *qProducts) UpdateStock(productID string, stock int) error   { return nil }
func (r *qProducts) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *qProducts) Delete(id string) error                          { return nil }

type qLocations struct{ l *ledger }

func (r *qLocations) Create(loc *entity.Location) error                  { return nil }
func (r *qLocations) GetByID(id string) (*entity.Location, error)        { return r.l.locations[id], nil }
func (r *qLocations) GetForUpdate(id string) (*entity.Location, error)   { return r.l.locations[id], nil }
func (r *qLocations) Update(loc *entity.Location) error                  { return nil }
func (r *qLocations) UpdateCapacity(locationID string, c int) error      { return nil }
func (r *qLocations) List(limit, offset int) ([]*entity.Location, error) { return nil, nil }
func (r *qLocations) Delete(id string) error                             { return nil }

type qLots struct{ l *ledger }

func (r *qLots) Create(lot *entity.Lot) error                        { return nil }
func (r *qLots) GetByID(id string) (*entity.Lot, error)              { return r.l.lots[id], nil }
func (r *qLots) GetForUpdate(id string) (*entity.Lot, error)         { return r.l.lots[id], nil }
func (r *qLots) UpdateLocation(lotID, locationID string) error       { return nil }
func (r *qLots) ListByProduct(productID string) ([]*entity.Lot, error) { return nil, nil }

func newestFirstMov(in []*entity.Movement) []*entity.Movement {
	out := append([]*entity.Movement(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func newestFirstTr(in []*entity.Transfer) []*entity.Transfer {
	out := append([]*entity.Transfer(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

type qMovements struct{ l *ledger }

func (r *qMovements) Create(m *entity.Movement) error             { return nil }
func (r *qMovements) GetByID(id string) (*entity.Movement, error) { return nil, nil }
func (r *qMovements) ListByProduct(productID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range newestFirstMov(r.l.movements) {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *qMovements) ListBetween(from, to time.Time) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range newestFirstMov(r.l.movements) {
		if !m.Date.Before(from) && !m.Date.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *qMovements) ListRecent(limit int) ([]*entity.Movement, error) {
	out := newestFirstMov(r.l.movements)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
func (r *qMovements) ListAllAsc() ([]*entity.Movement, error) { return nil, nil }

type qTransfers struct{ l *ledger }

func (r *qTransfers) Create(t *entity.Transfer) error             { return nil }
func (r *qTransfers) GetByID(id string) (*entity.Transfer, error) { return nil, nil }
func (r *qTransfers) ListByProduct(productID string) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range newestFirstTr(r.l.transfers) {
		if t.ProductID == productID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *qTransfers) ListByLot(lotID string) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range newestFirstTr(r.l.transfers) {
		if t.LotID == lotID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *qTransfers) ListByLocation(locationID string) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range newestFirstTr(r.l.transfers) {
		if t.FromLocationID == locationID || t.ToLocationID == locationID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *qTransfers) ListBetween(from, to time.Time) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range newestFirstTr(r.l.transfers) {
		if !t.Date.Before(from) && !t.Date.After(to) {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *qTransfers) ListRecent(limit int) ([]*entity.Transfer, error) {
	out := newestFirstTr(r.l.transfers)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
func (r *qTransfers) ListAllAsc() ([]*entity.Transfer, error) { return nil, nil }

func newQueries(l *ledger) *query.Queries {
	return query.New(&qProducts{l: l}, &qLocations{l: l}, &qLots{l: l}, &qMovements{l: l}, &qTransfers{l: l})
}

func at(day int) time.Time {
	return time.Date(2026, time.April, day, 0, 0, 0, 0, time.UTC)
}

func seed() *ledger {
	l := &ledger{
		products:  map[string]*entity.Product{"prod-a": {ID: "prod-a"}, "prod-b": {ID: "prod-b"}},
		locations: map[string]*entity.Location{"loc-x": {ID: "loc-x"}, "loc-y": {ID: "loc-y"}},
		lots:      map[string]*entity.Lot{"lote-1": {ID: "lote-1", ProductID: "prod-a"}},
	}
	for d := 1; d <= 15; d++ {
		l.movements = append(l.movements, &entity.Movement{
			ID:        "mov-" + string(rune('a'+d-1)),
			ProductID: "prod-a",
			Quantity:  d,
			Date:      at(d),
		})
	}
	l.transfers = []*entity.Transfer{
		{ID: "tr-1", ProductID: "prod-a", ToLocationID: "loc-x", Quantity: 5, Date: at(1)},
		{ID: "tr-2", ProductID: "prod-a", FromLocationID: "loc-x", ToLocationID: "loc-y", LotID: "lote-1", Quantity: 2, Date: at(2)},
		{ID: "tr-3", ProductID: "prod-b", ToLocationID: "loc-y", Quantity: 1, Date: at(3)},
	}
	return l
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Los listados por producto vienen más recientes primero.
func TestMovementsForProduct_OrdenMasRecientePrimero(t *testing.T) {
	q := newQueries(seed())

	movs, err := q.MovementsForProduct(context.Background(), "prod-a")
	require.NoError(t, err)
	require.Len(t, movs, 15)
	for i := 1; i < len(movs); i++ {
		assert.False(t, movs[i].Date.After(movs[i-1].Date), "el orden debe ser descendente por fecha")
	}
}

// Producto inexistente: ErrNotFound, no lista vacía.
func TestMovementsForProduct_ProductoInexistente(t *testing.T) {
	q := newQueries(seed())

	_, err := q.MovementsForProduct(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = q.TransfersForProduct(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// "Últimos N": límite explícito y límite por defecto de 10.
func TestRecentMovements_Limites(t *testing.T) {
	q := newQueries(seed())

	movs, err := q.RecentMovements(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, movs, 5)
	assert.Equal(t, at(15), movs[0].Date, "el más reciente primero")

	// Límite no positivo: se aplica el default de 10.
	movs, err = q.RecentMovements(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, movs, 10)

	trs, err := q.RecentTransfers(context.Background(), -1)
	require.NoError(t, err)
	assert.Len(t, trs, 3, "hay menos transferencias que el default")
}

// Transferencias por lote y por ubicación (origen o destino).
func TestTransfersPorLoteYUbicacion(t *testing.T) {
	q := newQueries(seed())

	trs, err := q.TransfersForLot(context.Background(), "lote-1")
	require.NoError(t, err)
	require.Len(t, trs, 1)
	assert.Equal(t, "tr-2", trs[0].ID)

	trs, err = q.TransfersForLocation(context.Background(), "loc-x")
	require.NoError(t, err)
	assert.Len(t, trs, 2, "loc-x aparece como destino en tr-1 y origen en tr-2")

	trs, err = q.TransfersForLocation(context.Background(), "loc-y")
	require.NoError(t, err)
	assert.Len(t, trs, 2)

	_, err = q.TransfersForLot(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = q.TransfersForLocation(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Rango de fechas inclusivo en ambos extremos.
func TestListadosPorRangoDeFechas(t *testing.T) {
	q := newQueries(seed())

	movs, err := q.MovementsBetween(context.Background(), at(3), at(6))
	require.NoError(t, err)
	assert.Len(t, movs, 4, "días 3, 4, 5 y 6")

	trs, err := q.TransfersBetween(context.Background(), at(2), at(3))
	require.NoError(t, err)
	assert.Len(t, trs, 2)
}

// Rango por producto: filtra por producto además de por fechas.
func TestMovementsForProductBetween(t *testing.T) {
	l := seed()
	l.movements = append(l.movements, &entity.Movement{
		ID: "mov-otro", ProductID: "prod-b", Quantity: 1, Date: at(4),
	})
	q := newQueries(l)

	movs, err := q.MovementsForProductBetween(context.Background(), "prod-a", at(3), at(6))
	require.NoError(t, err)
	assert.Len(t, movs, 4, "solo los movimientos de prod-a en el rango")
	for _, m := range movs {
		assert.Equal(t, "prod-a", m.ProductID)
	}

	_, err = q.MovementsForProductBetween(context.Background(), "no-existe", at(1), at(2))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
