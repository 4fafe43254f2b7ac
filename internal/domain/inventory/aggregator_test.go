package inventory_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/inventory"
)

func mov(id int64, product, from, to string, qty int64) *entity.Movement {
	return &entity.Movement{MovementID: id, ProductID: product, FromLocation: from, ToLocation: to, Qty: qty}
}

func sampleLedger() []*entity.Movement {
	return []*entity.Movement{
		mov(1, "P1", "", "L1", 50),
		mov(2, "P2", "", "L1", 25),
		mov(3, "P1", "L1", "L2", 10),
		mov(4, "P3", "", "L2", 15),
		mov(5, "P4", "", "L1", 100),
		mov(6, "P1", "L2", "", 3),
		mov(7, "P3", "L2", "", 20), // deja stock negativo: no se rechaza
	}
}

func TestAggregate_EntradaYTraslado(t *testing.T) {
	levels := inventory.Aggregate([]*entity.Movement{
		mov(1, "P1", "", "L1", 50),
		mov(2, "P1", "L1", "L2", 10),
	})

	assert.Equal(t, inventory.StockLevels{
		{ProductID: "P1", LocationID: "L1"}: 40,
		{ProductID: "P1", LocationID: "L2"}: 10,
	}, levels)
}

func TestAggregate_LedgerVacio(t *testing.T) {
	levels := inventory.Aggregate(nil)
	assert.Empty(t, levels)
	assert.Equal(t, int64(0), levels.Get("P1", "L1"))
	assert.Equal(t, int64(0), levels.Total())
}

func TestAggregate_StockNegativoSeConserva(t *testing.T) {
	levels := inventory.Aggregate(sampleLedger())
	assert.Equal(t, int64(-5), levels.Get("P3", "L2"))
	assert.NotContains(t, levels.Positive(), inventory.StockKey{ProductID: "P3", LocationID: "L2"})
}

func TestAggregate_InvarianteAlReordenar(t *testing.T) {
	ledger := sampleLedger()
	want := inventory.Aggregate(ledger)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := make([]*entity.Movement, len(ledger))
		copy(shuffled, ledger)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, inventory.Aggregate(shuffled))
	}
}

func TestAggregate_InsertarYBorrarEsNeutro(t *testing.T) {
	ledger := sampleLedger()
	want := inventory.Aggregate(ledger)

	for _, extra := range []*entity.Movement{
		mov(99, "P1", "", "L3", 7),
		mov(99, "P2", "L1", "", 30),
		mov(99, "P4", "L1", "L2", 60),
	} {
		withExtra := append(append([]*entity.Movement{}, ledger...), extra)
		// quitar el movimiento 99 devuelve el ledger original
		var without []*entity.Movement
		for _, m := range withExtra {
			if m.MovementID != extra.MovementID {
				without = append(without, m)
			}
		}
		assert.Equal(t, want, inventory.Aggregate(without))
		assert.NotEqual(t, want, inventory.Aggregate(withExtra))
	}
}

func TestStockLevels_StocksOrdenados(t *testing.T) {
	stocks := inventory.Aggregate(sampleLedger()).Stocks()
	for i := 1; i < len(stocks); i++ {
		prev, cur := stocks[i-1], stocks[i]
		assert.True(t, prev.ProductID < cur.ProductID ||
			(prev.ProductID == cur.ProductID && prev.LocationID < cur.LocationID))
	}
	assert.Equal(t, entity.Stock{ProductID: "P1", LocationID: "L1", Quantity: 40}, stocks[0])
}

func TestStockLevels_Total(t *testing.T) {
	// P1@L1 40, P1@L2 7, P2@L1 25, P3@L2 -5 (ignorado), P4@L1 100
	assert.Equal(t, int64(172), inventory.Aggregate(sampleLedger()).Total())
}
