package inventory

import (
	"sort"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// StockKey identifica una posición de stock: producto en ubicación.
type StockKey struct {
	ProductID  string
	LocationID string
}

// StockLevels es el resultado de plegar el ledger. Las cantidades pueden ser
// cero o negativas (no se valida stock al escribir).
type StockLevels map[StockKey]int64

// Aggregate recalcula el stock desde cero recorriendo todos los movimientos:
// suma qty en (producto, destino) y resta qty en (producto, origen).
// El resultado no depende del orden de entrada.
//
// Sin caché incremental: cada lectura vuelve a recorrer el ledger. Si el ledger
// crece, aquí es donde se reemplazaría por una tabla de saldos mantenida en la
// misma transacción que inserta el movimiento.
func Aggregate(movements []*entity.Movement) StockLevels {
	levels := make(StockLevels)
	for _, m := range movements {
		if m == nil {
			continue
		}
		if m.ToLocation != "" {
			levels[StockKey{ProductID: m.ProductID, LocationID: m.ToLocation}] += m.Qty
		}
		if m.FromLocation != "" {
			levels[StockKey{ProductID: m.ProductID, LocationID: m.FromLocation}] -= m.Qty
		}
	}
	return levels
}

// Get devuelve la cantidad en (producto, ubicación); 0 si no hay movimientos.
func (l StockLevels) Get(productID, locationID string) int64 {
	return l[StockKey{ProductID: productID, LocationID: locationID}]
}

// Positive devuelve solo las posiciones con cantidad estrictamente positiva.
func (l StockLevels) Positive() StockLevels {
	out := make(StockLevels, len(l))
	for k, q := range l {
		if q > 0 {
			out[k] = q
		}
	}
	return out
}

// Total suma las cantidades positivas.
func (l StockLevels) Total() int64 {
	var total int64
	for _, q := range l {
		if q > 0 {
			total += q
		}
	}
	return total
}

// Stocks lista todas las posiciones ordenadas por (product_id, location_id).
func (l StockLevels) Stocks() []entity.Stock {
	out := make([]entity.Stock, 0, len(l))
	for k, q := range l {
		out = append(out, entity.Stock{ProductID: k.ProductID, LocationID: k.LocationID, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].LocationID < out[j].LocationID
	})
	return out
}
