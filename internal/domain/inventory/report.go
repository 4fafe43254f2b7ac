package inventory

import (
	"sort"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// ReportRow es una línea del reporte de inventario con nombres legibles.
type ReportRow struct {
	Product    string
	ProductID  string
	Location   string
	LocationID string
	Quantity   int64
}

// Summary son los totales del dashboard.
type Summary struct {
	TotalProducts  int
	TotalLocations int
	TotalMovements int
	TotalStock     int64
}

// BuildReport une el stock agregado con los nombres de producto y ubicación.
// Solo incluye cantidades > 0. Si la entidad ya no existe se usa el id crudo
// como nombre. Orden: (nombre de producto, nombre de ubicación), comparación
// de cadenas byte a byte; los ids desempatan para que la salida sea estable.
func BuildReport(levels StockLevels, products []*entity.Product, locations []*entity.Location) []ReportRow {
	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ProductID] = p.Name
	}
	locationNames := make(map[string]string, len(locations))
	for _, l := range locations {
		locationNames[l.LocationID] = l.Name
	}

	stocks := levels.Positive().Stocks()
	rows := make([]ReportRow, 0, len(stocks))
	for _, st := range stocks {
		rows = append(rows, ReportRow{
			Product:    displayName(productNames, st.ProductID),
			ProductID:  st.ProductID,
			Location:   displayName(locationNames, st.LocationID),
			LocationID: st.LocationID,
			Quantity:   st.Quantity,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Product != b.Product {
			return a.Product < b.Product
		}
		if a.Location != b.Location {
			return a.Location < b.Location
		}
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		return a.LocationID < b.LocationID
	})
	return rows
}

// Summarize arma los totales del dashboard; TotalStock es la suma de cantidades positivas.
func Summarize(levels StockLevels, totalProducts, totalLocations, totalMovements int) Summary {
	return Summary{
		TotalProducts:  totalProducts,
		TotalLocations: totalLocations,
		TotalMovements: totalMovements,
		TotalStock:     levels.Total(),
	}
}

func displayName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
