// Package seed carga el set de datos de ejemplo (catálogo, ubicaciones y movimientos iniciales).
package seed

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/ports"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// Result conteos después de sembrar.
type Result struct {
	Skipped   bool // ya había productos; no se tocó nada
	Products  int
	Locations int
	Movements int
}

var sampleProducts = []entity.Product{
	{ProductID: "PROD001", Name: "Laptop Computer", Description: "High-performance business laptop"},
	{ProductID: "PROD002", Name: "Office Chair", Description: "Ergonomic office chair with lumbar support"},
	{ProductID: "PROD003", Name: "Monitor Display", Description: "24-inch LED monitor"},
	{ProductID: "PROD004", Name: "Wireless Mouse", Description: "Bluetooth wireless mouse"},
	{ProductID: "PROD005", Name: "Keyboard", Description: "Mechanical keyboard"},
	{ProductID: "PROD006", Name: "Desk Lamp", Description: "LED desk lamp with adjustable brightness"},
}

var sampleLocations = []entity.Location{
	{LocationID: "LOC001", Name: "Main Warehouse", Address: "123 Industrial St, City Center"},
	{LocationID: "LOC002", Name: "Store Front", Address: "456 Main St, Downtown"},
	{LocationID: "LOC003", Name: "Secondary Storage", Address: "789 Storage Ave, Industrial Zone"},
	{LocationID: "LOC004", Name: "Distribution Center", Address: "321 Logistics Blvd, Port Area"},
}

var sampleMovements = []entity.Movement{
	// Entradas iniciales
	{ProductID: "PROD001", ToLocation: "LOC001", Qty: 50},
	{ProductID: "PROD002", ToLocation: "LOC001", Qty: 25},
	{ProductID: "PROD003", ToLocation: "LOC001", Qty: 30},
	{ProductID: "PROD004", ToLocation: "LOC001", Qty: 100},
	{ProductID: "PROD005", ToLocation: "LOC001", Qty: 75},
	{ProductID: "PROD006", ToLocation: "LOC001", Qty: 40},

	// Traslados a tienda
	{ProductID: "PROD001", FromLocation: "LOC001", ToLocation: "LOC002", Qty: 10},
	{ProductID: "PROD002", FromLocation: "LOC001", ToLocation: "LOC002", Qty: 5},
	{ProductID: "PROD003", FromLocation: "LOC001", ToLocation: "LOC002", Qty: 8},
	{ProductID: "PROD004", FromLocation: "LOC001", ToLocation: "LOC002", Qty: 20},

	// Traslados a bodega secundaria
	{ProductID: "PROD001", FromLocation: "LOC001", ToLocation: "LOC003", Qty: 15},
	{ProductID: "PROD005", FromLocation: "LOC001", ToLocation: "LOC003", Qty: 25},
	{ProductID: "PROD006", FromLocation: "LOC001", ToLocation: "LOC003", Qty: 10},

	// Ventas
	{ProductID: "PROD001", FromLocation: "LOC002", Qty: 3},
	{ProductID: "PROD003", FromLocation: "LOC002", Qty: 2},
	{ProductID: "PROD004", FromLocation: "LOC002", Qty: 5},
}

// Run siembra los datos de ejemplo en una sola transacción. Si ya existen productos no hace nada.
func Run(ctx context.Context, tx ports.TxRunner) (Result, error) {
	var res Result
	err := tx.Run(ctx, func(
		products repository.ProductRepository,
		locations repository.LocationRepository,
		movements repository.MovementRepository,
	) error {
		n, err := products.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			res.Skipped = true
			return nil
		}

		now := time.Now().UTC()
		for _, p := range sampleProducts {
			p := p
			p.CreatedAt, p.UpdatedAt = now, now
			if err := products.Create(ctx, &p); err != nil {
				return err
			}
		}
		for _, l := range sampleLocations {
			l := l
			l.CreatedAt, l.UpdatedAt = now, now
			if err := locations.Create(ctx, &l); err != nil {
				return err
			}
		}
		// Timestamps crecientes para que el orden del listado refleje el de inserción.
		for i, m := range sampleMovements {
			m := m
			m.Timestamp = now.Add(time.Duration(i) * time.Millisecond)
			if err := movements.Create(ctx, &m); err != nil {
				return err
			}
		}

		if res.Products, err = products.Count(ctx); err != nil {
			return err
		}
		if res.Locations, err = locations.Count(ctx); err != nil {
			return err
		}
		res.Movements, err = movements.Count(ctx)
		return err
	})
	return res, err
}
