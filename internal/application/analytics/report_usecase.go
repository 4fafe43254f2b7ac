// Package analytics contiene los casos de uso de lectura: reporte de inventario
// por ubicación y estadísticas del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/ports"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// ReportUseCase deriva el stock actual recorriendo el ledger completo en cada llamada.
//
// Las lecturas no son transaccionales entre sí (read committed): un reporte puede
// reflejar solo parte de movimientos que se confirman en paralelo.
type ReportUseCase struct {
	products  repository.ProductRepository
	locations repository.LocationRepository
	movements repository.MovementRepository
	pdf       ports.InventoryPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se expone el PDF.
func NewReportUseCase(
	products repository.ProductRepository,
	locations repository.LocationRepository,
	movements repository.MovementRepository,
	pdf ports.InventoryPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{products: products, locations: locations, movements: movements, pdf: pdf}
}

// snapshot es lo leído del almacenamiento para armar reporte y totales.
type snapshot struct {
	products  []*entity.Product
	locations []*entity.Location
	movements []*entity.Movement
}

// load lee productos, ubicaciones y ledger en paralelo.
func (uc *ReportUseCase) load(ctx context.Context) (*snapshot, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type locationsResult struct {
		list []*entity.Location
		err  error
	}
	type movementsResult struct {
		list []*entity.Movement
		err  error
	}

	productsCh := make(chan productsResult, 1)
	locationsCh := make(chan locationsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		list, err := uc.products.List(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.locations.List(ctx)
		locationsCh <- locationsResult{list, err}
	}()
	go func() {
		list, err := uc.movements.List(ctx)
		movementsCh <- movementsResult{list, err}
	}()

	p := <-productsCh
	l := <-locationsCh
	m := <-movementsCh

	if p.err != nil {
		return nil, fmt.Errorf("reporte: productos: %w", p.err)
	}
	if l.err != nil {
		return nil, fmt.Errorf("reporte: ubicaciones: %w", l.err)
	}
	if m.err != nil {
		return nil, fmt.Errorf("reporte: movimientos: %w", m.err)
	}
	return &snapshot{products: p.list, locations: l.list, movements: m.list}, nil
}

func (s *snapshot) report() ([]inventory.ReportRow, inventory.Summary) {
	levels := inventory.Aggregate(s.movements)
	rows := inventory.BuildReport(levels, s.products, s.locations)
	summary := inventory.Summarize(levels, len(s.products), len(s.locations), len(s.movements))
	return rows, summary
}

// InventoryReport devuelve el stock positivo por producto y ubicación,
// ordenado por nombre de producto y luego de ubicación.
func (uc *ReportUseCase) InventoryReport(ctx context.Context) ([]dto.InventoryReportRowDTO, error) {
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	rows, _ := snap.report()
	out := make([]dto.InventoryReportRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InventoryReportRowDTO{
			Product:    r.Product,
			ProductID:  r.ProductID,
			Location:   r.Location,
			LocationID: r.LocationID,
			Quantity:   r.Quantity,
		})
	}
	return out, nil
}

// DashboardStats devuelve conteos de productos, ubicaciones, movimientos y el stock total.
func (uc *ReportUseCase) DashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	_, s := snap.report()
	return &dto.DashboardStatsDTO{
		TotalProducts:  s.TotalProducts,
		TotalLocations: s.TotalLocations,
		TotalMovements: s.TotalMovements,
		TotalStock:     s.TotalStock,
	}, nil
}

// InventoryPDF genera el reporte de inventario en PDF.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("reporte: generador PDF no configurado")
	}
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	rows, summary := snap.report()
	return uc.pdf.GenerateInventoryPDF(ctx, rows, summary, time.Now())
}
