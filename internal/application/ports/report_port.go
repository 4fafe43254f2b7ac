package ports

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/inventory"
)

// InventoryPDFGenerator genera la representación imprimible del reporte de inventario.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(
		ctx context.Context,
		rows []inventory.ReportRow,
		summary inventory.Summary,
		generatedAt time.Time,
	) ([]byte, error)
}
