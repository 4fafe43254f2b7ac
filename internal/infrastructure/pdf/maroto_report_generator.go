// Package pdf implementa la representación imprimible del reporte de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Productos | Ubicaciones | Movimientos | Stock     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | ID | Ubicación | ID | Cantidad           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de filas                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stock-ledger/internal/application/ports"
	"github.com/jhoicas/stock-ledger/internal/domain/inventory"
)

var _ ports.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title   string
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador. title aparece en el encabezado.
func NewMarotoReportGenerator(title string) *MarotoReportGenerator {
	if title == "" {
		title = "Reporte de inventario"
	}
	return &MarotoReportGenerator{
		title:   title,
		printer: message.NewPrinter(language.Spanish),
	}
}

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	ctx context.Context,
	rows []inventory.ReportRow,
	summary inventory.Summary,
	generatedAt time.Time,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRow(len(rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.UTC().Format("02/01/2006 15:04 UTC"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoReportGenerator) summaryRow(s inventory.Summary) core.Row {
	cell := func(label string, value int64) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorPrimary, Top: 1,
			}),
			text.New(g.number(value), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		cell("PRODUCTOS", int64(s.TotalProducts)),
		cell("UBICACIONES", int64(s.TotalLocations)),
		cell("MOVIMIENTOS", int64(s.TotalMovements)),
		cell("STOCK TOTAL", s.TotalStock),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("ID", 2, align.Left),
		h("Ubicación", 3, align.Left),
		h("ID", 1, align.Left),
		h("Cantidad", 2, align.Right),
	)
}

// tableRows: una fila por par producto/ubicación, con bandas alternas.
func (g *MarotoReportGenerator) tableRows(rows []inventory.ReportRow) []core.Row {
	if len(rows) == 0 {
		return []core.Row{row.New(10).Add(col.New(12).Add(
			text.New("Sin existencias registradas", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		))}
	}
	cellText := func(a align.Type) props.Text {
		return props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}
	}
	result := make([]core.Row, 0, len(rows))
	for i, r := range rows {
		rr := row.New(7).Add(
			col.New(4).Add(text.New(r.Product, cellText(align.Left))),
			col.New(2).Add(text.New(r.ProductID, cellText(align.Left))),
			col.New(3).Add(text.New(r.Location, cellText(align.Left))),
			col.New(1).Add(text.New(r.LocationID, cellText(align.Left))),
			col.New(2).Add(text.New(g.number(r.Quantity), cellText(align.Right))),
		)
		if i%2 == 1 {
			rr.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, rr)
	}
	return result
}

func (g *MarotoReportGenerator) footerRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(g.printer.Sprintf("%d filas con existencias positivas", count), props.Text{
			Size: 7, Color: colorGray, Top: 2,
		}),
	))
}

// number formatea con separador de miles (es: 1.000.000).
func (g *MarotoReportGenerator) number(n int64) string {
	return g.printer.Sprintf("%d", n)
}
