package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/domain/inventory"
)

func TestGenerateInventoryPDF(t *testing.T) {
	g := NewMarotoReportGenerator("")
	rows := []inventory.ReportRow{
		{Product: "Laptop", ProductID: "P1", Location: "Main", LocationID: "L1", Quantity: 40},
		{Product: "Laptop", ProductID: "P1", Location: "Store", LocationID: "L2", Quantity: 10},
	}
	summary := inventory.Summary{TotalProducts: 1, TotalLocations: 2, TotalMovements: 2, TotalStock: 50}

	out, err := g.GenerateInventoryPDF(context.Background(), rows, summary, time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInventoryPDF_Empty(t *testing.T) {
	out, err := NewMarotoReportGenerator("Bodegas").GenerateInventoryPDF(context.Background(), nil, inventory.Summary{}, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateInventoryPDF_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoReportGenerator("").GenerateInventoryPDF(ctx, nil, inventory.Summary{}, time.Now())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNumberFormatting(t *testing.T) {
	g := NewMarotoReportGenerator("")
	assert.Equal(t, "50", g.number(50))
	assert.Equal(t, "1.000.000", g.number(1000000))
}
