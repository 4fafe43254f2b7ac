package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/inventory"
)

func TestBuildReport_OrdenaPorNombres(t *testing.T) {
	levels := inventory.Aggregate([]*entity.Movement{
		mov(1, "P1", "", "L1", 50),
		mov(2, "P1", "L1", "L2", 10),
		mov(3, "P2", "", "L2", 5),
	})
	products := []*entity.Product{
		{ProductID: "P1", Name: "Laptop"},
		{ProductID: "P2", Name: "Chair"},
	}
	locations := []*entity.Location{
		{LocationID: "L1", Name: "Warehouse"},
		{LocationID: "L2", Name: "Store"},
	}

	rows := inventory.BuildReport(levels, products, locations)

	assert.Equal(t, []inventory.ReportRow{
		{Product: "Chair", ProductID: "P2", Location: "Store", LocationID: "L2", Quantity: 5},
		{Product: "Laptop", ProductID: "P1", Location: "Store", LocationID: "L2", Quantity: 10},
		{Product: "Laptop", ProductID: "P1", Location: "Warehouse", LocationID: "L1", Quantity: 40},
	}, rows)
}

func TestBuildReport_OmiteCeroYNegativos(t *testing.T) {
	levels := inventory.Aggregate([]*entity.Movement{
		mov(1, "P1", "", "L1", 10),
		mov(2, "P1", "L1", "", 10), // queda en 0
		mov(3, "P2", "L1", "", 4),  // queda en -4
		mov(4, "P3", "", "L1", 1),
	})

	rows := inventory.BuildReport(levels, nil, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "P3", rows[0].ProductID)
}

func TestBuildReport_UsaIDSiLaEntidadNoExiste(t *testing.T) {
	levels := inventory.Aggregate([]*entity.Movement{mov(1, "GONE", "", "OLD", 3)})

	rows := inventory.BuildReport(levels, nil, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "GONE", rows[0].Product)
	assert.Equal(t, "OLD", rows[0].Location)
}

func TestBuildReport_ComparacionLexicograficaSimple(t *testing.T) {
	levels := inventory.Aggregate([]*entity.Movement{
		mov(1, "a", "", "L1", 1),
		mov(2, "B", "", "L1", 1),
	})
	products := []*entity.Product{{ProductID: "a", Name: "apple"}, {ProductID: "B", Name: "Banana"}}

	rows := inventory.BuildReport(levels, products, nil)

	// Mayúsculas antes que minúsculas: sin colación por idioma.
	require.Len(t, rows, 2)
	assert.Equal(t, "Banana", rows[0].Product)
	assert.Equal(t, "apple", rows[1].Product)
}

func TestSummarize(t *testing.T) {
	levels := inventory.Aggregate([]*entity.Movement{
		mov(1, "P1", "", "L1", 50),
		mov(2, "P1", "L1", "L2", 10),
	})

	s := inventory.Summarize(levels, 1, 2, 2)

	assert.Equal(t, inventory.Summary{TotalProducts: 1, TotalLocations: 2, TotalMovements: 2, TotalStock: 50}, s)
}
