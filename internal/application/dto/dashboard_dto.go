package dto

// InventoryReportRowDTO una fila de GET /api/reports/inventory.
type InventoryReportRowDTO struct {
	Product    string `json:"product"`
	ProductID  string `json:"product_id"`
	Location   string `json:"location"`
	LocationID string `json:"location_id"`
	Quantity   int64  `json:"quantity"`
}

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TotalProducts  int   `json:"total_products"`
	TotalLocations int   `json:"total_locations"`
	TotalMovements int   `json:"total_movements"`
	TotalStock     int64 `json:"total_stock"` // suma de cantidades positivas
}
