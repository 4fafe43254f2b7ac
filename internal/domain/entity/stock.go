package entity

// Stock es la cantidad derivada de un producto en una ubicación.
// No se persiste: se obtiene plegando el ledger de movimientos.
type Stock struct {
	ProductID  string
	LocationID string
	Quantity   int64
}
