package entity

import "time"

// Product representa un producto del catálogo. ProductID es la clave natural
// (ej. "PROD001") y no cambia después de creado.
type Product struct {
	ProductID   string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
