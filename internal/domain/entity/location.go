package entity

import "time"

// Location representa una bodega, tienda o cualquier lugar donde se guarda stock.
// LocationID es la clave natural y no cambia después de creada.
type Location struct {
	LocationID string
	Name       string
	Address    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
