package dto

import "time"

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	LocationID string `json:"location_id" validate:"required,max=50"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Address    string `json:"address"`
}

// UpdateLocationRequest entrada para actualizar una ubicación (location_id es inmutable).
type UpdateLocationRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	LocationID string    `json:"location_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
