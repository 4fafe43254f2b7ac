package dto

import "time"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	ProductID   string `json:"product_id" validate:"required,max=50"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateProductRequest entrada para actualizar un producto. product_id no se puede cambiar;
// los campos ausentes conservan su valor.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID   string    `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
