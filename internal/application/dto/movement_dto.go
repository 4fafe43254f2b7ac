package dto

import "time"

// CreateMovementRequest body para POST /api/movements.
// from_location y to_location son opcionales (null o "" = sin extremo), pero al menos uno es obligatorio.
type CreateMovementRequest struct {
	ProductID    string  `json:"product_id"`
	FromLocation *string `json:"from_location,omitempty"`
	ToLocation   *string `json:"to_location,omitempty"`
	Qty          int64   `json:"qty"`
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	MovementID   int64     `json:"movement_id"`
	Timestamp    time.Time `json:"timestamp"`
	ProductID    string    `json:"product_id"`
	FromLocation *string   `json:"from_location"`
	ToLocation   *string   `json:"to_location"`
	Qty          int64     `json:"qty"`
	Type         string    `json:"type"` // IN | OUT | TRANSFER
}
