package entity

import "time"

// Tipos de movimiento derivados de los extremos presentes.
const (
	MovementTypeIN       = "IN"       // solo destino: entrada
	MovementTypeOUT      = "OUT"      // solo origen: salida
	MovementTypeTRANSFER = "TRANSFER" // origen y destino: traslado
)

// Movement es una fila inmutable del ledger. FromLocation y ToLocation vacíos
// significan "sin extremo"; al menos uno de los dos está presente.
type Movement struct {
	MovementID   int64
	Timestamp    time.Time // UTC
	ProductID    string
	FromLocation string
	ToLocation   string
	Qty          int64
}

// Type devuelve IN, OUT o TRANSFER según los extremos del movimiento.
func (m Movement) Type() string {
	switch {
	case m.FromLocation != "" && m.ToLocation != "":
		return MovementTypeTRANSFER
	case m.FromLocation != "":
		return MovementTypeOUT
	default:
		return MovementTypeIN
	}
}

// References indica si el movimiento apunta a la ubicación dada (como origen o destino).
func (m Movement) References(locationID string) bool {
	return locationID != "" && (m.FromLocation == locationID || m.ToLocation == locationID)
}
