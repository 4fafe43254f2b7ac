package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicateKey    = errors.New("el identificador ya existe")
	ErrHasDependents   = errors.New("el recurso tiene movimientos asociados")
	ErrUnknownProduct  = errors.New("producto no encontrado")
	ErrUnknownLocation = errors.New("ubicación no encontrada")
	ErrMissingEndpoint = errors.New("se requiere al menos una ubicación (origen o destino)")
	ErrSameEndpoint    = errors.New("origen y destino no pueden ser la misma ubicación")
	ErrStoreFailure    = errors.New("fallo del almacenamiento")
)

// StoreError envuelve un error de persistencia. errors.Is(err, ErrStoreFailure) es true
// y Error() conserva el mensaje original para la respuesta 500.
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError construye el error; devuelve nil si err es nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrStoreFailure).
func (e *StoreError) Is(target error) bool { return target == ErrStoreFailure }

// IsValidation indica si err es un error de validación recuperable (400/404),
// es decir, cualquier error de dominio distinto de ErrStoreFailure.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrStoreFailure):
		return false
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrDuplicateKey),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrHasDependents),
		errors.Is(err, ErrUnknownProduct),
		errors.Is(err, ErrUnknownLocation),
		errors.Is(err, ErrMissingEndpoint),
		errors.Is(err, ErrSameEndpoint):
		return true
	}
	return false
}
