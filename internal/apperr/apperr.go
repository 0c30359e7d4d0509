// Package apperr defines the domain error taxonomy. Services return these
// sentinels (or errors wrapping them) and handlers map them to HTTP status
// codes without inspecting error strings.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidacion covers malformed or out-of-range input rejected before
	// touching the store.
	ErrValidacion = errors.New("datos inválidos")

	// ErrSinPesoCapturado is returned when a weight-unit product is added to a
	// cart without a captured scale reading.
	ErrSinPesoCapturado = errors.New("producto pesable sin peso capturado")

	// ErrStockInsuficiente is returned when an operation would drive stock
	// below zero.
	ErrStockInsuficiente = errors.New("stock insuficiente")

	// ErrConflicto signals a unique-key collision (folio, código de producto).
	ErrConflicto = errors.New("conflicto de clave única")

	ErrNoEncontrado = errors.New("registro no encontrado")

	ErrCajaAbierta  = errors.New("ya existe una caja abierta")
	ErrCajaCerrada  = errors.New("no hay caja abierta")
	ErrVentaCancelada = errors.New("la venta ya está cancelada")

	// ErrAlmacen tags unexpected storage-layer failures.
	ErrAlmacen = errors.New("error de almacenamiento")
)

// Validacion builds a descriptive validation error that still matches
// errors.Is(err, ErrValidacion).
func Validacion(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidacion}, args...)...)
}

type almacenError struct {
	op  string
	err error
}

func (e *almacenError) Error() string        { return e.op + ": " + e.err.Error() }
func (e *almacenError) Unwrap() error        { return e.err }
func (e *almacenError) Is(target error) bool { return target == ErrAlmacen }

// Almacen wraps a storage failure with the operation that produced it.
// Returns nil when err is nil so call sites can wrap unconditionally.
func Almacen(op string, err error) error {
	if err == nil {
		return nil
	}
	return &almacenError{op: op, err: err}
}
