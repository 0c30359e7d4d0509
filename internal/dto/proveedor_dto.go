package dto

import "github.com/shopspring/decimal"

type CrearProveedorRequest struct {
	Nombre    string  `json:"nombre" validate:"required"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
	DiaVisita *string `json:"dia_visita"`
}

type ActualizarProveedorRequest struct {
	Nombre    string  `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
	DiaVisita *string `json:"dia_visita"`
}

type ProveedorResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Telefono  *string         `json:"telefono"`
	Email     *string         `json:"email"`
	Direccion *string         `json:"direccion"`
	DiaVisita *string         `json:"dia_visita"`
	Deuda     decimal.Decimal `json:"deuda"`
	Activo    bool            `json:"activo"`
}

type AbonoRequest struct {
	Monto  decimal.Decimal `json:"monto" validate:"required"`
	Metodo string          `json:"metodo" validate:"required,oneof=Efectivo Transferencia Cheque"`
}

type AbonoResponse struct {
	ID        string          `json:"id"`
	Monto     decimal.Decimal `json:"monto"`
	Metodo    string          `json:"metodo"`
	CreatedAt string          `json:"created_at"`
}

// EstadoCuentaResponse is the per-supplier statement: purchases and abonos
// within the requested period plus the running totals.
type EstadoCuentaResponse struct {
	Proveedor     ProveedorResponse `json:"proveedor"`
	Compras       []CompraResponse  `json:"compras"`
	Abonos        []AbonoResponse   `json:"abonos"`
	TotalComprado decimal.Decimal   `json:"total_comprado"`
	TotalAbonado  decimal.Decimal   `json:"total_abonado"`
}
