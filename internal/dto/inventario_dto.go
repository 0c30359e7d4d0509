package dto

import "github.com/shopspring/decimal"

type CompraItemRequest struct {
	ProductoID    string          `json:"producto_id" validate:"required,uuid"`
	Cantidad      decimal.Decimal `json:"cantidad" validate:"required"`
	CostoUnitario decimal.Decimal `json:"costo_unitario" validate:"min=0"`
}

type RegistrarCompraRequest struct {
	ProveedorID string              `json:"proveedor_id" validate:"required,uuid"`
	Items       []CompraItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CompraItemResponse struct {
	Producto      string          `json:"producto"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type CompraResponse struct {
	ID        string               `json:"id"`
	Proveedor string               `json:"proveedor"`
	Total     decimal.Decimal      `json:"total"`
	Items     []CompraItemResponse `json:"items"`
	CreatedAt string               `json:"created_at"`
}

type RegistrarMermaRequest struct {
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	Cantidad   decimal.Decimal `json:"cantidad" validate:"required"`
	Motivo     string          `json:"motivo" validate:"required,oneof='Maduración Excesiva' 'Daño por Cliente' 'Plaga / Robo'"`
}

type MermaResponse struct {
	ID           string          `json:"id"`
	Producto     string          `json:"producto"`
	Unidad       string          `json:"unidad"`
	Cantidad     decimal.Decimal `json:"cantidad"`
	Motivo       string          `json:"motivo"`
	CostoPerdido decimal.Decimal `json:"costo_perdido"`
	CreatedAt    string          `json:"created_at"`
}
