package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Codigo      string          `json:"codigo" validate:"required"`
	Nombre      string          `json:"nombre" validate:"required"`
	Categoria   string          `json:"categoria" validate:"required"`
	Unidad      string          `json:"unidad" validate:"required,oneof=kg pza caja lt"`
	Precio      decimal.Decimal `json:"precio" validate:"required,gt=0"`
	Costo       decimal.Decimal `json:"costo" validate:"min=0"`
	Stock       decimal.Decimal `json:"stock" validate:"min=0"`
	StockMinimo decimal.Decimal `json:"stock_minimo" validate:"min=0"`
	Imagen      *string         `json:"imagen"`
}

type ActualizarProductoRequest struct {
	Nombre      string           `json:"nombre"`
	Categoria   string           `json:"categoria"`
	Unidad      string           `json:"unidad" validate:"omitempty,oneof=kg pza caja lt"`
	Precio      *decimal.Decimal `json:"precio" validate:"omitempty,gt=0"`
	StockMinimo *decimal.Decimal `json:"stock_minimo" validate:"omitempty,min=0"`
	Imagen      *string          `json:"imagen"`
}

type ProductoFilter struct {
	Nombre    string `form:"nombre"`
	Categoria string `form:"categoria"`
	// Activo: "false" = inactivos, "all" = todos, default = activos
	Activo    string `form:"activo"`
	BajoStock bool   `form:"bajo_stock"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

type ProductoResponse struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria"`
	Unidad      string          `json:"unidad"`
	Precio      decimal.Decimal `json:"precio"`
	Costo       decimal.Decimal `json:"costo"`
	Stock       decimal.Decimal `json:"stock"`
	StockMinimo decimal.Decimal `json:"stock_minimo"`
	Imagen      *string         `json:"imagen"`
	Activo      bool            `json:"activo"`
	BajoStock   bool            `json:"bajo_stock"`
	CreatedAt   string          `json:"created_at"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// CambioPrecio is one entry of the batch price editor.
type CambioPrecio struct {
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	Precio     decimal.Decimal `json:"precio" validate:"required,gt=0"`
}

type ActualizarPreciosRequest struct {
	Cambios []CambioPrecio `json:"cambios" validate:"required,min=1,dive"`
}

// ActualizarPreciosResponse reports the batch outcome: the batch is
// best-effort, so successes stand even when some entries fail.
type ActualizarPreciosResponse struct {
	Aplicados int               `json:"aplicados"`
	SinCambio int               `json:"sin_cambio"`
	Fallidos  map[string]string `json:"fallidos"`
}

type ConsultaPrecioResponse struct {
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Unidad    string          `json:"unidad"`
	Stock     decimal.Decimal `json:"stock"`
	Categoria string          `json:"categoria"`
}

type HistorialPrecioResponse struct {
	PrecioAnterior decimal.Decimal `json:"precio_anterior"`
	PrecioNuevo    decimal.Decimal `json:"precio_nuevo"`
	Fecha          string          `json:"fecha"`
}
