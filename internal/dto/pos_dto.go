package dto

import "github.com/shopspring/decimal"

// AgregarLineaRequest adds a product to a cart. Peso is required (and must be
// positive) for weight-unit products; ignored for discrete units.
type AgregarLineaRequest struct {
	ProductoID string           `json:"producto_id" validate:"required,uuid"`
	Peso       *decimal.Decimal `json:"peso"`
}

type AjustarLineaRequest struct {
	Delta int `json:"delta" validate:"required,oneof=-1 1"`
}

type LineaCarritoResponse struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	Unidad         string          `json:"unidad"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type CarritoResponse struct {
	ID     string                 `json:"id"`
	Lineas []LineaCarritoResponse `json:"lineas"`
	Total  decimal.Decimal        `json:"total"`
}

type VentaEnEsperaResponse struct {
	ID        string          `json:"id"`
	Articulos int             `json:"articulos"`
	Total     decimal.Decimal `json:"total"`
	CreadaEn  string          `json:"creada_en"`
}

type CobrarRequest struct {
	Metodo   string          `json:"metodo" validate:"required,oneof=Efectivo Tarjeta Vales Transferencia"`
	Recibido decimal.Decimal `json:"recibido" validate:"min=0"`
}

type PesoResponse struct {
	Peso decimal.Decimal `json:"peso"`
}

type FolioResponse struct {
	Folio int `json:"folio"`
}
