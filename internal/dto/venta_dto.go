package dto

import "github.com/shopspring/decimal"

type VentaItemResponse struct {
	Producto       string          `json:"producto"`
	Unidad         string          `json:"unidad"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID        string              `json:"id"`
	Folio     int                 `json:"folio"`
	Vendedor  string              `json:"vendedor"`
	Metodo    string              `json:"metodo"`
	Total     decimal.Decimal     `json:"total"`
	Recibido  decimal.Decimal     `json:"recibido"`
	Cambio    decimal.Decimal     `json:"cambio"`
	Estado    string              `json:"estado"`
	Items     []VentaItemResponse `json:"items"`
	CreatedAt string              `json:"created_at"`
}

type VentaFilter struct {
	Desde      string `form:"desde"` // YYYY-MM-DD
	Hasta      string `form:"hasta"`
	VendedorID string `form:"vendedor_id"`
	Metodo     string `form:"metodo"`
	Estado     string `form:"estado"` // completada | cancelada | all
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
