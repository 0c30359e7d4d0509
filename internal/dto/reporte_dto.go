package dto

import "github.com/shopspring/decimal"

type TopItem struct {
	Nombre string          `json:"nombre"`
	Valor  decimal.Decimal `json:"valor"`
}

type ResumenResponse struct {
	TotalVentas     decimal.Decimal `json:"total_ventas"`
	NumVentas       int             `json:"num_ventas"`
	VentasEfectivo  decimal.Decimal `json:"ventas_efectivo"`
	VentasDigitales decimal.Decimal `json:"ventas_digitales"`
	CostoVendido    decimal.Decimal `json:"costo_vendido"`
	CostoMermas     decimal.Decimal `json:"costo_mermas"`
	GananciaBruta   decimal.Decimal `json:"ganancia_bruta"`
	TotalFondos     decimal.Decimal `json:"total_fondos"`
	TotalAbonos     decimal.Decimal `json:"total_abonos"`
	CajaTeorica     decimal.Decimal `json:"caja_teorica"`
	TopProductos    []TopItem       `json:"top_productos"`
	TopMermas       []TopItem       `json:"top_mermas"`
}

// MovimientoResponse is one ledger row: sales and fund openings are inflows,
// supplier abonos are outflows.
type MovimientoResponse struct {
	Fecha       string          `json:"fecha"`
	Hora        string          `json:"hora"`
	Tipo        string          `json:"tipo"`
	Descripcion string          `json:"descripcion"`
	Metodo      string          `json:"metodo"`
	Monto       decimal.Decimal `json:"monto"`
	Egreso      bool            `json:"egreso"`
}

type SeriePunto struct {
	Etiqueta string          `json:"etiqueta"`
	Monto    decimal.Decimal `json:"monto"`
}
