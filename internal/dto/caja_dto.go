package dto

import "github.com/shopspring/decimal"

type AbrirCajaRequest struct {
	MontoInicial decimal.Decimal `json:"monto_inicial" validate:"min=0"`
}

type CerrarCajaRequest struct {
	MontoContado decimal.Decimal `json:"monto_contado" validate:"min=0"`
}

type FondoCajaResponse struct {
	ID           string           `json:"id"`
	MontoInicial decimal.Decimal  `json:"monto_inicial"`
	Estado       string           `json:"estado"`
	AbiertaEn    string           `json:"abierta_en"`
	CerradaEn    *string          `json:"cerrada_en"`
	MontoContado *decimal.Decimal `json:"monto_contado"`
	CajaTeorica  *decimal.Decimal `json:"caja_teorica"`
	Diferencia   *decimal.Decimal `json:"diferencia"`
}

type CajaListResponse struct {
	Data  []FondoCajaResponse `json:"data"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}
