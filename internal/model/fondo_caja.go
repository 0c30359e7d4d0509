package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CajaAbierta = "abierta"
	CajaCerrada = "cerrada"
)

// FondoCaja is a drawer session: one physical drawer, at most one open fund
// at a time. Closing fills the reconciliation columns and is one-way.
type FondoCaja struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MontoInicial decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado       string          `gorm:"index;not null;default:'abierta'"`
	AbiertaPor   uuid.UUID       `gorm:"type:uuid;not null"`
	AbiertaEn    time.Time       `gorm:"index;not null"`
	CerradaEn    *time.Time
	MontoContado *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CajaTeorica  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Diferencia   *decimal.Decimal `gorm:"type:decimal(12,2)"`
}

func (FondoCaja) TableName() string { return "fondos_caja" }
