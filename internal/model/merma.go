package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Motivos de merma aceptados. Producto perecedero: la mayoría cae en
// maduración excesiva.
const (
	MotivoMaduracion  = "Maduración Excesiva"
	MotivoDanoCliente = "Daño por Cliente"
	MotivoPlagaRobo   = "Plaga / Robo"
)

// Merma records discarded stock. CostoPerdido is cantidad × average cost at
// logging time, frozen so later cost changes don't rewrite the loss.
type Merma struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Nombre       string    `gorm:"not null"`
	Unidad       string    `gorm:"not null"`
	Cantidad     decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Motivo       string          `gorm:"not null"`
	CostoPerdido decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time       `gorm:"index"`
}
