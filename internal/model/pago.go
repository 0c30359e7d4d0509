package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PagoProveedor is an abono on a supplier's debt. Cash abonos also subtract
// from the drawer's theoretical cash.
type PagoProveedor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID uuid.UUID `gorm:"type:uuid;index;not null"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Metodo      string          `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"index"`

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

func (PagoProveedor) TableName() string { return "pagos_proveedor" }
