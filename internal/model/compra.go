package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Compra is an inventory intake from a supplier. Its total is added to the
// supplier's debt in the same transaction that updates stock and costs.
type Compra struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProveedorID uuid.UUID `gorm:"type:uuid;index;not null"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Items       []CompraItem    `gorm:"foreignKey:CompraID"`
	CreatedAt   time.Time       `gorm:"index"`

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

type CompraItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompraID      uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductoID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Nombre        string    `gorm:"not null"`
	Cantidad      decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CostoUnitario decimal.Decimal `gorm:"type:decimal(10,4);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
