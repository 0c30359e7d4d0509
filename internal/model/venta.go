package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en mostrador. Cheque solo aplica a pagos a
// proveedores.
const (
	MetodoEfectivo      = "Efectivo"
	MetodoTarjeta       = "Tarjeta"
	MetodoVales         = "Vales"
	MetodoTransferencia = "Transferencia"
	MetodoCheque        = "Cheque"
)

const (
	EstadoCompletada = "completada"
	EstadoCancelada  = "cancelada"
)

// Venta is a committed sale. Folio is the human-facing consecutive ticket
// number; the unique index is what makes concurrent folio allocation safe.
type Venta struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Folio      int       `gorm:"uniqueIndex;not null"`
	VendedorID uuid.UUID `gorm:"type:uuid;index;not null"`
	Metodo     string    `gorm:"not null"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Recibido   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Cambio     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado     string          `gorm:"index;not null;default:'completada'"`
	Items      []VentaItem     `gorm:"foreignKey:VentaID"`
	CreatedAt  time.Time       `gorm:"index"`

	Vendedor *Usuario `gorm:"foreignKey:VendedorID"`
}

// VentaItem snapshots name, price and cost at sale time so later catalog
// edits don't rewrite history. CostoUnitario feeds COGS in reports.
type VentaItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductoID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Nombre         string    `gorm:"not null"`
	Unidad         string    `gorm:"not null"`
	Cantidad       decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CostoUnitario  decimal.Decimal `gorm:"type:decimal(10,4);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
