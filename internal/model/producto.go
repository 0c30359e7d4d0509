package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Unidades de venta. Los productos en kg se venden por peso capturado en la
// báscula; el resto se vende por piezas discretas.
const (
	UnidadKilogramo = "kg"
	UnidadPieza     = "pza"
	UnidadCaja      = "caja"
	UnidadLitro     = "lt"
)

// Producto is a catalog entry. Costo is the weighted-average purchase cost,
// recalculated on every intake. Stock is decimal because weight units sell
// fractional quantities.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo      string    `gorm:"uniqueIndex;not null"`
	Nombre      string    `gorm:"index;not null"`
	Categoria   string    `gorm:"not null"`
	Unidad      string    `gorm:"not null;default:'kg'"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Costo       decimal.Decimal `gorm:"type:decimal(10,4);not null;default:0"`
	Stock       decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	StockMinimo decimal.Decimal `gorm:"type:decimal(12,3);not null;default:5"`
	Imagen      *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EsPesable reports whether sale quantities for this product come from the scale.
func (p *Producto) EsPesable() bool { return p.Unidad == UnidadKilogramo }

// BajoStock reports whether the product is at or below its minimum.
func (p *Producto) BajoStock() bool { return p.Stock.LessThanOrEqual(p.StockMinimo) }
