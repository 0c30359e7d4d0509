package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistorialPrecio is one applied price change from the batch editor.
type HistorialPrecio struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoID     uuid.UUID `gorm:"type:uuid;index;not null"`
	PrecioAnterior decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioNuevo    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	UsuarioID      *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt      time.Time
}
