package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Proveedor carries its running debt balance: purchases increase it, abonos
// decrease it (never below zero).
type Proveedor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"index;not null"`
	Telefono  *string
	Email     *string
	Direccion *string
	// DiaVisita is the weekday the supplier usually delivers ("Lunes", …).
	DiaVisita *string
	Deuda     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Activo    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Proveedor) TableName() string { return "proveedores" }
