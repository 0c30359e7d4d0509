package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RolVendedor = "vendedor"
	RolAdmin    = "admin"
	RolDueno    = "dueño"
)

// Usuario logs in either with a 4-digit PIN (fast drawer access) or with
// nombre + password. Both credentials are stored as bcrypt hashes; a user may
// have one or both.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"uniqueIndex;not null"`
	Email        *string
	Telefono     *string
	Rol          string `gorm:"not null;default:'vendedor'"`
	PINHash      string `gorm:"column:pin_hash"`
	PasswordHash string
	Activo       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
