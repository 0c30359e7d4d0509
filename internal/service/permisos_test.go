package service

import (
	"testing"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCanPerform(t *testing.T) {
	// Vendedor: opera la caja pero no toca catálogo ni reportes.
	assert.True(t, CanPerform(model.RolVendedor, AccionVender))
	assert.True(t, CanPerform(model.RolVendedor, AccionOperarCaja))
	assert.True(t, CanPerform(model.RolVendedor, AccionRegistrarMermas))
	assert.False(t, CanPerform(model.RolVendedor, AccionCancelarVenta))
	assert.False(t, CanPerform(model.RolVendedor, AccionGestionarProductos))
	assert.False(t, CanPerform(model.RolVendedor, AccionVerReportes))
	assert.False(t, CanPerform(model.RolVendedor, AccionRespaldos))

	// Admin: todo menos respaldos.
	assert.True(t, CanPerform(model.RolAdmin, AccionCancelarVenta))
	assert.True(t, CanPerform(model.RolAdmin, AccionGestionarUsuarios))
	assert.False(t, CanPerform(model.RolAdmin, AccionRespaldos))

	// Dueño: sin restricciones.
	assert.True(t, CanPerform(model.RolDueno, AccionRespaldos))
	assert.True(t, CanPerform(model.RolDueno, AccionEditarPrecios))
}

func TestCanPerformRolDesconocido(t *testing.T) {
	assert.False(t, CanPerform("gerente", AccionVender))
	assert.False(t, CanPerform("", AccionVender))
}

func TestPermite(t *testing.T) {
	permitido := Permite(AccionCancelarVenta)
	assert.False(t, permitido(model.RolVendedor))
	assert.True(t, permitido(model.RolAdmin))
}
