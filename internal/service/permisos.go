package service

import "github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"

// Accion is a gated capability. Routes declare the action they need instead
// of hardcoding role lists, so the role→capability table lives in one place.
type Accion string

const (
	AccionVender               Accion = "vender"
	AccionCancelarVenta        Accion = "cancelar_venta"
	AccionGestionarProductos   Accion = "gestionar_productos"
	AccionEditarPrecios        Accion = "editar_precios"
	AccionRegistrarCompras     Accion = "registrar_compras"
	AccionRegistrarMermas      Accion = "registrar_mermas"
	AccionGestionarProveedores Accion = "gestionar_proveedores"
	AccionOperarCaja           Accion = "operar_caja"
	AccionVerReportes          Accion = "ver_reportes"
	AccionGestionarUsuarios    Accion = "gestionar_usuarios"
	AccionRespaldos            Accion = "respaldos"
)

var permisosPorRol = map[string]map[Accion]bool{
	model.RolVendedor: {
		AccionVender:          true,
		AccionOperarCaja:      true,
		AccionRegistrarMermas: true,
	},
	model.RolAdmin: {
		AccionVender:               true,
		AccionCancelarVenta:        true,
		AccionGestionarProductos:   true,
		AccionEditarPrecios:        true,
		AccionRegistrarCompras:     true,
		AccionRegistrarMermas:      true,
		AccionGestionarProveedores: true,
		AccionOperarCaja:           true,
		AccionVerReportes:          true,
		AccionGestionarUsuarios:    true,
	},
	model.RolDueno: {
		AccionVender:               true,
		AccionCancelarVenta:        true,
		AccionGestionarProductos:   true,
		AccionEditarPrecios:        true,
		AccionRegistrarCompras:     true,
		AccionRegistrarMermas:      true,
		AccionGestionarProveedores: true,
		AccionOperarCaja:           true,
		AccionVerReportes:          true,
		AccionGestionarUsuarios:    true,
		AccionRespaldos:            true,
	},
}

// CanPerform reports whether the role is allowed to execute the action.
// Unknown roles have no permissions.
func CanPerform(rol string, accion Accion) bool {
	return permisosPorRol[rol][accion]
}

// Permite adapts CanPerform into the role predicate the permission middleware
// expects.
func Permite(accion Accion) func(rol string) bool {
	return func(rol string) bool { return CanPerform(rol, accion) }
}
