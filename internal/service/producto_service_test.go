package service

import (
	"context"
	"testing"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProducto(t *testing.T) (ProductoService, *stubProductoRepo, *stubHistorialRepo) {
	t.Helper()
	repo := newStubProductoRepo()
	historialRepo := &stubHistorialRepo{}
	return NewProductoService(repo, historialRepo, nil), repo, historialRepo
}

func TestCrearProducto(t *testing.T) {
	svc, _, _ := setupProducto(t)

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Codigo: "MAN001", Nombre: "Manzana", Categoria: "Frutas",
		Unidad: model.UnidadKilogramo, Precio: dec("45.00"), Costo: dec("28.00"),
		Stock: dec("10"), StockMinimo: dec("2"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Activo)
	assert.False(t, resp.BajoStock)
}

func TestCrearProductoCodigoDuplicado(t *testing.T) {
	svc, repo, _ := setupProducto(t)
	repo.agregar(model.Producto{Codigo: "MAN001", Nombre: "Manzana", Unidad: model.UnidadKilogramo, Activo: true})

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Codigo: "MAN001", Nombre: "Otra manzana", Categoria: "Frutas",
		Unidad: model.UnidadKilogramo, Precio: dec("45.00"),
	})
	assert.ErrorIs(t, err, apperr.ErrConflicto)
}

func TestActualizarPrecioDejaHistorial(t *testing.T) {
	svc, repo, historialRepo := setupProducto(t)
	p := repo.agregar(model.Producto{
		Codigo: "MAN001", Nombre: "Manzana", Unidad: model.UnidadKilogramo,
		Precio: dec("45.00"), Activo: true,
	})

	nuevo := dec("48.00")
	resp, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{Precio: &nuevo})
	require.NoError(t, err)
	assert.True(t, resp.Precio.Equal(dec("48.00")))

	require.Len(t, historialRepo.entradas, 1)
	assert.True(t, historialRepo.entradas[0].PrecioAnterior.Equal(dec("45.00")))
	assert.True(t, historialRepo.entradas[0].PrecioNuevo.Equal(dec("48.00")))
}

func TestActualizarPreciosBatch(t *testing.T) {
	svc, repo, historialRepo := setupProducto(t)
	manzana := repo.agregar(model.Producto{
		Codigo: "MAN001", Nombre: "Manzana", Unidad: model.UnidadKilogramo,
		Precio: dec("45.00"), Activo: true,
	})
	platano := repo.agregar(model.Producto{
		Codigo: "PLA001", Nombre: "Plátano", Unidad: model.UnidadKilogramo,
		Precio: dec("25.00"), Activo: true,
	})

	usuarioID := uuid.New()
	resp, err := svc.ActualizarPrecios(context.Background(), usuarioID, dto.ActualizarPreciosRequest{
		Cambios: []dto.CambioPrecio{
			{ProductoID: manzana.ID.String(), Precio: dec("48.00")},  // aplica
			{ProductoID: platano.ID.String(), Precio: dec("25.00")},  // sin cambio
			{ProductoID: "no-es-uuid", Precio: dec("10.00")},         // falla
			{ProductoID: uuid.NewString(), Precio: dec("10.00")},     // no existe
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Aplicados)
	assert.Equal(t, 1, resp.SinCambio)
	assert.Len(t, resp.Fallidos, 2)

	// Solo el cambio aplicado deja rastro, con el usuario que lo hizo.
	require.Len(t, historialRepo.entradas, 1)
	require.NotNil(t, historialRepo.entradas[0].UsuarioID)
	assert.Equal(t, usuarioID, *historialRepo.entradas[0].UsuarioID)

	p, err := repo.FindByID(context.Background(), manzana.ID)
	require.NoError(t, err)
	assert.True(t, p.Precio.Equal(dec("48.00")))
}

func TestDesactivarYReactivar(t *testing.T) {
	svc, repo, _ := setupProducto(t)
	p := repo.agregar(model.Producto{Codigo: "X", Nombre: "X", Unidad: model.UnidadPieza, Activo: true})

	require.NoError(t, svc.Desactivar(context.Background(), p.ID))
	assert.False(t, p.Activo)

	require.NoError(t, svc.Reactivar(context.Background(), p.ID))
	assert.True(t, p.Activo)
}

func TestHistorialPrecios(t *testing.T) {
	svc, repo, historialRepo := setupProducto(t)
	p := repo.agregar(model.Producto{Codigo: "X", Nombre: "X", Unidad: model.UnidadPieza, Activo: true})

	require.NoError(t, historialRepo.CreateTx(nil, &model.HistorialPrecio{
		ProductoID: p.ID, PrecioAnterior: dec("10.00"), PrecioNuevo: dec("12.00"),
	}))

	historial, err := svc.HistorialPrecios(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, historial, 1)
	assert.True(t, historial[0].PrecioNuevo.Equal(dec("12.00")))
}
