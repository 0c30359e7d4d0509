package service

import (
	"context"
	"testing"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProveedor(t *testing.T) (ProveedorService, *stubProveedorRepo, *stubCompraRepo, *stubPagoRepo) {
	t.Helper()
	repo := newStubProveedorRepo()
	compraRepo := &stubCompraRepo{}
	pagoRepo := &stubPagoRepo{}
	return NewProveedorService(repo, compraRepo, pagoRepo), repo, compraRepo, pagoRepo
}

func TestCrearProveedorIniciaSinDeuda(t *testing.T) {
	svc, _, _, _ := setupProveedor(t)

	resp, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{Nombre: "Frutas del Valle"})
	require.NoError(t, err)
	assert.True(t, resp.Deuda.IsZero())
	assert.True(t, resp.Activo)
}

func TestRegistrarAbono(t *testing.T) {
	svc, repo, _, pagoRepo := setupProveedor(t)
	proveedor := repo.agregar(model.Proveedor{Nombre: "Frutas del Valle", Deuda: dec("300.00"), Activo: true})

	resp, err := svc.RegistrarAbono(context.Background(), proveedor.ID, dto.AbonoRequest{
		Monto: dec("120.00"), Metodo: model.MetodoEfectivo,
	})
	require.NoError(t, err)
	assert.True(t, resp.Monto.Equal(dec("120.00")))

	assert.True(t, proveedor.Deuda.Equal(dec("180.00")), "deuda = %s", proveedor.Deuda)
	require.Len(t, pagoRepo.pagos, 1)
}

func TestRegistrarAbonoMayorQueDeuda(t *testing.T) {
	svc, repo, _, _ := setupProveedor(t)
	proveedor := repo.agregar(model.Proveedor{Nombre: "Frutas del Valle", Deuda: dec("50.00"), Activo: true})

	// Pagar de más liquida la cuenta: la deuda nunca queda negativa.
	_, err := svc.RegistrarAbono(context.Background(), proveedor.ID, dto.AbonoRequest{
		Monto: dec("80.00"), Metodo: model.MetodoEfectivo,
	})
	require.NoError(t, err)
	assert.True(t, proveedor.Deuda.IsZero(), "deuda = %s", proveedor.Deuda)
}

func TestRegistrarAbonoMontoInvalido(t *testing.T) {
	svc, repo, _, _ := setupProveedor(t)
	proveedor := repo.agregar(model.Proveedor{Nombre: "Prov", Activo: true})

	_, err := svc.RegistrarAbono(context.Background(), proveedor.ID, dto.AbonoRequest{
		Monto: dec("0"), Metodo: model.MetodoEfectivo,
	})
	assert.ErrorIs(t, err, apperr.ErrValidacion)
}

func TestRegistrarAbonoProveedorInexistente(t *testing.T) {
	svc, _, _, _ := setupProveedor(t)

	_, err := svc.RegistrarAbono(context.Background(), uuid.New(), dto.AbonoRequest{
		Monto: dec("10.00"), Metodo: model.MetodoEfectivo,
	})
	assert.ErrorIs(t, err, apperr.ErrNoEncontrado)
}

func TestEstadoCuenta(t *testing.T) {
	svc, repo, compraRepo, pagoRepo := setupProveedor(t)
	proveedor := repo.agregar(model.Proveedor{Nombre: "Frutas del Valle", Deuda: dec("150.00"), Activo: true})

	require.NoError(t, compraRepo.CreateTx(nil, &model.Compra{
		ProveedorID: proveedor.ID, Total: dec("250.00"),
	}))
	require.NoError(t, pagoRepo.CreateTx(nil, &model.PagoProveedor{
		ProveedorID: proveedor.ID, Monto: dec("100.00"), Metodo: model.MetodoTransferencia,
	}))

	ahora := time.Now()
	resp, err := svc.EstadoCuenta(context.Background(), proveedor.ID, ahora.Add(-24*time.Hour), ahora.Add(time.Hour))
	require.NoError(t, err)

	assert.True(t, resp.TotalComprado.Equal(dec("250.00")))
	assert.True(t, resp.TotalAbonado.Equal(dec("100.00")))
	assert.True(t, resp.Proveedor.Deuda.Equal(dec("150.00")))
	assert.Len(t, resp.Compras, 1)
	assert.Len(t, resp.Abonos, 1)
}

func TestListarExcluyeInactivos(t *testing.T) {
	svc, repo, _, _ := setupProveedor(t)
	repo.agregar(model.Proveedor{Nombre: "Activo", Activo: true})
	repo.agregar(model.Proveedor{Nombre: "Inactivo", Activo: false})

	lista, err := svc.Listar(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Activo", lista[0].Nombre)

	lista, err = svc.Listar(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, lista, 2)
}
