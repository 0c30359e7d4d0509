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

func setupCaja(t *testing.T) (CajaService, *stubCajaRepo, *stubVentaRepo, *stubPagoRepo) {
	t.Helper()
	cajaRepo := &stubCajaRepo{}
	ventaRepo := newStubVentaRepo()
	pagoRepo := &stubPagoRepo{}
	return NewCajaService(cajaRepo, ventaRepo, pagoRepo), cajaRepo, ventaRepo, pagoRepo
}

func TestAbrirCaja(t *testing.T) {
	svc, _, _, _ := setupCaja(t)

	resp, err := svc.Abrir(context.Background(), uuid.New(), dto.AbrirCajaRequest{MontoInicial: dec("500.00")})
	require.NoError(t, err)
	assert.Equal(t, model.CajaAbierta, resp.Estado)
	assert.True(t, resp.MontoInicial.Equal(dec("500.00")))
}

func TestAbrirCajaConOtraAbierta(t *testing.T) {
	svc, _, _, _ := setupCaja(t)

	_, err := svc.Abrir(context.Background(), uuid.New(), dto.AbrirCajaRequest{MontoInicial: dec("500.00")})
	require.NoError(t, err)
	_, err = svc.Abrir(context.Background(), uuid.New(), dto.AbrirCajaRequest{MontoInicial: dec("200.00")})
	assert.ErrorIs(t, err, apperr.ErrCajaAbierta)
}

func TestAbrirCajaMontoNegativo(t *testing.T) {
	svc, _, _, _ := setupCaja(t)

	_, err := svc.Abrir(context.Background(), uuid.New(), dto.AbrirCajaRequest{MontoInicial: dec("-1")})
	assert.ErrorIs(t, err, apperr.ErrValidacion)
}

func TestCerrarSinCajaAbierta(t *testing.T) {
	svc, _, _, _ := setupCaja(t)

	_, err := svc.Cerrar(context.Background(), dto.CerrarCajaRequest{MontoContado: dec("100.00")})
	assert.ErrorIs(t, err, apperr.ErrCajaCerrada)
}

// Arqueo completo: fondo 500 + ventas en efectivo 150 − abono en efectivo 50
// deja 600 teóricos. Las ventas con tarjeta no tocan el cajón.
func TestCerrarCajaCuadrada(t *testing.T) {
	svc, _, ventaRepo, pagoRepo := setupCaja(t)

	_, err := svc.Abrir(context.Background(), uuid.New(), dto.AbrirCajaRequest{MontoInicial: dec("500.00")})
	require.NoError(t, err)

	require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
		Folio: 1, VendedorID: uuid.New(), Metodo: model.MetodoEfectivo,
		Total: dec("150.00"), Estado: model.EstadoCompletada, CreatedAt: time.Now(),
	}))
	require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
		Folio: 2, VendedorID: uuid.New(), Metodo: model.MetodoTarjeta,
		Total: dec("300.00"), Estado: model.EstadoCompletada, CreatedAt: time.Now(),
	}))
	require.NoError(t, pagoRepo.CreateTx(nil, &model.PagoProveedor{
		ProveedorID: uuid.New(), Monto: dec("50.00"), Metodo: model.MetodoEfectivo,
	}))

	resp, err := svc.Cerrar(context.Background(), dto.CerrarCajaRequest{MontoContado: dec("600.00")})
	require.NoError(t, err)

	assert.Equal(t, model.CajaCerrada, resp.Estado)
	require.NotNil(t, resp.CajaTeorica)
	assert.True(t, resp.CajaTeorica.Equal(dec("600.00")), "teorica = %s", resp.CajaTeorica)
	require.NotNil(t, resp.Diferencia)
	assert.True(t, resp.Diferencia.IsZero(), "diferencia = %s", resp.Diferencia)
	assert.NotNil(t, resp.CerradaEn)
}

func TestCerrarCajaConFaltante(t *testing.T) {
	svc, _, ventaRepo, _ := setupCaja(t)

	_, err := svc.Abrir(context.Background(), uuid.New(), dto.AbrirCajaRequest{MontoInicial: dec("500.00")})
	require.NoError(t, err)

	require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
		Folio: 1, VendedorID: uuid.New(), Metodo: model.MetodoEfectivo,
		Total: dec("100.00"), Estado: model.EstadoCompletada, CreatedAt: time.Now(),
	}))

	resp, err := svc.Cerrar(context.Background(), dto.CerrarCajaRequest{MontoContado: dec("580.00")})
	require.NoError(t, err)
	require.NotNil(t, resp.Diferencia)
	assert.True(t, resp.Diferencia.Equal(dec("-20.00")), "diferencia = %s", resp.Diferencia)
}

func TestActivaSinCaja(t *testing.T) {
	svc, _, _, _ := setupCaja(t)

	_, err := svc.Activa(context.Background())
	assert.ErrorIs(t, err, apperr.ErrNoEncontrado)
}

func TestCajaTeoricaIgnoraVentasCanceladas(t *testing.T) {
	svc, _, ventaRepo, _ := setupCaja(t)

	require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
		Folio: 1, VendedorID: uuid.New(), Metodo: model.MetodoEfectivo,
		Total: dec("100.00"), Estado: model.EstadoCancelada, CreatedAt: time.Now(),
	}))

	teorica, err := svc.CajaTeorica(context.Background(), time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, teorica.IsZero(), "teorica = %s", teorica)
}
