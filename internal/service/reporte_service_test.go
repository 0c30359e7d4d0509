package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodoHoy(t *testing.T) {
	ahora := time.Date(2026, 8, 14, 13, 45, 0, 0, time.Local)
	p := PeriodoHoy(ahora)

	assert.Equal(t, time.Date(2026, 8, 14, 0, 0, 0, 0, time.Local), p.Desde)
	assert.Equal(t, time.Date(2026, 8, 14, 23, 59, 59, 999_000_000, time.Local), p.Hasta)
}

func TestPeriodoSemanaIniciaEnLunes(t *testing.T) {
	// Viernes 14/08/2026: la semana arrancó el lunes 10.
	viernes := time.Date(2026, 8, 14, 13, 0, 0, 0, time.Local)
	p := PeriodoSemana(viernes)
	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local), p.Desde)

	// El domingo pertenece a la semana del lunes anterior, no a la siguiente.
	domingo := time.Date(2026, 8, 16, 9, 0, 0, 0, time.Local)
	p = PeriodoSemana(domingo)
	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local), p.Desde)

	lunes := time.Date(2026, 8, 10, 0, 30, 0, 0, time.Local)
	p = PeriodoSemana(lunes)
	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local), p.Desde)
}

func TestPeriodoMes(t *testing.T) {
	ahora := time.Date(2026, 8, 14, 13, 0, 0, 0, time.Local)
	p := PeriodoMes(ahora)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), p.Desde)
}

func TestTopN(t *testing.T) {
	items := []dto.TopItem{
		{Nombre: "Manzana", Valor: dec("3")},
		{Nombre: "Plátano", Valor: dec("10")},
		{Nombre: "Manzana", Valor: dec("9")},
		{Nombre: "Mango", Valor: dec("1")},
	}

	top := TopN(items, 2)
	require.Len(t, top, 2)
	// Manzana agrega 3+9=12 y queda arriba de Plátano.
	assert.Equal(t, "Manzana", top[0].Nombre)
	assert.True(t, top[0].Valor.Equal(dec("12")))
	assert.Equal(t, "Plátano", top[1].Nombre)
}

func TestTopNEmpatesConservanOrden(t *testing.T) {
	items := []dto.TopItem{
		{Nombre: "A", Valor: dec("5")},
		{Nombre: "B", Valor: dec("5")},
	}
	top := TopN(items, 5)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Nombre)
	assert.Equal(t, "B", top[1].Nombre)
}

func setupReporte(t *testing.T) (ReporteService, *stubVentaRepo, *stubMermaRepo, *stubPagoRepo, *stubCajaRepo) {
	t.Helper()
	ventaRepo := newStubVentaRepo()
	mermaRepo := &stubMermaRepo{}
	pagoRepo := &stubPagoRepo{}
	cajaRepo := &stubCajaRepo{}
	cajas := NewCajaService(cajaRepo, ventaRepo, pagoRepo)
	svc := NewReporteService(ventaRepo, mermaRepo, pagoRepo, cajaRepo, cajas)
	return svc, ventaRepo, mermaRepo, pagoRepo, cajaRepo
}

func TestResumen(t *testing.T) {
	svc, ventaRepo, mermaRepo, pagoRepo, cajaRepo := setupReporte(t)
	ahora := time.Now()

	require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
		Folio: 1, VendedorID: uuid.New(), Metodo: model.MetodoEfectivo,
		Total: dec("100.00"), Estado: model.EstadoCompletada, CreatedAt: ahora,
		Items: []model.VentaItem{
			{Nombre: "Manzana", Cantidad: dec("2"), PrecioUnitario: dec("50.00"), CostoUnitario: dec("30.00"), Subtotal: dec("100.00")},
		},
	}))
	require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
		Folio: 2, VendedorID: uuid.New(), Metodo: model.MetodoTarjeta,
		Total: dec("40.00"), Estado: model.EstadoCompletada, CreatedAt: ahora,
		Items: []model.VentaItem{
			{Nombre: "Refresco", Cantidad: dec("2"), PrecioUnitario: dec("20.00"), CostoUnitario: dec("12.00"), Subtotal: dec("40.00")},
		},
	}))
	require.NoError(t, mermaRepo.CreateTx(nil, &model.Merma{
		ProductoID: uuid.New(), Nombre: "Mango", Unidad: model.UnidadKilogramo,
		Cantidad: dec("1"), Motivo: model.MotivoMaduracion, CostoPerdido: dec("25.00"),
	}))
	require.NoError(t, pagoRepo.CreateTx(nil, &model.PagoProveedor{
		ProveedorID: uuid.New(), Monto: dec("30.00"), Metodo: model.MetodoEfectivo,
	}))
	require.NoError(t, cajaRepo.Create(context.Background(), &model.FondoCaja{
		MontoInicial: dec("500.00"), Estado: model.CajaAbierta,
		AbiertaPor: uuid.New(), AbiertaEn: ahora,
	}))

	resumen, err := svc.Resumen(context.Background(), PeriodoHoy(ahora))
	require.NoError(t, err)

	assert.Equal(t, 2, resumen.NumVentas)
	assert.True(t, resumen.TotalVentas.Equal(dec("140.00")), "ventas = %s", resumen.TotalVentas)
	assert.True(t, resumen.VentasEfectivo.Equal(dec("100.00")))
	assert.True(t, resumen.VentasDigitales.Equal(dec("40.00")))
	// COGS con costo congelado por venta: 2×30 + 2×12 = 84.
	assert.True(t, resumen.CostoVendido.Equal(dec("84.00")), "costo = %s", resumen.CostoVendido)
	assert.True(t, resumen.CostoMermas.Equal(dec("25.00")))
	// Ganancia bruta descuenta también la merma: 140 − 84 − 25 = 31.
	assert.True(t, resumen.GananciaBruta.Equal(dec("31.00")), "ganancia = %s", resumen.GananciaBruta)
	assert.True(t, resumen.TotalAbonos.Equal(dec("30.00")))
	assert.True(t, resumen.TotalFondos.Equal(dec("500.00")))
	// Caja teórica: 500 + 100 efectivo − 30 abono = 570.
	assert.True(t, resumen.CajaTeorica.Equal(dec("570.00")), "teorica = %s", resumen.CajaTeorica)

	require.NotEmpty(t, resumen.TopProductos)
	assert.Equal(t, "Manzana", resumen.TopProductos[0].Nombre)
}

// La merma es pérdida del periodo: sin restarla la ganancia queda inflada.
func TestGananciaBrutaDescuentaMermas(t *testing.T) {
	svc, ventaRepo, mermaRepo, _, _ := setupReporte(t)
	ahora := time.Now()

	require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
		Folio: 1, VendedorID: uuid.New(), Metodo: model.MetodoEfectivo,
		Total: dec("140.00"), Estado: model.EstadoCompletada, CreatedAt: ahora,
		Items: []model.VentaItem{
			{Nombre: "Manzana", Cantidad: dec("4"), PrecioUnitario: dec("35.00"), CostoUnitario: dec("21.00"), Subtotal: dec("140.00")},
		},
	}))
	require.NoError(t, mermaRepo.CreateTx(nil, &model.Merma{
		ProductoID: uuid.New(), Nombre: "Manzana", Unidad: model.UnidadKilogramo,
		Cantidad: dec("1"), Motivo: model.MotivoMaduracion, CostoPerdido: dec("25.00"),
	}))

	resumen, err := svc.Resumen(context.Background(), PeriodoHoy(ahora))
	require.NoError(t, err)

	// 140 − 84 − 25 = 31.
	assert.True(t, resumen.GananciaBruta.Equal(dec("31.00")), "ganancia = %s", resumen.GananciaBruta)
}

func TestMovimientosOrdenDescendente(t *testing.T) {
	svc, ventaRepo, _, pagoRepo, cajaRepo := setupReporte(t)
	base := time.Date(2026, 8, 14, 8, 0, 0, 0, time.Local)

	require.NoError(t, cajaRepo.Create(context.Background(), &model.FondoCaja{
		MontoInicial: dec("500.00"), Estado: model.CajaAbierta,
		AbiertaPor: uuid.New(), AbiertaEn: base,
	}))
	require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
		Folio: 12, VendedorID: uuid.New(), Metodo: model.MetodoEfectivo,
		Total: dec("75.50"), Estado: model.EstadoCompletada, CreatedAt: base.Add(2 * time.Hour),
	}))
	proveedor := &model.Proveedor{Nombre: "Frutas del Valle"}
	require.NoError(t, pagoRepo.CreateTx(nil, &model.PagoProveedor{
		ProveedorID: uuid.New(), Monto: dec("200.00"), Metodo: model.MetodoEfectivo,
		CreatedAt: base.Add(time.Hour), Proveedor: proveedor,
	}))

	movs, err := svc.Movimientos(context.Background(), PeriodoHoy(base))
	require.NoError(t, err)
	require.Len(t, movs, 3)

	// Más reciente primero: venta (10:00), abono (09:00), apertura (08:00).
	assert.Equal(t, "Venta", movs[0].Tipo)
	assert.Equal(t, "Ticket #12", movs[0].Descripcion)
	assert.Equal(t, "Abono", movs[1].Tipo)
	assert.Equal(t, "Abono a Frutas del Valle", movs[1].Descripcion)
	assert.True(t, movs[1].Egreso)
	assert.Equal(t, "Fondo", movs[2].Tipo)
	assert.Equal(t, "Apertura de caja", movs[2].Descripcion)
}

func TestExportarCSV(t *testing.T) {
	svc, ventaRepo, _, pagoRepo, _ := setupReporte(t)
	cuando := time.Date(2026, 8, 14, 10, 30, 0, 0, time.Local)

	require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
		Folio: 7, VendedorID: uuid.New(), Metodo: model.MetodoEfectivo,
		Total: dec("75.5"), Estado: model.EstadoCompletada, CreatedAt: cuando,
	}))
	proveedor := &model.Proveedor{Nombre: "Frutas del Valle"}
	require.NoError(t, pagoRepo.CreateTx(nil, &model.PagoProveedor{
		ProveedorID: uuid.New(), Monto: dec("200.00"), Metodo: model.MetodoEfectivo,
		CreatedAt: cuando.Add(-time.Hour), Proveedor: proveedor,
	}))

	csv, err := svc.ExportarCSV(context.Background(), PeriodoHoy(cuando))
	require.NoError(t, err)

	lineas := strings.Split(strings.TrimRight(string(csv), "\n"), "\n")
	require.Len(t, lineas, 3)
	assert.Equal(t, "Fecha,Hora,Tipo,Descripcion,Metodo,Monto", lineas[0])
	assert.Equal(t, "14/08/2026,10:30:00,Venta,Ticket #7,Efectivo,75.50", lineas[1])
	// Los egresos salen con signo negativo.
	assert.Equal(t, "14/08/2026,09:30:00,Abono,Abono a Frutas del Valle,Efectivo,-200.00", lineas[2])
}

func TestSeriePorHora(t *testing.T) {
	svc, ventaRepo, _, _, _ := setupReporte(t)
	dia := time.Date(2026, 8, 14, 0, 0, 0, 0, time.Local)

	require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
		Folio: 1, VendedorID: uuid.New(), Metodo: model.MetodoEfectivo,
		Total: dec("50.00"), Estado: model.EstadoCompletada, CreatedAt: dia.Add(9*time.Hour + 15*time.Minute),
	}))
	require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
		Folio: 2, VendedorID: uuid.New(), Metodo: model.MetodoEfectivo,
		Total: dec("30.00"), Estado: model.EstadoCompletada, CreatedAt: dia.Add(9*time.Hour + 50*time.Minute),
	}))

	serie, err := svc.Serie(context.Background(), PeriodoHoy(dia), "hoy")
	require.NoError(t, err)
	require.Len(t, serie, 24)
	assert.Equal(t, "09:00", serie[9].Etiqueta)
	assert.True(t, serie[9].Monto.Equal(dec("80.00")), "monto = %s", serie[9].Monto)
	assert.True(t, serie[10].Monto.IsZero())
}

func TestSeriePorSemana(t *testing.T) {
	svc, ventaRepo, _, _, _ := setupReporte(t)
	// Miércoles 12/08/2026.
	miercoles := time.Date(2026, 8, 12, 12, 0, 0, 0, time.Local)

	require.NoError(t, ventaRepo.Create(context.Background(), nil, &model.Venta{
		Folio: 1, VendedorID: uuid.New(), Metodo: model.MetodoEfectivo,
		Total: dec("60.00"), Estado: model.EstadoCompletada, CreatedAt: miercoles,
	}))

	serie, err := svc.Serie(context.Background(), PeriodoSemana(miercoles), "semana")
	require.NoError(t, err)
	require.Len(t, serie, 7)
	assert.Equal(t, "Lun", serie[0].Etiqueta)
	assert.Equal(t, "Mié", serie[2].Etiqueta)
	assert.True(t, serie[2].Monto.Equal(dec("60.00")), "monto = %s", serie[2].Monto)
}
