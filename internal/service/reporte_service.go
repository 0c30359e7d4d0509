package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/repository"

	"github.com/shopspring/decimal"
)

// Periodo is a closed reporting window [Desde, Hasta].
type Periodo struct {
	Desde time.Time
	Hasta time.Time
}

// finDeDia returns the last instant of t's calendar day.
func finDeDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}

func inicioDeDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PeriodoHoy covers the current calendar day.
func PeriodoHoy(ahora time.Time) Periodo {
	return Periodo{Desde: inicioDeDia(ahora), Hasta: finDeDia(ahora)}
}

// PeriodoSemana covers Monday through the current day. A Sunday belongs to
// the week that started the previous Monday.
func PeriodoSemana(ahora time.Time) Periodo {
	dias := int(ahora.Weekday()) - int(time.Monday)
	if dias < 0 {
		dias += 7
	}
	lunes := inicioDeDia(ahora.AddDate(0, 0, -dias))
	return Periodo{Desde: lunes, Hasta: finDeDia(ahora)}
}

// PeriodoMes covers the 1st of the current month through the current day.
func PeriodoMes(ahora time.Time) Periodo {
	primero := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())
	return Periodo{Desde: primero, Hasta: finDeDia(ahora)}
}

// PeriodoRango covers two arbitrary days, inclusive on both ends.
func PeriodoRango(desde, hasta time.Time) Periodo {
	return Periodo{Desde: inicioDeDia(desde), Hasta: finDeDia(hasta)}
}

// TopN aggregates items by name and returns the n largest by value.
// Ties keep first-seen order.
func TopN(items []dto.TopItem, n int) []dto.TopItem {
	totales := make(map[string]decimal.Decimal)
	orden := make([]string, 0)
	for _, item := range items {
		if _, ok := totales[item.Nombre]; !ok {
			orden = append(orden, item.Nombre)
		}
		totales[item.Nombre] = totales[item.Nombre].Add(item.Valor)
	}

	agregados := make([]dto.TopItem, 0, len(orden))
	for _, nombre := range orden {
		agregados = append(agregados, dto.TopItem{Nombre: nombre, Valor: totales[nombre]})
	}
	sort.SliceStable(agregados, func(i, j int) bool {
		return agregados[i].Valor.GreaterThan(agregados[j].Valor)
	})
	if len(agregados) > n {
		agregados = agregados[:n]
	}
	return agregados
}

type ReporteService interface {
	Resumen(ctx context.Context, p Periodo) (*dto.ResumenResponse, error)
	// Movimientos is the unified money ledger for the period, newest first.
	Movimientos(ctx context.Context, p Periodo) ([]dto.MovimientoResponse, error)
	// ExportarCSV renders the ledger as CSV. Outflows are negative.
	ExportarCSV(ctx context.Context, p Periodo) ([]byte, error)
	// Serie buckets sales totals for charting: by hour for a day, by weekday
	// for a week, by day of month for a month, by date otherwise.
	Serie(ctx context.Context, p Periodo, tipo string) ([]dto.SeriePunto, error)
}

type reporteService struct {
	ventaRepo repository.VentaRepository
	mermaRepo repository.MermaRepository
	pagoRepo  repository.PagoRepository
	cajaRepo  repository.CajaRepository
	cajas     CajaService
}

func NewReporteService(
	ventaRepo repository.VentaRepository,
	mermaRepo repository.MermaRepository,
	pagoRepo repository.PagoRepository,
	cajaRepo repository.CajaRepository,
	cajas CajaService,
) ReporteService {
	return &reporteService{
		ventaRepo: ventaRepo,
		mermaRepo: mermaRepo,
		pagoRepo:  pagoRepo,
		cajaRepo:  cajaRepo,
		cajas:     cajas,
	}
}

const topSize = 5

func (s *reporteService) Resumen(ctx context.Context, p Periodo) (*dto.ResumenResponse, error) {
	ventas, err := s.ventaRepo.ListEnRango(ctx, p.Desde, p.Hasta)
	if err != nil {
		return nil, apperr.Almacen("reporte: ventas", err)
	}
	mermas, err := s.mermaRepo.ListEnRango(ctx, p.Desde, p.Hasta)
	if err != nil {
		return nil, apperr.Almacen("reporte: mermas", err)
	}
	pagos, err := s.pagoRepo.ListEnRango(ctx, p.Desde, p.Hasta)
	if err != nil {
		return nil, apperr.Almacen("reporte: pagos", err)
	}
	fondos, err := s.cajaRepo.ListEnRango(ctx, p.Desde, p.Hasta)
	if err != nil {
		return nil, apperr.Almacen("reporte: fondos", err)
	}

	resumen := &dto.ResumenResponse{
		TotalVentas:     decimal.Zero,
		VentasEfectivo:  decimal.Zero,
		VentasDigitales: decimal.Zero,
		CostoVendido:    decimal.Zero,
		CostoMermas:     decimal.Zero,
		TotalFondos:     decimal.Zero,
		TotalAbonos:     decimal.Zero,
	}

	ventaItems := make([]dto.TopItem, 0)
	for i := range ventas {
		v := &ventas[i]
		resumen.TotalVentas = resumen.TotalVentas.Add(v.Total)
		resumen.NumVentas++
		if v.Metodo == model.MetodoEfectivo {
			resumen.VentasEfectivo = resumen.VentasEfectivo.Add(v.Total)
		} else {
			resumen.VentasDigitales = resumen.VentasDigitales.Add(v.Total)
		}
		for j := range v.Items {
			item := &v.Items[j]
			// Cost of goods sold uses the per-sale cost snapshot, not the
			// product's current average.
			resumen.CostoVendido = resumen.CostoVendido.Add(item.CostoUnitario.Mul(item.Cantidad).Round(2))
			ventaItems = append(ventaItems, dto.TopItem{Nombre: item.Nombre, Valor: item.Cantidad})
		}
	}

	mermaItems := make([]dto.TopItem, 0, len(mermas))
	for i := range mermas {
		resumen.CostoMermas = resumen.CostoMermas.Add(mermas[i].CostoPerdido)
		mermaItems = append(mermaItems, dto.TopItem{Nombre: mermas[i].Nombre, Valor: mermas[i].CostoPerdido})
	}
	for i := range pagos {
		resumen.TotalAbonos = resumen.TotalAbonos.Add(pagos[i].Monto)
	}
	for i := range fondos {
		resumen.TotalFondos = resumen.TotalFondos.Add(fondos[i].MontoInicial)
	}

	// Gross profit nets out both what the sold goods cost and what spoiled.
	resumen.GananciaBruta = resumen.TotalVentas.Sub(resumen.CostoVendido).Sub(resumen.CostoMermas)

	teorica, err := s.cajas.CajaTeorica(ctx, p.Desde, p.Hasta)
	if err != nil {
		return nil, err
	}
	resumen.CajaTeorica = teorica

	resumen.TopProductos = TopN(ventaItems, topSize)
	resumen.TopMermas = TopN(mermaItems, topSize)
	return resumen, nil
}

type movimientoOrdenable struct {
	cuando time.Time
	mov    dto.MovimientoResponse
}

func (s *reporteService) Movimientos(ctx context.Context, p Periodo) ([]dto.MovimientoResponse, error) {
	ventas, err := s.ventaRepo.ListEnRango(ctx, p.Desde, p.Hasta)
	if err != nil {
		return nil, apperr.Almacen("reporte: ventas", err)
	}
	pagos, err := s.pagoRepo.ListEnRango(ctx, p.Desde, p.Hasta)
	if err != nil {
		return nil, apperr.Almacen("reporte: pagos", err)
	}
	fondos, err := s.cajaRepo.ListEnRango(ctx, p.Desde, p.Hasta)
	if err != nil {
		return nil, apperr.Almacen("reporte: fondos", err)
	}

	movs := make([]movimientoOrdenable, 0, len(ventas)+len(pagos)+len(fondos))
	for i := range ventas {
		v := &ventas[i]
		movs = append(movs, movimientoOrdenable{
			cuando: v.CreatedAt,
			mov: dto.MovimientoResponse{
				Fecha:       v.CreatedAt.Format("02/01/2006"),
				Hora:        v.CreatedAt.Format("15:04:05"),
				Tipo:        "Venta",
				Descripcion: fmt.Sprintf("Ticket #%d", v.Folio),
				Metodo:      v.Metodo,
				Monto:       v.Total,
				Egreso:      false,
			},
		})
	}
	for i := range pagos {
		pg := &pagos[i]
		proveedor := ""
		if pg.Proveedor != nil {
			proveedor = pg.Proveedor.Nombre
		}
		movs = append(movs, movimientoOrdenable{
			cuando: pg.CreatedAt,
			mov: dto.MovimientoResponse{
				Fecha:       pg.CreatedAt.Format("02/01/2006"),
				Hora:        pg.CreatedAt.Format("15:04:05"),
				Tipo:        "Abono",
				Descripcion: "Abono a " + proveedor,
				Metodo:      pg.Metodo,
				Monto:       pg.Monto,
				Egreso:      true,
			},
		})
	}
	for i := range fondos {
		f := &fondos[i]
		movs = append(movs, movimientoOrdenable{
			cuando: f.AbiertaEn,
			mov: dto.MovimientoResponse{
				Fecha:       f.AbiertaEn.Format("02/01/2006"),
				Hora:        f.AbiertaEn.Format("15:04:05"),
				Tipo:        "Fondo",
				Descripcion: "Apertura de caja",
				Metodo:      model.MetodoEfectivo,
				Monto:       f.MontoInicial,
				Egreso:      false,
			},
		})
	}

	sort.SliceStable(movs, func(i, j int) bool { return movs[i].cuando.After(movs[j].cuando) })

	resp := make([]dto.MovimientoResponse, len(movs))
	for i := range movs {
		resp[i] = movs[i].mov
	}
	return resp, nil
}

func (s *reporteService) ExportarCSV(ctx context.Context, p Periodo) ([]byte, error) {
	movs, err := s.Movimientos(ctx, p)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("Fecha,Hora,Tipo,Descripcion,Metodo,Monto\n")
	for i := range movs {
		m := &movs[i]
		monto := m.Monto.StringFixed(2)
		if m.Egreso {
			monto = "-" + monto
		}
		b.WriteString(strings.Join([]string{m.Fecha, m.Hora, m.Tipo, m.Descripcion, m.Metodo, monto}, ","))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

var etiquetasDia = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

func (s *reporteService) Serie(ctx context.Context, p Periodo, tipo string) ([]dto.SeriePunto, error) {
	ventas, err := s.ventaRepo.ListEnRango(ctx, p.Desde, p.Hasta)
	if err != nil {
		return nil, apperr.Almacen("reporte: ventas", err)
	}

	var etiquetas []string
	var clave func(t time.Time) string

	switch tipo {
	case "hoy":
		etiquetas = make([]string, 24)
		for h := 0; h < 24; h++ {
			etiquetas[h] = fmt.Sprintf("%02d:00", h)
		}
		clave = func(t time.Time) string { return fmt.Sprintf("%02d:00", t.Hour()) }
	case "semana":
		etiquetas = []string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}
		clave = func(t time.Time) string { return etiquetasDia[int(t.Weekday())] }
	case "mes":
		dias := finDeDia(p.Hasta).Day()
		etiquetas = make([]string, dias)
		for d := 1; d <= dias; d++ {
			etiquetas[d-1] = fmt.Sprintf("%d", d)
		}
		clave = func(t time.Time) string { return fmt.Sprintf("%d", t.Day()) }
	default:
		for d := inicioDeDia(p.Desde); !d.After(p.Hasta); d = d.AddDate(0, 0, 1) {
			etiquetas = append(etiquetas, d.Format("02/01"))
		}
		clave = func(t time.Time) string { return t.Format("02/01") }
	}

	totales := make(map[string]decimal.Decimal, len(etiquetas))
	for i := range ventas {
		k := clave(ventas[i].CreatedAt)
		totales[k] = totales[k].Add(ventas[i].Total)
	}

	serie := make([]dto.SeriePunto, len(etiquetas))
	for i, etiqueta := range etiquetas {
		serie[i] = dto.SeriePunto{Etiqueta: etiqueta, Monto: totales[etiqueta]}
	}
	return serie, nil
}
