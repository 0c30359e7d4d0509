package service

import (
	"context"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CajaService interface {
	Abrir(ctx context.Context, usuarioID uuid.UUID, req dto.AbrirCajaRequest) (*dto.FondoCajaResponse, error)
	// Cerrar reconciles the open drawer: theoretical cash is computed from
	// the session's movements and the difference recorded against the count.
	Cerrar(ctx context.Context, req dto.CerrarCajaRequest) (*dto.FondoCajaResponse, error)
	Activa(ctx context.Context) (*dto.FondoCajaResponse, error)
	Historial(ctx context.Context, page, limit int) (*dto.CajaListResponse, error)
	// CajaTeorica is what the drawer should hold for [desde, hasta]:
	// opening funds plus cash sales minus cash supplier payments.
	CajaTeorica(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)
}

type cajaService struct {
	repo      repository.CajaRepository
	ventaRepo repository.VentaRepository
	pagoRepo  repository.PagoRepository
}

func NewCajaService(repo repository.CajaRepository, ventaRepo repository.VentaRepository, pagoRepo repository.PagoRepository) CajaService {
	return &cajaService{repo: repo, ventaRepo: ventaRepo, pagoRepo: pagoRepo}
}

func (s *cajaService) Abrir(ctx context.Context, usuarioID uuid.UUID, req dto.AbrirCajaRequest) (*dto.FondoCajaResponse, error) {
	if req.MontoInicial.IsNegative() {
		return nil, apperr.Validacion("el monto inicial no puede ser negativo")
	}
	if _, err := s.repo.FindAbierta(ctx); err == nil {
		return nil, apperr.ErrCajaAbierta
	}

	f := &model.FondoCaja{
		MontoInicial: req.MontoInicial,
		Estado:       model.CajaAbierta,
		AbiertaPor:   usuarioID,
		AbiertaEn:    time.Now(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, apperr.Almacen("caja: abrir", err)
	}
	resp := fondoToResponse(f)
	return &resp, nil
}

func (s *cajaService) Cerrar(ctx context.Context, req dto.CerrarCajaRequest) (*dto.FondoCajaResponse, error) {
	if req.MontoContado.IsNegative() {
		return nil, apperr.Validacion("el monto contado no puede ser negativo")
	}
	f, err := s.repo.FindAbierta(ctx)
	if err != nil {
		return nil, apperr.ErrCajaCerrada
	}

	ahora := time.Now()
	teorica, err := s.CajaTeorica(ctx, f.AbiertaEn, ahora)
	if err != nil {
		return nil, err
	}
	diferencia := req.MontoContado.Sub(teorica)

	f.Estado = model.CajaCerrada
	f.CerradaEn = &ahora
	contado := req.MontoContado
	f.MontoContado = &contado
	f.CajaTeorica = &teorica
	f.Diferencia = &diferencia

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, apperr.Almacen("caja: cerrar", err)
	}
	resp := fondoToResponse(f)
	return &resp, nil
}

func (s *cajaService) Activa(ctx context.Context) (*dto.FondoCajaResponse, error) {
	f, err := s.repo.FindAbierta(ctx)
	if err != nil {
		return nil, apperr.ErrNoEncontrado
	}
	resp := fondoToResponse(f)
	return &resp, nil
}

func (s *cajaService) Historial(ctx context.Context, page, limit int) (*dto.CajaListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 30
	}
	fondos, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, apperr.Almacen("caja: historial", err)
	}
	data := make([]dto.FondoCajaResponse, len(fondos))
	for i := range fondos {
		data[i] = fondoToResponse(&fondos[i])
	}
	return &dto.CajaListResponse{Data: data, Total: total, Page: page, Limit: limit}, nil
}

func (s *cajaService) CajaTeorica(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	teorica := decimal.Zero

	fondos, err := s.repo.ListEnRango(ctx, desde, hasta)
	if err != nil {
		return decimal.Zero, apperr.Almacen("caja: fondos en rango", err)
	}
	for i := range fondos {
		teorica = teorica.Add(fondos[i].MontoInicial)
	}

	ventas, err := s.ventaRepo.ListEnRango(ctx, desde, hasta)
	if err != nil {
		return decimal.Zero, apperr.Almacen("caja: ventas en rango", err)
	}
	for i := range ventas {
		if ventas[i].Metodo == model.MetodoEfectivo {
			teorica = teorica.Add(ventas[i].Total)
		}
	}

	// Cash paid out to suppliers leaves the drawer.
	pagos, err := s.pagoRepo.ListEnRango(ctx, desde, hasta)
	if err != nil {
		return decimal.Zero, apperr.Almacen("caja: pagos en rango", err)
	}
	for i := range pagos {
		if pagos[i].Metodo == model.MetodoEfectivo {
			teorica = teorica.Sub(pagos[i].Monto)
		}
	}

	return teorica, nil
}

func fondoToResponse(f *model.FondoCaja) dto.FondoCajaResponse {
	resp := dto.FondoCajaResponse{
		ID:           f.ID.String(),
		MontoInicial: f.MontoInicial,
		Estado:       f.Estado,
		AbiertaEn:    fechaISO(f.AbiertaEn),
		MontoContado: f.MontoContado,
		CajaTeorica:  f.CajaTeorica,
		Diferencia:   f.Diferencia,
	}
	if f.CerradaEn != nil {
		cerrada := fechaISO(*f.CerradaEn)
		resp.CerradaEn = &cerrada
	}
	return resp
}
