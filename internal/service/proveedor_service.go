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
	"gorm.io/gorm"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context, incluirInactivos bool) ([]dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
	// RegistrarAbono records a payment against the supplier's debt. The debt
	// clamps at zero: paying more than owed settles the account.
	RegistrarAbono(ctx context.Context, id uuid.UUID, req dto.AbonoRequest) (*dto.AbonoResponse, error)
	EstadoCuenta(ctx context.Context, id uuid.UUID, desde, hasta time.Time) (*dto.EstadoCuentaResponse, error)
}

type proveedorService struct {
	repo       repository.ProveedorRepository
	compraRepo repository.CompraRepository
	pagoRepo   repository.PagoRepository
}

func NewProveedorService(repo repository.ProveedorRepository, compraRepo repository.CompraRepository, pagoRepo repository.PagoRepository) ProveedorService {
	return &proveedorService{repo: repo, compraRepo: compraRepo, pagoRepo: pagoRepo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	p := &model.Proveedor{
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
		DiaVisita: req.DiaVisita,
		Deuda:     decimal.Zero,
		Activo:    true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperr.Almacen("proveedor: crear", err)
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.ErrNoEncontrado
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

func (s *proveedorService) Listar(ctx context.Context, incluirInactivos bool) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx, incluirInactivos)
	if err != nil {
		return nil, apperr.Almacen("proveedor: listar", err)
	}
	resp := make([]dto.ProveedorResponse, len(proveedores))
	for i := range proveedores {
		resp[i] = proveedorToResponse(&proveedores[i])
	}
	return resp, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.ErrNoEncontrado
	}
	if req.Nombre != "" {
		p.Nombre = req.Nombre
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Direccion != nil {
		p.Direccion = req.Direccion
	}
	if req.DiaVisita != nil {
		p.DiaVisita = req.DiaVisita
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apperr.Almacen("proveedor: actualizar", err)
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

func (s *proveedorService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apperr.ErrNoEncontrado
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apperr.Almacen("proveedor: desactivar", err)
	}
	return nil
}

func (s *proveedorService) Reactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivar(ctx, id)
}

func (s *proveedorService) RegistrarAbono(ctx context.Context, id uuid.UUID, req dto.AbonoRequest) (*dto.AbonoResponse, error) {
	if req.Monto.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Validacion("el monto debe ser mayor a cero")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, apperr.ErrNoEncontrado
	}

	pago := &model.PagoProveedor{
		ProveedorID: id,
		Monto:       req.Monto,
		Metodo:      req.Metodo,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.pagoRepo.CreateTx(tx, pago); err != nil {
			return err
		}
		return s.repo.AjustarDeudaTx(tx, id, req.Monto.Neg())
	})
	if txErr != nil {
		return nil, apperr.Almacen("proveedor: registrar abono", txErr)
	}

	resp := abonoToResponse(pago)
	return &resp, nil
}

func (s *proveedorService) EstadoCuenta(ctx context.Context, id uuid.UUID, desde, hasta time.Time) (*dto.EstadoCuentaResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.ErrNoEncontrado
	}

	compras, err := s.compraRepo.ListByProveedor(ctx, id, desde, hasta)
	if err != nil {
		return nil, apperr.Almacen("proveedor: compras", err)
	}
	pagos, err := s.pagoRepo.ListByProveedor(ctx, id, desde, hasta)
	if err != nil {
		return nil, apperr.Almacen("proveedor: pagos", err)
	}

	resp := &dto.EstadoCuentaResponse{
		Proveedor:     proveedorToResponse(p),
		Compras:       make([]dto.CompraResponse, len(compras)),
		Abonos:        make([]dto.AbonoResponse, len(pagos)),
		TotalComprado: decimal.Zero,
		TotalAbonado:  decimal.Zero,
	}
	for i := range compras {
		resp.Compras[i] = compraToResponse(&compras[i], p.Nombre)
		resp.TotalComprado = resp.TotalComprado.Add(compras[i].Total)
	}
	for i := range pagos {
		resp.Abonos[i] = abonoToResponse(&pagos[i])
		resp.TotalAbonado = resp.TotalAbonado.Add(pagos[i].Monto)
	}
	return resp, nil
}

func proveedorToResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:        p.ID.String(),
		Nombre:    p.Nombre,
		Telefono:  p.Telefono,
		Email:     p.Email,
		Direccion: p.Direccion,
		DiaVisita: p.DiaVisita,
		Deuda:     p.Deuda,
		Activo:    p.Activo,
	}
}

func abonoToResponse(p *model.PagoProveedor) dto.AbonoResponse {
	return dto.AbonoResponse{
		ID:        p.ID.String(),
		Monto:     p.Monto,
		Metodo:    p.Metodo,
		CreatedAt: fechaISO(p.CreatedAt),
	}
}
