package service

import (
	"context"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
	// ActualizarPrecios applies the batch price editor: no-op entries are
	// skipped, each applied change writes a history row, and per-entry
	// failures don't roll back the rest of the batch.
	ActualizarPrecios(ctx context.Context, usuarioID uuid.UUID, req dto.ActualizarPreciosRequest) (*dto.ActualizarPreciosResponse, error)
	HistorialPrecios(ctx context.Context, productoID uuid.UUID) ([]dto.HistorialPrecioResponse, error)
}

type productoService struct {
	repo          repository.ProductoRepository
	historialRepo repository.HistorialPrecioRepository
	rdb           *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, historialRepo repository.HistorialPrecioRepository, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, historialRepo: historialRepo, rdb: rdb}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		Codigo:      req.Codigo,
		Nombre:      req.Nombre,
		Categoria:   req.Categoria,
		Unidad:      req.Unidad,
		Precio:      req.Precio,
		Costo:       req.Costo,
		Stock:       req.Stock,
		StockMinimo: req.StockMinimo,
		Imagen:      req.Imagen,
		Activo:      true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if esConflictoUnico(err) {
			return nil, apperr.ErrConflicto
		}
		return nil, apperr.Almacen("producto: crear", err)
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.ErrNoEncontrado
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 100
	}
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Almacen("producto: listar", err)
	}
	data := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		data[i] = productoToResponse(&productos[i])
	}
	return &dto.ProductoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.ErrNoEncontrado
	}
	if req.Nombre != "" {
		p.Nombre = req.Nombre
	}
	if req.Categoria != "" {
		p.Categoria = req.Categoria
	}
	if req.Unidad != "" {
		p.Unidad = req.Unidad
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.Imagen != nil {
		p.Imagen = req.Imagen
	}
	// Price edits through PUT also leave a history row, same as the batch editor.
	if req.Precio != nil && !req.Precio.Equal(p.Precio) {
		anterior := p.Precio
		if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			if err := s.repo.ActualizarPrecioTx(tx, id, *req.Precio); err != nil {
				return err
			}
			return s.historialRepo.CreateTx(tx, &model.HistorialPrecio{
				ProductoID:     id,
				PrecioAnterior: anterior,
				PrecioNuevo:    *req.Precio,
			})
		}); err != nil {
			return nil, apperr.Almacen("producto: actualizar precio", err)
		}
		p.Precio = *req.Precio
		s.invalidarCachePrecio(ctx, p.Codigo)
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apperr.Almacen("producto: actualizar", err)
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apperr.ErrNoEncontrado
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apperr.Almacen("producto: desactivar", err)
	}
	s.invalidarCachePrecio(ctx, p.Codigo)
	return nil
}

func (s *productoService) Reactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivar(ctx, id)
}

func (s *productoService) ActualizarPrecios(ctx context.Context, usuarioID uuid.UUID, req dto.ActualizarPreciosRequest) (*dto.ActualizarPreciosResponse, error) {
	resp := &dto.ActualizarPreciosResponse{Fallidos: make(map[string]string)}

	for _, cambio := range req.Cambios {
		pid, err := uuid.Parse(cambio.ProductoID)
		if err != nil {
			resp.Fallidos[cambio.ProductoID] = "producto_id inválido"
			continue
		}
		p, err := s.repo.FindByID(ctx, pid)
		if err != nil {
			resp.Fallidos[cambio.ProductoID] = "producto no encontrado"
			continue
		}
		if cambio.Precio.Equal(p.Precio) {
			resp.SinCambio++
			continue
		}

		anterior := p.Precio
		uid := usuarioID
		txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			if err := s.repo.ActualizarPrecioTx(tx, pid, cambio.Precio); err != nil {
				return err
			}
			return s.historialRepo.CreateTx(tx, &model.HistorialPrecio{
				ProductoID:     pid,
				PrecioAnterior: anterior,
				PrecioNuevo:    cambio.Precio,
				UsuarioID:      &uid,
			})
		})
		if txErr != nil {
			resp.Fallidos[cambio.ProductoID] = txErr.Error()
			continue
		}
		resp.Aplicados++
		s.invalidarCachePrecio(ctx, p.Codigo)
	}

	return resp, nil
}

func (s *productoService) HistorialPrecios(ctx context.Context, productoID uuid.UUID) ([]dto.HistorialPrecioResponse, error) {
	historial, err := s.historialRepo.ListByProducto(ctx, productoID)
	if err != nil {
		return nil, apperr.Almacen("producto: historial de precios", err)
	}
	resp := make([]dto.HistorialPrecioResponse, len(historial))
	for i, h := range historial {
		resp[i] = dto.HistorialPrecioResponse{
			PrecioAnterior: h.PrecioAnterior,
			PrecioNuevo:    h.PrecioNuevo,
			Fecha:          fechaISO(h.CreatedAt),
		}
	}
	return resp, nil
}

// invalidarCachePrecio drops the public price-check cache entry. Best effort:
// the entry expires on its own TTL anyway.
func (s *productoService) invalidarCachePrecio(ctx context.Context, codigo string) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, "precio:"+codigo).Err()
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID.String(),
		Codigo:      p.Codigo,
		Nombre:      p.Nombre,
		Categoria:   p.Categoria,
		Unidad:      p.Unidad,
		Precio:      p.Precio,
		Costo:       p.Costo,
		Stock:       p.Stock,
		StockMinimo: p.StockMinimo,
		Imagen:      p.Imagen,
		Activo:      p.Activo,
		BajoStock:   p.BajoStock(),
		CreatedAt:   fechaISO(p.CreatedAt),
	}
}
