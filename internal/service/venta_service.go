package service

import (
	"context"
	"errors"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/repository"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	// Cobrar commits the cart atomically: folio assignment, sale insert and
	// stock discount succeed or fail together.
	Cobrar(ctx context.Context, vendedorID, carritoID uuid.UUID, req dto.CobrarRequest) (*dto.VentaResponse, error)
	Cancelar(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
	SiguienteFolio(ctx context.Context) (int, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	productoRepo repository.ProductoRepository
	carritos     CarritoService
	dispatcher   *worker.Dispatcher
}

func NewVentaService(repo repository.VentaRepository, productoRepo repository.ProductoRepository, carritos CarritoService, dispatcher *worker.Dispatcher) VentaService {
	return &ventaService{repo: repo, productoRepo: productoRepo, carritos: carritos, dispatcher: dispatcher}
}

func (s *ventaService) Cobrar(ctx context.Context, vendedorID, carritoID uuid.UUID, req dto.CobrarRequest) (*dto.VentaResponse, error) {
	carrito, err := s.carritos.Snapshot(carritoID)
	if err != nil {
		return nil, err
	}
	if len(carrito.Lineas) == 0 {
		return nil, apperr.Validacion("el carrito está vacío")
	}

	total := carrito.Total()
	recibido := req.Recibido
	cambio := decimal.Zero
	if req.Metodo == model.MetodoEfectivo {
		if recibido.LessThan(total) {
			return nil, apperr.Validacion("monto recibido insuficiente")
		}
		cambio = recibido.Sub(total)
	} else {
		// Digital methods are exact by definition.
		recibido = total
	}

	// Folio is MAX+1 under a unique index. A concurrent checkout can win the
	// same folio; the loser retries once with a fresh read.
	var venta *model.Venta
	for intento := 0; intento < 2; intento++ {
		max, err := s.repo.MaxFolio(ctx)
		if err != nil {
			return nil, apperr.Almacen("venta: folio", err)
		}

		v := &model.Venta{
			Folio:      max + 1,
			VendedorID: vendedorID,
			Metodo:     req.Metodo,
			Total:      total,
			Recibido:   recibido,
			Cambio:     cambio,
			Estado:     model.EstadoCompletada,
			Items:      make([]model.VentaItem, len(carrito.Lineas)),
		}
		for i := range carrito.Lineas {
			l := &carrito.Lineas[i]
			v.Items[i] = model.VentaItem{
				ProductoID:     l.ProductoID,
				Nombre:         l.Nombre,
				Unidad:         l.Unidad,
				Cantidad:       l.Cantidad,
				PrecioUnitario: l.PrecioUnitario,
				CostoUnitario:  l.CostoUnitario,
				Subtotal:       l.Subtotal(),
			}
		}

		txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			if err := s.repo.Create(ctx, tx, v); err != nil {
				return err
			}
			for i := range carrito.Lineas {
				l := &carrito.Lineas[i]
				if err := s.productoRepo.DescontarStockTx(tx, l.ProductoID, l.Cantidad); err != nil {
					return err
				}
			}
			return nil
		})
		if txErr == nil {
			venta = v
			break
		}
		if esConflictoUnico(txErr) && intento == 0 {
			continue
		}
		if errors.Is(txErr, apperr.ErrStockInsuficiente) {
			return nil, apperr.ErrStockInsuficiente
		}
		return nil, apperr.Almacen("venta: cobrar", txErr)
	}
	if venta == nil {
		return nil, apperr.ErrConflicto
	}

	s.carritos.Descartar(carritoID)
	s.notificarPostVenta(ctx, venta, carrito)

	resp := ventaToResponse(venta)
	return &resp, nil
}

// notificarPostVenta fires the async follow-ups of a committed sale: the PDF
// ticket and low-stock alerts for products this sale pushed under their
// minimum. Both are best effort.
func (s *ventaService) notificarPostVenta(ctx context.Context, venta *model.Venta, carrito *Carrito) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.EnqueueTicket(ctx, worker.TicketJobPayload{VentaID: venta.ID.String()}); err != nil {
		log.Warn().Err(err).Int("folio", venta.Folio).Msg("venta: failed to enqueue ticket job")
	}

	for i := range carrito.Lineas {
		l := &carrito.Lineas[i]
		p, err := s.productoRepo.FindByID(ctx, l.ProductoID)
		if err != nil {
			continue
		}
		// Alert only on the crossing: was above the minimum before this sale.
		if p.BajoStock() && p.Stock.Add(l.Cantidad).GreaterThan(p.StockMinimo) {
			payload := worker.AlertaJobPayload{
				ProductoID:  p.ID.String(),
				Nombre:      p.Nombre,
				Unidad:      p.Unidad,
				Stock:       p.Stock,
				StockMinimo: p.StockMinimo,
			}
			if err := s.dispatcher.EnqueueAlerta(ctx, payload); err != nil {
				log.Warn().Err(err).Str("producto", p.Nombre).Msg("venta: failed to enqueue low-stock alert")
			}
		}
	}
}

// Cancelar reverses a completed sale: stock goes back and the record is kept
// with estado cancelada. A sale can only be cancelled once.
func (s *ventaService) Cancelar(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.ErrNoEncontrado
	}
	if venta.Estado == model.EstadoCancelada {
		return nil, apperr.ErrVentaCancelada
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for i := range venta.Items {
			item := &venta.Items[i]
			if err := s.productoRepo.ReponerStockTx(tx, item.ProductoID, item.Cantidad); err != nil {
				return err
			}
		}
		return s.repo.UpdateEstadoTx(tx, id, model.EstadoCancelada)
	})
	if txErr != nil {
		return nil, apperr.Almacen("venta: cancelar", txErr)
	}

	venta.Estado = model.EstadoCancelada
	resp := ventaToResponse(venta)
	return &resp, nil
}

func (s *ventaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.ErrNoEncontrado
	}
	resp := ventaToResponse(venta)
	return &resp, nil
}

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Almacen("venta: listar", err)
	}
	data := make([]dto.VentaResponse, len(ventas))
	for i := range ventas {
		data[i] = ventaToResponse(&ventas[i])
	}
	return &dto.VentaListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// SiguienteFolio previews the folio the next checkout will take. Display
// only: the real assignment happens inside the checkout transaction.
func (s *ventaService) SiguienteFolio(ctx context.Context) (int, error) {
	max, err := s.repo.MaxFolio(ctx)
	if err != nil {
		return 0, apperr.Almacen("venta: folio", err)
	}
	return max + 1, nil
}

func ventaToResponse(v *model.Venta) dto.VentaResponse {
	items := make([]dto.VentaItemResponse, len(v.Items))
	for i := range v.Items {
		item := &v.Items[i]
		items[i] = dto.VentaItemResponse{
			Producto:       item.Nombre,
			Unidad:         item.Unidad,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
		}
	}
	vendedor := ""
	if v.Vendedor != nil {
		vendedor = v.Vendedor.Nombre
	}
	return dto.VentaResponse{
		ID:        v.ID.String(),
		Folio:     v.Folio,
		Vendedor:  vendedor,
		Metodo:    v.Metodo,
		Total:     v.Total,
		Recibido:  v.Recibido,
		Cambio:    v.Cambio,
		Estado:    v.Estado,
		Items:     items,
		CreatedAt: fechaISO(v.CreatedAt),
	}
}
