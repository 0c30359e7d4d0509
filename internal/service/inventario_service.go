package service

import (
	"context"
	"errors"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CostoPromedio computes the weighted-average cost after an intake:
// (stock×costoActual + cantidad×costoUnitario) / (stock + cantidad), rounded
// to 4 decimals. With nothing on hand the intake cost becomes the new cost.
func CostoPromedio(stock, costoActual, cantidad, costoUnitario decimal.Decimal) (decimal.Decimal, error) {
	if cantidad.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, apperr.Validacion("la cantidad debe ser mayor a cero")
	}
	total := stock.Add(cantidad)
	if total.LessThanOrEqual(decimal.Zero) {
		return costoUnitario, nil
	}
	valor := stock.Mul(costoActual).Add(cantidad.Mul(costoUnitario))
	return valor.DivRound(total, 4), nil
}

type InventarioService interface {
	// RegistrarCompra books an intake: per-item stock and weighted-average
	// cost update, the purchase record, and the supplier debt increase, all in
	// one transaction.
	RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error)
	ListarCompras(ctx context.Context, desde, hasta time.Time) ([]dto.CompraResponse, error)
	// RegistrarMerma logs spoilage at the product's current average cost and
	// discounts the stock.
	RegistrarMerma(ctx context.Context, req dto.RegistrarMermaRequest) (*dto.MermaResponse, error)
	ListarMermas(ctx context.Context, desde, hasta time.Time) ([]dto.MermaResponse, error)
}

type inventarioService struct {
	productoRepo  repository.ProductoRepository
	compraRepo    repository.CompraRepository
	mermaRepo     repository.MermaRepository
	proveedorRepo repository.ProveedorRepository
}

func NewInventarioService(
	productoRepo repository.ProductoRepository,
	compraRepo repository.CompraRepository,
	mermaRepo repository.MermaRepository,
	proveedorRepo repository.ProveedorRepository,
) InventarioService {
	return &inventarioService{
		productoRepo:  productoRepo,
		compraRepo:    compraRepo,
		mermaRepo:     mermaRepo,
		proveedorRepo: proveedorRepo,
	}
}

func (s *inventarioService) RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraResponse, error) {
	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		return nil, apperr.Validacion("proveedor_id inválido")
	}
	proveedor, err := s.proveedorRepo.FindByID(ctx, proveedorID)
	if err != nil {
		return nil, apperr.ErrNoEncontrado
	}

	type lineaCompra struct {
		productoID    uuid.UUID
		cantidad      decimal.Decimal
		costoUnitario decimal.Decimal
	}
	lineas := make([]lineaCompra, 0, len(req.Items))
	total := decimal.Zero
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, apperr.Validacion("producto_id inválido: %s", item.ProductoID)
		}
		if item.Cantidad.LessThanOrEqual(decimal.Zero) {
			return nil, apperr.Validacion("la cantidad debe ser mayor a cero")
		}
		if item.CostoUnitario.IsNegative() {
			return nil, apperr.Validacion("el costo unitario no puede ser negativo")
		}
		lineas = append(lineas, lineaCompra{productoID: pid, cantidad: item.Cantidad, costoUnitario: item.CostoUnitario})
		total = total.Add(item.Cantidad.Mul(item.CostoUnitario).Round(2))
	}

	compra := &model.Compra{
		ProveedorID: proveedorID,
		Total:       total,
		Items:       make([]model.CompraItem, 0, len(lineas)),
	}

	txErr := runTx(ctx, s.productoRepo.DB(), func(tx *gorm.DB) error {
		for _, l := range lineas {
			p, err := s.productoRepo.FindByIDTx(tx, l.productoID)
			if err != nil {
				return apperr.ErrNoEncontrado
			}
			nuevoCosto, err := CostoPromedio(p.Stock, p.Costo, l.cantidad, l.costoUnitario)
			if err != nil {
				return err
			}
			nuevoStock := p.Stock.Add(l.cantidad)
			if err := s.productoRepo.ActualizarCompraTx(tx, l.productoID, nuevoCosto, nuevoStock); err != nil {
				return err
			}
			compra.Items = append(compra.Items, model.CompraItem{
				ProductoID:    l.productoID,
				Nombre:        p.Nombre,
				Cantidad:      l.cantidad,
				CostoUnitario: l.costoUnitario,
				Subtotal:      l.cantidad.Mul(l.costoUnitario).Round(2),
			})
		}
		if err := s.compraRepo.CreateTx(tx, compra); err != nil {
			return err
		}
		// The intake goes on the tab; abonos bring it back down.
		return s.proveedorRepo.AjustarDeudaTx(tx, proveedorID, total)
	})
	if txErr != nil {
		if errors.Is(txErr, apperr.ErrValidacion) || errors.Is(txErr, apperr.ErrNoEncontrado) {
			return nil, txErr
		}
		return nil, apperr.Almacen("inventario: registrar compra", txErr)
	}

	resp := compraToResponse(compra, proveedor.Nombre)
	return &resp, nil
}

func (s *inventarioService) ListarCompras(ctx context.Context, desde, hasta time.Time) ([]dto.CompraResponse, error) {
	compras, err := s.compraRepo.ListEnRango(ctx, desde, hasta)
	if err != nil {
		return nil, apperr.Almacen("inventario: listar compras", err)
	}
	resp := make([]dto.CompraResponse, len(compras))
	for i := range compras {
		nombre := ""
		if compras[i].Proveedor != nil {
			nombre = compras[i].Proveedor.Nombre
		}
		resp[i] = compraToResponse(&compras[i], nombre)
	}
	return resp, nil
}

func (s *inventarioService) RegistrarMerma(ctx context.Context, req dto.RegistrarMermaRequest) (*dto.MermaResponse, error) {
	pid, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apperr.Validacion("producto_id inválido")
	}
	if req.Cantidad.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.Validacion("la cantidad debe ser mayor a cero")
	}

	var merma *model.Merma
	txErr := runTx(ctx, s.productoRepo.DB(), func(tx *gorm.DB) error {
		p, err := s.productoRepo.FindByIDTx(tx, pid)
		if err != nil {
			return apperr.ErrNoEncontrado
		}
		// Cost is frozen at logging time so later intakes don't rewrite the loss.
		merma = &model.Merma{
			ProductoID:   pid,
			Nombre:       p.Nombre,
			Unidad:       p.Unidad,
			Cantidad:     req.Cantidad,
			Motivo:       req.Motivo,
			CostoPerdido: req.Cantidad.Mul(p.Costo).Round(2),
		}
		if err := s.mermaRepo.CreateTx(tx, merma); err != nil {
			return err
		}
		return s.productoRepo.DescontarStockTx(tx, pid, req.Cantidad)
	})
	if txErr != nil {
		if errors.Is(txErr, apperr.ErrNoEncontrado) || errors.Is(txErr, apperr.ErrStockInsuficiente) {
			return nil, txErr
		}
		return nil, apperr.Almacen("inventario: registrar merma", txErr)
	}

	resp := mermaToResponse(merma)
	return &resp, nil
}

func (s *inventarioService) ListarMermas(ctx context.Context, desde, hasta time.Time) ([]dto.MermaResponse, error) {
	mermas, err := s.mermaRepo.ListEnRango(ctx, desde, hasta)
	if err != nil {
		return nil, apperr.Almacen("inventario: listar mermas", err)
	}
	resp := make([]dto.MermaResponse, len(mermas))
	for i := range mermas {
		resp[i] = mermaToResponse(&mermas[i])
	}
	return resp, nil
}

func compraToResponse(c *model.Compra, proveedor string) dto.CompraResponse {
	items := make([]dto.CompraItemResponse, len(c.Items))
	for i := range c.Items {
		item := &c.Items[i]
		items[i] = dto.CompraItemResponse{
			Producto:      item.Nombre,
			Cantidad:      item.Cantidad,
			CostoUnitario: item.CostoUnitario,
			Subtotal:      item.Subtotal,
		}
	}
	return dto.CompraResponse{
		ID:        c.ID.String(),
		Proveedor: proveedor,
		Total:     c.Total,
		Items:     items,
		CreatedAt: fechaISO(c.CreatedAt),
	}
}

func mermaToResponse(m *model.Merma) dto.MermaResponse {
	return dto.MermaResponse{
		ID:           m.ID.String(),
		Producto:     m.Nombre,
		Unidad:       m.Unidad,
		Cantidad:     m.Cantidad,
		Motivo:       m.Motivo,
		CostoPerdido: m.CostoPerdido,
		CreatedAt:    fechaISO(m.CreatedAt),
	}
}
