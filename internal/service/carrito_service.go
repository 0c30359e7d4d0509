package service

import (
	"context"
	"sync"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineaCarrito is one cart line. PrecioUnitario and CostoUnitario are
// snapshots taken when the line is added; catalog edits after that don't
// change an in-flight cart.
type LineaCarrito struct {
	ProductoID     uuid.UUID
	Nombre         string
	Unidad         string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	CostoUnitario  decimal.Decimal
}

// Subtotal is cantidad × precio, rounded to cents.
func (l *LineaCarrito) Subtotal() decimal.Decimal {
	return l.Cantidad.Mul(l.PrecioUnitario).Round(2)
}

// Carrito is the in-memory working sale. Carts (including held ones) never
// touch the store: stock is only committed at checkout.
type Carrito struct {
	ID         uuid.UUID
	VendedorID uuid.UUID
	Lineas     []LineaCarrito
	CreadoEn   time.Time
}

func (c *Carrito) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Lineas {
		total = total.Add(c.Lineas[i].Subtotal())
	}
	return total
}

type CarritoService interface {
	Crear(vendedorID uuid.UUID) *dto.CarritoResponse
	Obtener(id uuid.UUID) (*dto.CarritoResponse, error)
	AgregarLinea(ctx context.Context, carritoID uuid.UUID, req dto.AgregarLineaRequest) (*dto.CarritoResponse, error)
	AjustarLinea(ctx context.Context, carritoID, productoID uuid.UUID, delta int) (*dto.CarritoResponse, error)
	QuitarLinea(carritoID, productoID uuid.UUID) (*dto.CarritoResponse, error)
	Suspender(carritoID uuid.UUID) (*dto.VentaEnEsperaResponse, error)
	Reanudar(esperaID uuid.UUID) (*dto.CarritoResponse, error)
	ListarEnEspera() []dto.VentaEnEsperaResponse

	// Snapshot and Descartar are the checkout contract: VentaService reads a
	// copy, commits it, then discards the cart on success.
	Snapshot(carritoID uuid.UUID) (*Carrito, error)
	Descartar(carritoID uuid.UUID)
}

type carritoService struct {
	mu          sync.Mutex
	carritos    map[uuid.UUID]*Carrito
	enEspera    map[uuid.UUID]*Carrito
	ordenEspera []uuid.UUID

	productoRepo repository.ProductoRepository
}

func NewCarritoService(productoRepo repository.ProductoRepository) CarritoService {
	return &carritoService{
		carritos:     make(map[uuid.UUID]*Carrito),
		enEspera:     make(map[uuid.UUID]*Carrito),
		productoRepo: productoRepo,
	}
}

func (s *carritoService) Crear(vendedorID uuid.UUID) *dto.CarritoResponse {
	c := &Carrito{ID: uuid.New(), VendedorID: vendedorID, CreadoEn: time.Now()}
	s.mu.Lock()
	s.carritos[c.ID] = c
	s.mu.Unlock()
	return carritoToResponse(c)
}

func (s *carritoService) Obtener(id uuid.UUID) (*dto.CarritoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carritos[id]
	if !ok {
		return nil, apperr.ErrNoEncontrado
	}
	return carritoToResponse(c), nil
}

// AgregarLinea validates weight capture and stock before touching the cart.
// Adding the same product again merges into the existing line.
func (s *carritoService) AgregarLinea(ctx context.Context, carritoID uuid.UUID, req dto.AgregarLineaRequest) (*dto.CarritoResponse, error) {
	pid, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apperr.Validacion("producto_id inválido")
	}
	p, err := s.productoRepo.FindByID(ctx, pid)
	if err != nil {
		return nil, apperr.ErrNoEncontrado
	}
	if !p.Activo {
		return nil, apperr.Validacion("el producto %s está inactivo", p.Nombre)
	}

	var cantidad decimal.Decimal
	if p.EsPesable() {
		if req.Peso == nil || req.Peso.LessThanOrEqual(decimal.Zero) {
			return nil, apperr.ErrSinPesoCapturado
		}
		cantidad = *req.Peso
	} else {
		cantidad = decimal.NewFromInt(1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carritos[carritoID]
	if !ok {
		return nil, apperr.ErrNoEncontrado
	}

	// Stock check counts what this cart already holds of the product.
	existente := decimal.Zero
	idx := -1
	for i := range c.Lineas {
		if c.Lineas[i].ProductoID == pid {
			existente = c.Lineas[i].Cantidad
			idx = i
			break
		}
	}
	if existente.Add(cantidad).GreaterThan(p.Stock) {
		return nil, apperr.ErrStockInsuficiente
	}

	if idx >= 0 {
		c.Lineas[idx].Cantidad = existente.Add(cantidad)
	} else {
		c.Lineas = append(c.Lineas, LineaCarrito{
			ProductoID:     pid,
			Nombre:         p.Nombre,
			Unidad:         p.Unidad,
			Cantidad:       cantidad,
			PrecioUnitario: p.Precio,
			CostoUnitario:  p.Costo,
		})
	}
	return carritoToResponse(c), nil
}

// AjustarLinea applies ±1 to a discrete line. Weight lines can't be nudged:
// remove and re-weigh instead. Reaching zero removes the line.
func (s *carritoService) AjustarLinea(ctx context.Context, carritoID, productoID uuid.UUID, delta int) (*dto.CarritoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carritos[carritoID]
	if !ok {
		return nil, apperr.ErrNoEncontrado
	}
	idx := -1
	for i := range c.Lineas {
		if c.Lineas[i].ProductoID == productoID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperr.ErrNoEncontrado
	}
	if c.Lineas[idx].Unidad == model.UnidadKilogramo {
		return nil, apperr.Validacion("las líneas por peso no se ajustan, vuelva a pesar")
	}

	nueva := c.Lineas[idx].Cantidad.Add(decimal.NewFromInt(int64(delta)))
	if nueva.LessThanOrEqual(decimal.Zero) {
		c.Lineas = append(c.Lineas[:idx], c.Lineas[idx+1:]...)
		return carritoToResponse(c), nil
	}
	if delta > 0 {
		p, err := s.productoRepo.FindByID(ctx, productoID)
		if err != nil {
			return nil, apperr.ErrNoEncontrado
		}
		if nueva.GreaterThan(p.Stock) {
			return nil, apperr.ErrStockInsuficiente
		}
	}
	c.Lineas[idx].Cantidad = nueva
	return carritoToResponse(c), nil
}

func (s *carritoService) QuitarLinea(carritoID, productoID uuid.UUID) (*dto.CarritoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carritos[carritoID]
	if !ok {
		return nil, apperr.ErrNoEncontrado
	}
	for i := range c.Lineas {
		if c.Lineas[i].ProductoID == productoID {
			c.Lineas = append(c.Lineas[:i], c.Lineas[i+1:]...)
			return carritoToResponse(c), nil
		}
	}
	return nil, apperr.ErrNoEncontrado
}

// Suspender parks the cart so the drawer can serve the next customer.
// Held sales live only in memory: a restart loses them, stock was never touched.
func (s *carritoService) Suspender(carritoID uuid.UUID) (*dto.VentaEnEsperaResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carritos[carritoID]
	if !ok {
		return nil, apperr.ErrNoEncontrado
	}
	if len(c.Lineas) == 0 {
		return nil, apperr.Validacion("no se puede suspender un carrito vacío")
	}
	delete(s.carritos, carritoID)
	s.enEspera[c.ID] = c
	s.ordenEspera = append(s.ordenEspera, c.ID)

	resp := esperaToResponse(c)
	return &resp, nil
}

// Reanudar restores a held sale verbatim and removes it from the held list.
// Stock is not re-validated here: checkout enforces it when committing.
func (s *carritoService) Reanudar(esperaID uuid.UUID) (*dto.CarritoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.enEspera[esperaID]
	if !ok {
		return nil, apperr.ErrNoEncontrado
	}
	delete(s.enEspera, esperaID)
	for i, id := range s.ordenEspera {
		if id == esperaID {
			s.ordenEspera = append(s.ordenEspera[:i], s.ordenEspera[i+1:]...)
			break
		}
	}
	s.carritos[c.ID] = c
	return carritoToResponse(c), nil
}

func (s *carritoService) ListarEnEspera() []dto.VentaEnEsperaResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := make([]dto.VentaEnEsperaResponse, 0, len(s.ordenEspera))
	for _, id := range s.ordenEspera {
		if c, ok := s.enEspera[id]; ok {
			resp = append(resp, esperaToResponse(c))
		}
	}
	return resp
}

func (s *carritoService) Snapshot(carritoID uuid.UUID) (*Carrito, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carritos[carritoID]
	if !ok {
		return nil, apperr.ErrNoEncontrado
	}
	copia := &Carrito{ID: c.ID, VendedorID: c.VendedorID, CreadoEn: c.CreadoEn}
	copia.Lineas = append([]LineaCarrito(nil), c.Lineas...)
	return copia, nil
}

func (s *carritoService) Descartar(carritoID uuid.UUID) {
	s.mu.Lock()
	delete(s.carritos, carritoID)
	s.mu.Unlock()
}

func carritoToResponse(c *Carrito) *dto.CarritoResponse {
	lineas := make([]dto.LineaCarritoResponse, len(c.Lineas))
	for i := range c.Lineas {
		l := &c.Lineas[i]
		lineas[i] = dto.LineaCarritoResponse{
			ProductoID:     l.ProductoID.String(),
			Nombre:         l.Nombre,
			Unidad:         l.Unidad,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Subtotal:       l.Subtotal(),
		}
	}
	return &dto.CarritoResponse{ID: c.ID.String(), Lineas: lineas, Total: c.Total()}
}

func esperaToResponse(c *Carrito) dto.VentaEnEsperaResponse {
	return dto.VentaEnEsperaResponse{
		ID:        c.ID.String(),
		Articulos: len(c.Lineas),
		Total:     c.Total(),
		CreadaEn:  fechaISO(c.CreadoEn),
	}
}
