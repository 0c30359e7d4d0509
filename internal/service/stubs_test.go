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

// In-memory repository stubs. They return a nil *gorm.DB so runTx executes
// the transaction body directly.

// ── Productos ─────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) agregar(p model.Producto) *model.Producto {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = &p
	return &p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	for _, existente := range r.productos {
		if existente.Codigo == p.Codigo {
			return apperr.ErrConflicto
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.Codigo == codigo && p.Activo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoRepo) List(_ context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		if filter.BajoStock && !p.BajoStock() {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

func (r *stubProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = true
	return nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductoRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID, cantidad decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if p.Stock.LessThan(cantidad) {
		return apperr.ErrStockInsuficiente
	}
	p.Stock = p.Stock.Sub(cantidad)
	return nil
}

func (r *stubProductoRepo) ReponerStockTx(_ *gorm.DB, id uuid.UUID, cantidad decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Stock = p.Stock.Add(cantidad)
	return nil
}

func (r *stubProductoRepo) ActualizarCompraTx(_ *gorm.DB, id uuid.UUID, nuevoCosto, nuevoStock decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Costo = nuevoCosto
	p.Stock = nuevoStock
	return nil
}

func (r *stubProductoRepo) ActualizarPrecioTx(_ *gorm.DB, id uuid.UUID, nuevoPrecio decimal.Decimal) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Precio = nuevoPrecio
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Ventas ────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas   map[uuid.UUID]*model.Venta
	maxFolio int
	// onCreate, when set, intercepts Create to simulate folio races.
	onCreate func(v *model.Venta) error
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if r.onCreate != nil {
		if err := r.onCreate(v); err != nil {
			return err
		}
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	r.ventas[v.ID] = v
	if v.Folio > r.maxFolio {
		r.maxFolio = v.Folio
	}
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) MaxFolio(_ context.Context) (int, error) { return r.maxFolio, nil }

func (r *stubVentaRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	v, ok := r.ventas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Estado = estado
	return nil
}

func (r *stubVentaRepo) List(_ context.Context, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) ListEnRango(_ context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	out := make([]model.Venta, 0)
	for _, v := range r.ventas {
		if v.Estado != model.EstadoCompletada {
			continue
		}
		if v.CreatedAt.Before(desde) || v.CreatedAt.After(hasta) {
			continue
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── Caja ──────────────────────────────────────────────────────────────────────

type stubCajaRepo struct {
	fondos []*model.FondoCaja
}

func (r *stubCajaRepo) Create(_ context.Context, f *model.FondoCaja) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.fondos = append(r.fondos, f)
	return nil
}

func (r *stubCajaRepo) FindAbierta(_ context.Context) (*model.FondoCaja, error) {
	for _, f := range r.fondos {
		if f.Estado == model.CajaAbierta {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCajaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.FondoCaja, error) {
	for _, f := range r.fondos {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCajaRepo) Update(_ context.Context, f *model.FondoCaja) error {
	for i := range r.fondos {
		if r.fondos[i].ID == f.ID {
			r.fondos[i] = f
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCajaRepo) List(_ context.Context, _, _ int) ([]model.FondoCaja, int64, error) {
	out := make([]model.FondoCaja, 0, len(r.fondos))
	for _, f := range r.fondos {
		out = append(out, *f)
	}
	return out, int64(len(out)), nil
}

func (r *stubCajaRepo) ListEnRango(_ context.Context, desde, hasta time.Time) ([]model.FondoCaja, error) {
	out := make([]model.FondoCaja, 0)
	for _, f := range r.fondos {
		if f.AbiertaEn.Before(desde) || f.AbiertaEn.After(hasta) {
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

var _ repository.CajaRepository = (*stubCajaRepo)(nil)

// ── Proveedores ───────────────────────────────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (r *stubProveedorRepo) agregar(p model.Proveedor) *model.Proveedor {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proveedores[p.ID] = &p
	return &p
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) List(_ context.Context, incluirInactivos bool) ([]model.Proveedor, error) {
	out := make([]model.Proveedor, 0, len(r.proveedores))
	for _, p := range r.proveedores {
		if !incluirInactivos && !p.Activo {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.proveedores[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = false
	return nil
}

func (r *stubProveedorRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.proveedores[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Activo = true
	return nil
}

func (r *stubProveedorRepo) AjustarDeudaTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	p, ok := r.proveedores[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	nueva := p.Deuda.Add(delta)
	if nueva.IsNegative() {
		nueva = decimal.Zero
	}
	p.Deuda = nueva
	return nil
}

func (r *stubProveedorRepo) DB() *gorm.DB { return nil }

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// ── Compras / pagos / mermas / historial ──────────────────────────────────────

type stubCompraRepo struct {
	compras []*model.Compra
}

func (r *stubCompraRepo) CreateTx(_ *gorm.DB, c *model.Compra) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	r.compras = append(r.compras, c)
	return nil
}

func (r *stubCompraRepo) ListByProveedor(_ context.Context, proveedorID uuid.UUID, desde, hasta time.Time) ([]model.Compra, error) {
	out := make([]model.Compra, 0)
	for _, c := range r.compras {
		if c.ProveedorID != proveedorID || c.CreatedAt.Before(desde) || c.CreatedAt.After(hasta) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCompraRepo) ListEnRango(_ context.Context, desde, hasta time.Time) ([]model.Compra, error) {
	out := make([]model.Compra, 0)
	for _, c := range r.compras {
		if c.CreatedAt.Before(desde) || c.CreatedAt.After(hasta) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

var _ repository.CompraRepository = (*stubCompraRepo)(nil)

type stubPagoRepo struct {
	pagos []*model.PagoProveedor
}

func (r *stubPagoRepo) CreateTx(_ *gorm.DB, p *model.PagoProveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.pagos = append(r.pagos, p)
	return nil
}

func (r *stubPagoRepo) ListByProveedor(_ context.Context, proveedorID uuid.UUID, desde, hasta time.Time) ([]model.PagoProveedor, error) {
	out := make([]model.PagoProveedor, 0)
	for _, p := range r.pagos {
		if p.ProveedorID != proveedorID || p.CreatedAt.Before(desde) || p.CreatedAt.After(hasta) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPagoRepo) ListEnRango(_ context.Context, desde, hasta time.Time) ([]model.PagoProveedor, error) {
	out := make([]model.PagoProveedor, 0)
	for _, p := range r.pagos {
		if p.CreatedAt.Before(desde) || p.CreatedAt.After(hasta) {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

var _ repository.PagoRepository = (*stubPagoRepo)(nil)

type stubMermaRepo struct {
	mermas []*model.Merma
}

func (r *stubMermaRepo) CreateTx(_ *gorm.DB, m *model.Merma) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.mermas = append(r.mermas, m)
	return nil
}

func (r *stubMermaRepo) ListEnRango(_ context.Context, desde, hasta time.Time) ([]model.Merma, error) {
	out := make([]model.Merma, 0)
	for _, m := range r.mermas {
		if m.CreatedAt.Before(desde) || m.CreatedAt.After(hasta) {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

var _ repository.MermaRepository = (*stubMermaRepo)(nil)

type stubHistorialRepo struct {
	entradas []*model.HistorialPrecio
}

func (r *stubHistorialRepo) CreateTx(_ *gorm.DB, h *model.HistorialPrecio) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	r.entradas = append(r.entradas, h)
	return nil
}

func (r *stubHistorialRepo) ListByProducto(_ context.Context, productoID uuid.UUID) ([]model.HistorialPrecio, error) {
	out := make([]model.HistorialPrecio, 0)
	for _, h := range r.entradas {
		if h.ProductoID == productoID {
			out = append(out, *h)
		}
	}
	return out, nil
}

var _ repository.HistorialPrecioRepository = (*stubHistorialRepo)(nil)

// ── Usuarios ──────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	for _, existente := range r.usuarios {
		if existente.Nombre == u.Nombre {
			return apperr.ErrConflicto
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByNombre(_ context.Context, nombre string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Nombre == nombre {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) ListActivos(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = false
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = true
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)
