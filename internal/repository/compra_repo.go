package repository

import (
	"context"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompraRepository interface {
	// CreateTx runs inside the intake transaction; items are created through
	// the association.
	CreateTx(tx *gorm.DB, c *model.Compra) error
	ListByProveedor(ctx context.Context, proveedorID uuid.UUID, desde, hasta time.Time) ([]model.Compra, error)
	ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.Compra, error)
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) CreateTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Create(c).Error
}

func (r *compraRepo) ListByProveedor(ctx context.Context, proveedorID uuid.UUID, desde, hasta time.Time) ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.WithContext(ctx).
		Where("proveedor_id = ? AND created_at BETWEEN ? AND ?", proveedorID, desde, hasta).
		Preload("Items").
		Order("created_at DESC").Find(&compras).Error
	return compras, err
}

func (r *compraRepo) ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", desde, hasta).
		Preload("Items").Preload("Proveedor").
		Order("created_at DESC").Find(&compras).Error
	return compras, err
}
