package repository

import (
	"context"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PagoRepository interface {
	// CreateTx runs inside the abono transaction, alongside the debt update.
	CreateTx(tx *gorm.DB, p *model.PagoProveedor) error
	ListByProveedor(ctx context.Context, proveedorID uuid.UUID, desde, hasta time.Time) ([]model.PagoProveedor, error)
	ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.PagoProveedor, error)
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) CreateTx(tx *gorm.DB, p *model.PagoProveedor) error {
	return tx.Create(p).Error
}

func (r *pagoRepo) ListByProveedor(ctx context.Context, proveedorID uuid.UUID, desde, hasta time.Time) ([]model.PagoProveedor, error) {
	var pagos []model.PagoProveedor
	err := r.db.WithContext(ctx).
		Where("proveedor_id = ? AND created_at BETWEEN ? AND ?", proveedorID, desde, hasta).
		Order("created_at DESC").Find(&pagos).Error
	return pagos, err
}

func (r *pagoRepo) ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.PagoProveedor, error) {
	var pagos []model.PagoProveedor
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", desde, hasta).
		Preload("Proveedor").
		Order("created_at DESC").Find(&pagos).Error
	return pagos, err
}
