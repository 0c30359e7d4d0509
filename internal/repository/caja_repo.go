package repository

import (
	"context"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CajaRepository interface {
	Create(ctx context.Context, f *model.FondoCaja) error
	// FindAbierta returns the single open fund, or gorm.ErrRecordNotFound.
	FindAbierta(ctx context.Context) (*model.FondoCaja, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FondoCaja, error)
	Update(ctx context.Context, f *model.FondoCaja) error
	List(ctx context.Context, page, limit int) ([]model.FondoCaja, int64, error)
	// ListEnRango returns funds opened within [desde, hasta].
	ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.FondoCaja, error)
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) Create(ctx context.Context, f *model.FondoCaja) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *cajaRepo) FindAbierta(ctx context.Context) (*model.FondoCaja, error) {
	var f model.FondoCaja
	err := r.db.WithContext(ctx).Where("estado = ?", model.CajaAbierta).First(&f).Error
	return &f, err
}

func (r *cajaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FondoCaja, error) {
	var f model.FondoCaja
	err := r.db.WithContext(ctx).First(&f, id).Error
	return &f, err
}

func (r *cajaRepo) Update(ctx context.Context, f *model.FondoCaja) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *cajaRepo) List(ctx context.Context, page, limit int) ([]model.FondoCaja, int64, error) {
	var fondos []model.FondoCaja
	var total int64

	q := r.db.WithContext(ctx).Model(&model.FondoCaja{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("abierta_en DESC").Limit(limit).Offset((page - 1) * limit).Find(&fondos).Error
	return fondos, total, err
}

func (r *cajaRepo) ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.FondoCaja, error) {
	var fondos []model.FondoCaja
	err := r.db.WithContext(ctx).
		Where("abierta_en BETWEEN ? AND ?", desde, hasta).
		Order("abierta_en ASC").Find(&fondos).Error
	return fondos, err
}
