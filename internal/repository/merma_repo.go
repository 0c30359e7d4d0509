package repository

import (
	"context"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"

	"gorm.io/gorm"
)

type MermaRepository interface {
	// CreateTx runs inside the waste transaction, alongside the stock decrement.
	CreateTx(tx *gorm.DB, m *model.Merma) error
	ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.Merma, error)
}

type mermaRepo struct{ db *gorm.DB }

func NewMermaRepository(db *gorm.DB) MermaRepository { return &mermaRepo{db: db} }

func (r *mermaRepo) CreateTx(tx *gorm.DB, m *model.Merma) error {
	return tx.Create(m).Error
}

func (r *mermaRepo) ListEnRango(ctx context.Context, desde, hasta time.Time) ([]model.Merma, error) {
	var mermas []model.Merma
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", desde, hasta).
		Order("created_at DESC").Find(&mermas).Error
	return mermas, err
}
