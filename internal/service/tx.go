package service

import (
	"context"
	"errors"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// esConflictoUnico detects unique-key violations across the layers that can
// report them: the pg driver (23505), GORM's translated error, and the
// apperr sentinel used by in-memory fakes.
func esConflictoUnico(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, apperr.ErrConflicto)
}

// esNoEncontrado normalizes record-not-found across GORM and fakes.
func esNoEncontrado(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, apperr.ErrNoEncontrado)
}
