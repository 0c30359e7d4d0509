package service

import (
	"context"
	"encoding/json"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"

	"gorm.io/gorm"
)

type RespaldoService interface {
	// Exportar serializes the whole store as one JSON document.
	Exportar(ctx context.Context) ([]byte, error)
	// Restaurar replaces the sections present in the uploaded document and
	// leaves absent sections untouched. All-or-nothing.
	Restaurar(ctx context.Context, raw []byte) error
}

type respaldoService struct {
	db *gorm.DB
}

func NewRespaldoService(db *gorm.DB) RespaldoService {
	return &respaldoService{db: db}
}

func (s *respaldoService) Exportar(ctx context.Context) ([]byte, error) {
	var (
		users        []model.Usuario
		products     []model.Producto
		suppliers    []model.Proveedor
		sales        []model.Venta
		purchases    []model.Compra
		payments     []model.PagoProveedor
		wasteLogs    []model.Merma
		cashFunds    []model.FondoCaja
		priceHistory []model.HistorialPrecio
	)

	db := s.db.WithContext(ctx)
	lecturas := []error{
		db.Find(&users).Error,
		db.Find(&products).Error,
		db.Find(&suppliers).Error,
		db.Preload("Items").Find(&sales).Error,
		db.Preload("Items").Find(&purchases).Error,
		db.Find(&payments).Error,
		db.Find(&wasteLogs).Error,
		db.Find(&cashFunds).Error,
		db.Find(&priceHistory).Error,
	}
	for _, err := range lecturas {
		if err != nil {
			return nil, apperr.Almacen("respaldo: exportar", err)
		}
	}

	respaldo := dto.Respaldo{
		Users:        &users,
		Products:     &products,
		Suppliers:    &suppliers,
		Sales:        &sales,
		Purchases:    &purchases,
		Payments:     &payments,
		WasteLogs:    &wasteLogs,
		CashFunds:    &cashFunds,
		PriceHistory: &priceHistory,
	}
	return json.MarshalIndent(respaldo, "", "  ")
}

func (s *respaldoService) Restaurar(ctx context.Context, raw []byte) error {
	var respaldo dto.Respaldo
	if err := json.Unmarshal(raw, &respaldo); err != nil {
		return apperr.Validacion("el respaldo no es un JSON válido: %v", err)
	}
	if !tieneSecciones(&respaldo) {
		return apperr.Validacion("el respaldo no contiene ninguna sección reconocida")
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Children go before parents on delete; the insert order is reversed.
		if respaldo.Sales != nil {
			if err := tx.Exec("DELETE FROM venta_items").Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM ventas").Error; err != nil {
				return err
			}
		}
		if respaldo.Purchases != nil {
			if err := tx.Exec("DELETE FROM compra_items").Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM compras").Error; err != nil {
				return err
			}
		}
		if respaldo.Payments != nil {
			if err := tx.Exec("DELETE FROM pagos_proveedor").Error; err != nil {
				return err
			}
		}
		if respaldo.WasteLogs != nil {
			if err := tx.Exec("DELETE FROM mermas").Error; err != nil {
				return err
			}
		}
		if respaldo.PriceHistory != nil {
			if err := tx.Exec("DELETE FROM historial_precios").Error; err != nil {
				return err
			}
		}
		if respaldo.CashFunds != nil {
			if err := tx.Exec("DELETE FROM fondos_caja").Error; err != nil {
				return err
			}
		}
		if respaldo.Products != nil {
			if err := tx.Exec("DELETE FROM productos").Error; err != nil {
				return err
			}
		}
		if respaldo.Suppliers != nil {
			if err := tx.Exec("DELETE FROM proveedores").Error; err != nil {
				return err
			}
		}
		if respaldo.Users != nil {
			if err := tx.Exec("DELETE FROM usuarios").Error; err != nil {
				return err
			}
		}

		if respaldo.Users != nil && len(*respaldo.Users) > 0 {
			if err := tx.Create(respaldo.Users).Error; err != nil {
				return err
			}
		}
		if respaldo.Suppliers != nil && len(*respaldo.Suppliers) > 0 {
			if err := tx.Create(respaldo.Suppliers).Error; err != nil {
				return err
			}
		}
		if respaldo.Products != nil && len(*respaldo.Products) > 0 {
			if err := tx.Create(respaldo.Products).Error; err != nil {
				return err
			}
		}
		if respaldo.Sales != nil && len(*respaldo.Sales) > 0 {
			if err := tx.Create(respaldo.Sales).Error; err != nil {
				return err
			}
		}
		if respaldo.Purchases != nil && len(*respaldo.Purchases) > 0 {
			if err := tx.Create(respaldo.Purchases).Error; err != nil {
				return err
			}
		}
		if respaldo.Payments != nil && len(*respaldo.Payments) > 0 {
			if err := tx.Create(respaldo.Payments).Error; err != nil {
				return err
			}
		}
		if respaldo.WasteLogs != nil && len(*respaldo.WasteLogs) > 0 {
			if err := tx.Create(respaldo.WasteLogs).Error; err != nil {
				return err
			}
		}
		if respaldo.CashFunds != nil && len(*respaldo.CashFunds) > 0 {
			if err := tx.Create(respaldo.CashFunds).Error; err != nil {
				return err
			}
		}
		if respaldo.PriceHistory != nil && len(*respaldo.PriceHistory) > 0 {
			if err := tx.Create(respaldo.PriceHistory).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return apperr.Almacen("respaldo: restaurar", txErr)
	}
	return nil
}

// tieneSecciones reports whether at least one known key was present.
func tieneSecciones(r *dto.Respaldo) bool {
	return r.Users != nil || r.Products != nil || r.Suppliers != nil ||
		r.Sales != nil || r.Purchases != nil || r.Payments != nil ||
		r.WasteLogs != nil || r.CashFunds != nil || r.PriceHistory != nil
}
