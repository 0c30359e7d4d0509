package worker

// alerta_worker.go
// Processes low-stock alert jobs from QueueAlerta and mails the owner.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/infra"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AlertaJobPayload is the job envelope sent to QueueAlerta.
type AlertaJobPayload struct {
	ProductoID  string          `json:"producto_id"`
	Nombre      string          `json:"nombre"`
	Unidad      string          `json:"unidad"`
	Stock       decimal.Decimal `json:"stock"`
	StockMinimo decimal.Decimal `json:"stock_minimo"`
}

type AlertaWorker struct {
	mailer       *infra.Mailer
	destinatario string
}

func NewAlertaWorker(mailer *infra.Mailer, destinatario string) *AlertaWorker {
	return &AlertaWorker{mailer: mailer, destinatario: destinatario}
}

func (w *AlertaWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload AlertaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alerta_worker: invalid payload")
		return nil
	}
	if w.destinatario == "" {
		log.Warn().Msg("alerta_worker: no recipient configured, skipping")
		return nil
	}

	subject := fmt.Sprintf("Stock bajo: %s", payload.Nombre)
	body := fmt.Sprintf(
		"El producto %s está por debajo de su mínimo.\n\nStock actual: %s %s\nStock mínimo: %s %s\n\nConsidere reabastecer en la próxima visita del proveedor.",
		payload.Nombre,
		payload.Stock.StringFixed(3), payload.Unidad,
		payload.StockMinimo.StringFixed(3), payload.Unidad,
	)

	if err := w.mailer.Enviar(w.destinatario, subject, body, ""); err != nil {
		return fmt.Errorf("alerta_worker: send email: %w", err)
	}
	log.Info().Str("producto", payload.Nombre).Str("to", w.destinatario).Msg("alerta_worker: low-stock alert sent")
	return nil
}
