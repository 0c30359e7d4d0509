package worker

// ticket_worker.go
// Processes receipt jobs from QueueTicket: fetches the completed sale and
// renders the thermal-size PDF ticket to disk. Printing happens outside the
// backend; the POS frontend fetches the file.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/infra"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TicketJobPayload is the job envelope sent to QueueTicket.
type TicketJobPayload struct {
	VentaID string `json:"venta_id"`
}

type TicketWorker struct {
	ventaRepo   repository.VentaRepository
	storagePath string
}

func NewTicketWorker(ventaRepo repository.VentaRepository, storagePath string) *TicketWorker {
	return &TicketWorker{ventaRepo: ventaRepo, storagePath: storagePath}
}

// Process renders the PDF ticket for one sale. A malformed payload is dropped
// (retrying can't fix it); a storage or DB error is returned so the pool
// retries the job.
func (w *TicketWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload TicketJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("ticket_worker: invalid payload")
		return nil
	}
	ventaID, err := uuid.Parse(payload.VentaID)
	if err != nil {
		log.Error().Str("venta_id", payload.VentaID).Msg("ticket_worker: invalid venta_id")
		return nil
	}

	venta, err := w.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		return fmt.Errorf("ticket_worker: venta %s: %w", payload.VentaID, err)
	}

	path, err := infra.GenerateTicketPDF(venta, w.storagePath)
	if err != nil {
		return fmt.Errorf("ticket_worker: generate pdf: %w", err)
	}

	log.Info().Int("folio", venta.Folio).Str("pdf", path).Msg("ticket_worker: ticket generated")
	return nil
}
