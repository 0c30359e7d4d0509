package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apierror"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/service"

	"github.com/gin-gonic/gin"
)

// maxRespaldoBytes caps the restore upload at 32 MiB.
const maxRespaldoBytes = 32 << 20

type RespaldoHandler struct{ svc service.RespaldoService }

func NewRespaldoHandler(svc service.RespaldoService) *RespaldoHandler {
	return &RespaldoHandler{svc: svc}
}

// Exportar godoc
// @Summary Descarga un respaldo JSON completo de la tienda
// @Tags respaldo
// @Produce json
// @Success 200 {string} string "archivo JSON"
// @Router /v1/respaldo/exportar [get]
func (h *RespaldoHandler) Exportar(c *gin.Context) {
	data, err := h.svc.Exportar(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	nombre := "respaldo_" + time.Now().Format("2006-01-02") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

// Restaurar godoc
// @Summary Restaura las secciones presentes en el respaldo subido
// @Tags respaldo
// @Accept json
// @Produce json
// @Success 204
// @Failure 400 {object} apierror.APIError
// @Router /v1/respaldo/restaurar [post]
func (h *RespaldoHandler) Restaurar(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRespaldoBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el respaldo"))
		return
	}
	if err := h.svc.Restaurar(c.Request.Context(), raw); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
