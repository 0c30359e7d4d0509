package handler

import (
	"net/http"
	"time"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apierror"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/service"

	"github.com/gin-gonic/gin"
)

// parsePeriodo resolves the reporting window from query params:
// periodo=hoy|semana|mes (default hoy), or periodo=rango with desde/hasta
// as YYYY-MM-DD. Writes the 400 itself on bad input.
func parsePeriodo(c *gin.Context) (service.Periodo, bool) {
	ahora := time.Now()
	switch c.DefaultQuery("periodo", "hoy") {
	case "hoy":
		return service.PeriodoHoy(ahora), true
	case "semana":
		return service.PeriodoSemana(ahora), true
	case "mes":
		return service.PeriodoMes(ahora), true
	case "rango":
		desde, err := time.ParseInLocation("2006-01-02", c.Query("desde"), ahora.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Parametro desde invalido (YYYY-MM-DD)"))
			return service.Periodo{}, false
		}
		hasta, err := time.ParseInLocation("2006-01-02", c.Query("hasta"), ahora.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Parametro hasta invalido (YYYY-MM-DD)"))
			return service.Periodo{}, false
		}
		if hasta.Before(desde) {
			c.JSON(http.StatusBadRequest, apierror.New("El rango esta invertido"))
			return service.Periodo{}, false
		}
		return service.PeriodoRango(desde, hasta), true
	default:
		c.JSON(http.StatusBadRequest, apierror.New("Parametro periodo invalido"))
		return service.Periodo{}, false
	}
}

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Resumen godoc
// @Summary Resumen del periodo: ventas, costos, ganancia bruta y caja teorica
// @Tags reportes
// @Produce json
// @Param periodo query string false "hoy | semana | mes | rango"
// @Success 200 {object} dto.ResumenResponse
// @Router /v1/reportes/resumen [get]
func (h *ReportesHandler) Resumen(c *gin.Context) {
	p, ok := parsePeriodo(c)
	if !ok {
		return
	}
	resp, err := h.svc.Resumen(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) Movimientos(c *gin.Context) {
	p, ok := parsePeriodo(c)
	if !ok {
		return
	}
	resp, err := h.svc.Movimientos(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) ExportarCSV(c *gin.Context) {
	p, ok := parsePeriodo(c)
	if !ok {
		return
	}
	csv, err := h.svc.ExportarCSV(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="movimientos.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csv)
}

func (h *ReportesHandler) Serie(c *gin.Context) {
	p, ok := parsePeriodo(c)
	if !ok {
		return
	}
	resp, err := h.svc.Serie(c.Request.Context(), p, c.DefaultQuery("periodo", "hoy"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
