package handler

import (
	"net/http"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// RegistrarCompra godoc
// @Summary Registra una compra a proveedor (actualiza stock, costo promedio y deuda)
// @Tags inventario
// @Accept json
// @Produce json
// @Param body body dto.RegistrarCompraRequest true "Compra"
// @Success 201 {object} dto.CompraResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/compras [post]
func (h *InventarioHandler) RegistrarCompra(c *gin.Context) {
	var req dto.RegistrarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarCompra(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InventarioHandler) ListarCompras(c *gin.Context) {
	p, ok := parsePeriodo(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListarCompras(c.Request.Context(), p.Desde, p.Hasta)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventarioHandler) RegistrarMerma(c *gin.Context) {
	var req dto.RegistrarMermaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarMerma(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InventarioHandler) ListarMermas(c *gin.Context) {
	p, ok := parsePeriodo(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListarMermas(c.Request.Context(), p.Desde, p.Hasta)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
