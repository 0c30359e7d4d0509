package handler

import (
	"net/http"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/infra"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/middleware"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POSHandler covers the checkout lane: carts, scale reads, held sales and
// the charge itself.
type POSHandler struct {
	carritos service.CarritoService
	ventas   service.VentaService
	bascula  *infra.BasculaClient
}

func NewPOSHandler(carritos service.CarritoService, ventas service.VentaService, bascula *infra.BasculaClient) *POSHandler {
	return &POSHandler{carritos: carritos, ventas: ventas, bascula: bascula}
}

func vendedorID(c *gin.Context) uuid.UUID {
	if claims := middleware.GetClaims(c); claims != nil {
		if uid, err := uuid.Parse(claims.UserID); err == nil {
			return uid
		}
	}
	return uuid.Nil
}

func (h *POSHandler) CrearCarrito(c *gin.Context) {
	c.JSON(http.StatusCreated, h.carritos.Crear(vendedorID(c)))
}

func (h *POSHandler) ObtenerCarrito(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.carritos.Obtener(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarLinea godoc
// @Summary Agrega un producto al carrito (peso obligatorio para productos en kg)
// @Tags pos
// @Accept json
// @Produce json
// @Param id path string true "ID del carrito"
// @Param body body dto.AgregarLineaRequest true "Linea"
// @Success 200 {object} dto.CarritoResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/pos/carritos/{id}/lineas [post]
func (h *POSHandler) AgregarLinea(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarLineaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.carritos.AgregarLinea(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *POSHandler) AjustarLinea(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	productoID, ok := parseUUID(c, "productoId")
	if !ok {
		return
	}
	var req dto.AjustarLineaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.carritos.AjustarLinea(c.Request.Context(), id, productoID, req.Delta)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *POSHandler) QuitarLinea(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	productoID, ok := parseUUID(c, "productoId")
	if !ok {
		return
	}
	resp, err := h.carritos.QuitarLinea(id, productoID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LeerPeso proxies the scale bridge so the frontend never talks to it directly.
func (h *POSHandler) LeerPeso(c *gin.Context) {
	peso, err := h.bascula.LeerPeso(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PesoResponse{Peso: peso})
}

// Cobrar godoc
// @Summary Cobra el carrito y emite el ticket
// @Tags pos
// @Accept json
// @Produce json
// @Param id path string true "ID del carrito"
// @Param body body dto.CobrarRequest true "Pago"
// @Success 201 {object} dto.VentaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/pos/carritos/{id}/cobrar [post]
func (h *POSHandler) Cobrar(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	var req dto.CobrarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.ventas.Cobrar(c.Request.Context(), vendedorID(c), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *POSHandler) SiguienteFolio(c *gin.Context) {
	folio, err := h.ventas.SiguienteFolio(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FolioResponse{Folio: folio})
}

func (h *POSHandler) Suspender(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.carritos.Suspender(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *POSHandler) Reanudar(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.carritos.Reanudar(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *POSHandler) ListarEnEspera(c *gin.Context) {
	c.JSON(http.StatusOK, h.carritos.ListarEnEspera())
}
