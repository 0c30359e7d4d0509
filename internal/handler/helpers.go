package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apierror"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseUUID parses a path param as UUID, writing the 400 itself on failure.
func parseUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Identificador invalido"))
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps service errors to HTTP status codes. Anything unexpected
// collapses to a safe 500 without leaking internals.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New("Recurso no encontrado"))
	case errors.Is(err, apperr.ErrSinPesoCapturado):
		c.JSON(http.StatusBadRequest, apierror.New("El producto se vende por peso y no hay peso capturado"))
	case errors.Is(err, apperr.ErrValidacion):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, apperr.ErrStockInsuficiente):
		c.JSON(http.StatusConflict, apierror.New("Stock insuficiente"))
	case errors.Is(err, apperr.ErrCajaAbierta):
		c.JSON(http.StatusConflict, apierror.New("Ya existe una caja abierta"))
	case errors.Is(err, apperr.ErrCajaCerrada):
		c.JSON(http.StatusConflict, apierror.New("No hay caja abierta"))
	case errors.Is(err, apperr.ErrVentaCancelada):
		c.JSON(http.StatusConflict, apierror.New("La venta ya fue cancelada"))
	case errors.Is(err, apperr.ErrConflicto):
		c.JSON(http.StatusConflict, apierror.New("Conflicto con un registro existente"))
	case errors.Is(err, infra.ErrCircuitOpen):
		c.JSON(http.StatusBadGateway, apierror.New("La bascula no responde"))
	case errors.Is(err, apperr.ErrAlmacen):
		c.JSON(http.StatusBadGateway, apierror.New("Error de almacenamiento"))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
