package handler

import (
	"errors"
	"net/http"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apierror"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login por PIN de cajon o nombre y password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperr.ErrValidacion) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		// One message for every credential failure: no user enumeration.
		c.JSON(http.StatusUnauthorized, apierror.New("Credenciales invalidas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
