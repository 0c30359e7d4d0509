package service

import (
	"context"
	"testing"

	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/apperr"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/config"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/dto"
	"github.com/Alann-89/Sistema-de-Gestion-de-Fruteria/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuth(t *testing.T) (AuthService, *stubUsuarioRepo) {
	t.Helper()
	repo := newStubUsuarioRepo()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1, JWTRefreshHours: 24}
	return NewAuthService(repo, cfg), repo
}

func agregarUsuarioConPIN(t *testing.T, repo *stubUsuarioRepo, nombre, pin, rol string, activo bool) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{Nombre: nombre, Rol: rol, PINHash: string(hash), Activo: activo}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLoginConPIN(t *testing.T) {
	svc, repo := setupAuth(t)
	agregarUsuarioConPIN(t, repo, "Caja 1", "1234", model.RolVendedor, true)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{PIN: "1234"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.RolVendedor, resp.User.Rol)
}

func TestLoginPINIncorrecto(t *testing.T) {
	svc, repo := setupAuth(t)
	agregarUsuarioConPIN(t, repo, "Caja 1", "1234", model.RolVendedor, true)

	_, err := svc.Login(context.Background(), dto.LoginRequest{PIN: "9999"})
	assert.Error(t, err)
}

func TestLoginUsuarioInactivo(t *testing.T) {
	svc, repo := setupAuth(t)
	agregarUsuarioConPIN(t, repo, "Ex empleado", "1234", model.RolVendedor, false)

	_, err := svc.Login(context.Background(), dto.LoginRequest{PIN: "1234"})
	assert.Error(t, err)
}

func TestLoginConNombreYPassword(t *testing.T) {
	svc, repo := setupAuth(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &model.Usuario{
		Nombre: "Dueño", Rol: model.RolDueno, PasswordHash: string(hash), Activo: true,
	}))

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Nombre: "Dueño", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, model.RolDueno, resp.User.Rol)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Nombre: "Dueño", Password: "incorrecto"})
	assert.Error(t, err)
}

func TestLoginSinCredenciales(t *testing.T) {
	svc, _ := setupAuth(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, apperr.ErrValidacion)
}

func TestRefresh(t *testing.T) {
	svc, repo := setupAuth(t)
	agregarUsuarioConPIN(t, repo, "Caja 1", "1234", model.RolVendedor, true)

	login, err := svc.Login(context.Background(), dto.LoginRequest{PIN: "1234"})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshTokenInvalido(t *testing.T) {
	svc, _ := setupAuth(t)

	_, err := svc.Refresh(context.Background(), "no-es-un-token")
	assert.Error(t, err)
}

func TestCrearUsuarioSinCredenciales(t *testing.T) {
	svc, _ := setupAuth(t)

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Nuevo", Rol: model.RolVendedor,
	})
	assert.ErrorIs(t, err, apperr.ErrValidacion)
}

func TestCrearUsuarioNombreDuplicado(t *testing.T) {
	svc, repo := setupAuth(t)
	agregarUsuarioConPIN(t, repo, "Caja 1", "1234", model.RolVendedor, true)

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Caja 1", Rol: model.RolVendedor, PIN: "5678",
	})
	assert.ErrorIs(t, err, apperr.ErrConflicto)
}
