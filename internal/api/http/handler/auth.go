package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/internal/service/auth"
	pasetotoken "github.com/saludmaterna/maternidad_backend/pkg/paseto"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrCredencialesInvalidas):
		return unauthorized(c)
	case errors.Is(err, auth.ErrCuentaInactiva):
		return forbidden(c)
	case errors.Is(err, auth.ErrCuentaBloqueada):
		return tooManyRequests(c, err.Error())
	case errors.Is(err, auth.ErrSessionNotFound), errors.Is(err, auth.ErrInvalidToken):
		return unauthorized(c)
	case errors.Is(err, auth.ErrPasswordActualIncorrecta):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrPasswordMuyCorta):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Rut      string `json:"rut"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}
	if body.Password == "" || (body.Username == "" && body.Rut == "") {
		return badRequest(c, "username o rut y password son requeridos")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Username: body.Username,
		Rut:      body.Rut,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "refresh_token es requerido")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"message": "sesión cerrada"})
}

// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PasswordActual string `json:"password_actual"`
		PasswordNueva  string `json:"password_nueva"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "cuerpo de la solicitud inválido")
	}

	if err := h.svc.ChangePassword(c.Context(), claims.UserID, auth.ChangePasswordRequest{
		PasswordActual: body.PasswordActual,
		PasswordNueva:  body.PasswordNueva,
	}); err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"message": "contraseña actualizada"})
}
