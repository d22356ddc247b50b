package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-restaurante/internal/application/auth"
	"github.com/jhoicas/inventario-restaurante/internal/application/dto"
)

// AuthHandler maneja login por código, login por email y registro.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log zerolog.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// LoginWithCode godoc
// @Summary      Iniciar sesión con código de acceso
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CodeLoginRequest  true  "codigo de 6 dígitos"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/code [post]
func (h *AuthHandler) LoginWithCode(c *fiber.Ctx) error {
	var in dto.CodeLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.LoginWithCode(c.Context(), in)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// SignIn godoc
// @Summary      Iniciar sesión con email y contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignInRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/sign-in [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SignIn(c.Context(), in)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(out)
}

// SignUp godoc
// @Summary      Registrar empleado
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignUpRequest  true  "email, password, nombre"
// @Success      201   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/sign-up [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignUpRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SignUp(c.Context(), in)
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetUserID(c))
	if err != nil {
		return writeDomainError(c, h.log, err)
	}
	return c.JSON(out)
}
