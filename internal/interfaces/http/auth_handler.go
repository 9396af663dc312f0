package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/auth"
	"github.com/ep-bau/ep-system/internal/application/dto"
)

// AuthHandler bedient Login, Terminal-Login und die eigene Profilabfrage.
type AuthHandler struct {
	uc *auth.UseCase
}

func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary E-Mail/Passwort-Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Zugangsdaten"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Login(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// TerminalLogin godoc
// @Summary Login am Lager-Terminal per QR-Code
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.TerminalLoginRequest true "QR-Code"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/terminal/login [post]
func (h *AuthHandler) TerminalLogin(c *fiber.Ctx) error {
	var req dto.TerminalLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.TerminalLogin(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Me godoc
// @Summary Profil des angemeldeten Benutzers
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BenutzerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	resp, err := h.uc.Me(GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}
