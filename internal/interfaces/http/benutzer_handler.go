package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/usecase"
)

// BenutzerHandler bedient die Benutzerverwaltung (nur Admin).
type BenutzerHandler struct {
	uc *usecase.BenutzerUseCase
}

func NewBenutzerHandler(uc *usecase.BenutzerUseCase) *BenutzerHandler {
	return &BenutzerHandler{uc: uc}
}

// Create godoc
// @Summary Benutzer anlegen
// @Tags benutzer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateBenutzerRequest true "Benutzer"
// @Success 201 {object} dto.BenutzerResponse
// @Failure 409 {object} dto.ErrorResponse "E-Mail bereits registriert"
// @Router /api/benutzer [post]
func (h *BenutzerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBenutzerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID liest einen Benutzer.
func (h *BenutzerHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// List listet Benutzer, optional nach Position gefiltert.
func (h *BenutzerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	resp, err := h.uc.List(c.Query("position"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Update aktualisiert einen Benutzer, inkl. Position und Vorgesetztem.
func (h *BenutzerHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateBenutzerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Update(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Delete entfernt einen Benutzer.
func (h *BenutzerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
