package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/usecase"
)

// SubunternehmerHandler bedient den Nachunternehmerstamm.
type SubunternehmerHandler struct {
	uc *usecase.SubunternehmerUseCase
}

func NewSubunternehmerHandler(uc *usecase.SubunternehmerUseCase) *SubunternehmerHandler {
	return &SubunternehmerHandler{uc: uc}
}

// Create godoc
// @Summary Subunternehmer anlegen
// @Tags subunternehmer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateSubunternehmerRequest true "Subunternehmer"
// @Success 201 {object} dto.SubunternehmerResponse
// @Failure 400 {object} dto.ErrorResponse "Firma fehlt"
// @Router /api/subunternehmer [post]
func (h *SubunternehmerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSubunternehmerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID liest einen Subunternehmer.
func (h *SubunternehmerHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// List listet Subunternehmer, optional nach Status gefiltert.
func (h *SubunternehmerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	resp, err := h.uc.List(c.Query("status"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Update aktualisiert einen Subunternehmer.
func (h *SubunternehmerHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSubunternehmerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Update(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Delete entfernt einen Subunternehmer.
func (h *SubunternehmerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
