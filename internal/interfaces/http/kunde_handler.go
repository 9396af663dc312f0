package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/usecase"
)

// KundeHandler bedient den Kundenstamm.
type KundeHandler struct {
	uc *usecase.KundeUseCase
}

func NewKundeHandler(uc *usecase.KundeUseCase) *KundeHandler {
	return &KundeHandler{uc: uc}
}

// Create legt einen Kunden an. Firma oder Nachname ist Pflicht.
func (h *KundeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateKundeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID liest einen Kunden.
func (h *KundeHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// List listet Kunden.
func (h *KundeHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	resp, err := h.uc.List(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Update aktualisiert einen Kunden.
func (h *KundeHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateKundeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Update(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Delete entfernt einen Kunden.
func (h *KundeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
