package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/usecase"
)

// AufgabeHandler bedient Aufgaben. Sichtbarkeit folgt der Vorgesetztenkette:
// sichtbar sind eigene Aufgaben und die von direkten wie indirekten Untergebenen.
type AufgabeHandler struct {
	uc *usecase.AufgabeUseCase
}

func NewAufgabeHandler(uc *usecase.AufgabeUseCase) *AufgabeHandler {
	return &AufgabeHandler{uc: uc}
}

// Create legt eine Aufgabe an.
func (h *AufgabeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAufgabeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID liest eine Aufgabe, sofern sie für den Aufrufer sichtbar ist.
func (h *AufgabeHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// List listet die für den Aufrufer sichtbaren Aufgaben.
func (h *AufgabeHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	resp, err := h.uc.List(GetUserID(c), c.Query("status"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Update aktualisiert eine sichtbare Aufgabe.
func (h *AufgabeHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateAufgabeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Update(GetUserID(c), c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Delete entfernt eine Aufgabe.
func (h *AufgabeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
