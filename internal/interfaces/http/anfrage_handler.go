package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/usecase"
)

// AnfrageHandler bedient das öffentliche Anfrageformular und die interne
// Bearbeitung inklusive Übernahme in ein Projekt.
type AnfrageHandler struct {
	uc *usecase.AnfrageUseCase
}

func NewAnfrageHandler(uc *usecase.AnfrageUseCase) *AnfrageHandler {
	return &AnfrageHandler{uc: uc}
}

// Create godoc
// @Summary Anfrage einreichen (öffentlich, ohne Login)
// @Description Pflichtfelder des gewählten Kategoriepfads werden serverseitig geprüft.
// @Tags anfragen
// @Accept json
// @Produce json
// @Param body body dto.CreateAnfrageRequest true "Anfrage"
// @Success 201 {object} dto.AnfrageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/anfragen [post]
func (h *AnfrageHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAnfrageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID liest eine Anfrage.
func (h *AnfrageHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// List listet Anfragen, optional nach Status gefiltert.
func (h *AnfrageHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	resp, err := h.uc.List(c.Query("status"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus setzt den Bearbeitungsstatus einer Anfrage.
func (h *AnfrageHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateAnfrageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.UpdateStatus(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Convert godoc
// @Summary Anfrage in ein Projekt übernehmen
// @Description Kategoriepfad und Feldwerte wandern in das neue Projekt; die
// @Description Anfrage wird als angenommen markiert und verweist auf das Projekt.
// @Tags anfragen
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Anfrage-ID"
// @Param body body convertRequest true "Projektnummer"
// @Success 201 {object} dto.ProjektResponse
// @Failure 409 {object} dto.ErrorResponse "bereits übernommen oder Nummer vergeben"
// @Router /api/anfragen/{id}/convert [post]
func (h *AnfrageHandler) Convert(c *fiber.Ctx) error {
	var req convertRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Convert(c.Params("id"), req.ProjektNummer)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

type convertRequest struct {
	ProjektNummer string `json:"projekt_nummer"`
}

// Delete entfernt eine Anfrage.
func (h *AnfrageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
