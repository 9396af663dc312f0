package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/dto"
	appkassa "github.com/ep-bau/ep-system/internal/application/kassa"
)

// KassaHandler bedient den öffentlichen POS-Webhook und die Terminalverwaltung.
type KassaHandler struct {
	webhook *appkassa.WebhookUseCase
	verwalt *appkassa.KassaUseCase
}

func NewKassaHandler(webhook *appkassa.WebhookUseCase, verwalt *appkassa.KassaUseCase) *KassaHandler {
	return &KassaHandler{webhook: webhook, verwalt: verwalt}
}

// Webhook godoc
// @Summary Verkauf vom Kassensystem verbuchen
// @Description Authentifizierung über den Header x-api-key, nicht über JWT.
// @Tags kassa
// @Accept json
// @Produce json
// @Param x-api-key header string true "API-Schlüssel des Terminals"
// @Param body body dto.KassaWebhookRequest true "Verkauf"
// @Success 200 {object} dto.KassaWebhookResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/kassa/webhook [post]
func (h *KassaHandler) Webhook(c *fiber.Ctx) error {
	var req dto.KassaWebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.webhook.ProcessSale(c.Context(), c.Get("x-api-key"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary Kassenterminal registrieren
// @Description Der API-Schlüssel wird nur in dieser Antwort mitgeliefert.
// @Tags kassa
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateKassaRequest true "Terminal"
// @Success 201 {object} dto.KassaResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/kassen [post]
func (h *KassaHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateKassaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.verwalt.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID liest ein Terminal (ohne API-Schlüssel).
func (h *KassaHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.verwalt.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// List listet alle Terminals.
func (h *KassaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	resp, err := h.verwalt.List(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// RotateKey godoc
// @Summary API-Schlüssel eines Terminals erneuern
// @Description Der alte Schlüssel ist danach ungültig; der neue erscheint nur in dieser Antwort.
// @Tags kassa
// @Produce json
// @Security BearerAuth
// @Param id path string true "Kassa-ID"
// @Success 200 {object} dto.KassaResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/kassen/{id}/rotate [post]
func (h *KassaHandler) RotateKey(c *fiber.Ctx) error {
	resp, err := h.verwalt.RotateKey(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Sales listet die Verkäufe eines Terminals, optional mit Zeitraum.
func (h *KassaHandler) Sales(c *fiber.Ctx) error {
	von, err := timeParam(c, "von")
	if err != nil {
		return badRequest(c, "INVALID_QUERY", "von: RFC3339 erwartet")
	}
	bis, err := timeParam(c, "bis")
	if err != nil {
		return badRequest(c, "INVALID_QUERY", "bis: RFC3339 erwartet")
	}
	limit, offset := pageParams(c)
	resp, err := h.verwalt.Sales(c.Params("id"), von, bis, limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Delete entfernt ein Terminal.
func (h *KassaHandler) Delete(c *fiber.Ctx) error {
	if err := h.verwalt.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
