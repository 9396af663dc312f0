package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/lager"
)

// WareHandler bedient den Warenkatalog. Bestandsänderungen laufen nicht über
// diese Endpunkte, sondern über die Lagerbewegungen.
type WareHandler struct {
	uc *lager.WareUseCase
}

func NewWareHandler(uc *lager.WareUseCase) *WareHandler {
	return &WareHandler{uc: uc}
}

// Create godoc
// @Summary Ware anlegen
// @Tags waren
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateWareRequest true "Ware"
// @Success 201 {object} dto.WareResponse
// @Failure 409 {object} dto.ErrorResponse "Barcode bereits vergeben"
// @Router /api/waren [post]
func (h *WareHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateWareRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary Ware lesen
// @Tags waren
// @Produce json
// @Security BearerAuth
// @Param id path string true "Waren-ID"
// @Success 200 {object} dto.WareResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/waren/{id} [get]
func (h *WareHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// GetByBarcode godoc
// @Summary Ware per Barcode nachschlagen (Terminal-Scan)
// @Tags waren
// @Produce json
// @Security BearerAuth
// @Param code path string true "Barcode"
// @Success 200 {object} dto.WareResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/waren/barcode/{code} [get]
func (h *WareHandler) GetByBarcode(c *fiber.Ctx) error {
	resp, err := h.uc.GetByBarcode(c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary Waren listen
// @Tags waren
// @Produce json
// @Security BearerAuth
// @Param kategorie_id query string false "nur Waren dieser Kategorie"
// @Param limit query int false "max. Anzahl (Default 20, Max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.WareListResponse
// @Router /api/waren [get]
func (h *WareHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	resp, err := h.uc.List(c.Query("kategorie_id"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Search godoc
// @Summary Waren suchen (Name, Barcode, Lagerort; diakritikfest)
// @Tags waren
// @Produce json
// @Security BearerAuth
// @Param q query string true "Suchbegriff"
// @Success 200 {array} dto.WareResponse
// @Router /api/waren/suche [get]
func (h *WareHandler) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return badRequest(c, "INVALID_QUERY", "parameter q erforderlich")
	}
	limit, _ := pageParams(c)
	resp, err := h.uc.Search(q, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary Ware aktualisieren (ohne Bestand/Status)
// @Tags waren
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Waren-ID"
// @Param body body dto.UpdateWareRequest true "Änderungen"
// @Success 200 {object} dto.WareResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/waren/{id} [put]
func (h *WareHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateWareRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Update(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary Ware löschen
// @Tags waren
// @Security BearerAuth
// @Param id path string true "Waren-ID"
// @Success 204
// @Router /api/waren/{id} [delete]
func (h *WareHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
