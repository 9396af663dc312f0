package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/lager"
)

// LagerHandler bedient Lagerbewegungen und das Warenprotokoll.
type LagerHandler struct {
	record *lager.RecordMovementUseCase
	waren  *lager.WareUseCase
}

func NewLagerHandler(record *lager.RecordMovementUseCase, waren *lager.WareUseCase) *LagerHandler {
	return &LagerHandler{record: record, waren: waren}
}

// RecordMovement godoc
// @Summary Lagerbewegung buchen (Entnahme, Rückgabe, Eingang, Korrektur, Inventur)
// @Description Der angemeldete Benutzer wird aus dem Token übernommen. Verkäufe
// @Description laufen ausschließlich über den Kassa-Webhook und werden hier abgelehnt.
// @Tags lager
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.RecordMovementRequest true "Bewegung"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/lager/bewegungen [post]
func (h *LagerHandler) RecordMovement(c *fiber.Ctx) error {
	var req dto.RecordMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.record.Record(c.Context(), lager.MovementInput{
		BenutzerID: GetUserID(c),
		WareID:     req.WareID,
		Aktion:     req.Aktion,
		Menge:      req.Menge,
		ProjektID:  req.ProjektID,
		Notiz:      req.Notiz,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Protokoll godoc
// @Summary Warenprotokoll lesen, neueste zuerst
// @Tags lager
// @Produce json
// @Security BearerAuth
// @Param ware_id query string false "nur Einträge dieser Ware"
// @Param benutzer_id query string false "nur Einträge dieses Benutzers"
// @Param von query string false "RFC3339, Untergrenze"
// @Param bis query string false "RFC3339, Obergrenze"
// @Param limit query int false "max. Anzahl (Default 20, Max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.WarenLogResponse
// @Router /api/lager/protokoll [get]
func (h *LagerHandler) Protokoll(c *fiber.Ctx) error {
	von, err := timeParam(c, "von")
	if err != nil {
		return badRequest(c, "INVALID_QUERY", "von: RFC3339 erwartet")
	}
	bis, err := timeParam(c, "bis")
	if err != nil {
		return badRequest(c, "INVALID_QUERY", "bis: RFC3339 erwartet")
	}
	limit, offset := pageParams(c)
	resp, err := h.waren.Protokoll(c.Query("ware_id"), c.Query("benutzer_id"), von, bis, limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}
