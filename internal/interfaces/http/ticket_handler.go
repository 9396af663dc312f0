package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/usecase"
)

// TicketHandler bedient Support-Tickets. Einreichen geht auch anonym über die
// öffentliche Route; dann ist eine E-Mail-Adresse Pflicht.
type TicketHandler struct {
	uc *usecase.TicketUseCase
}

func NewTicketHandler(uc *usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// Create godoc
// @Summary Support-Ticket einreichen
// @Tags support
// @Accept json
// @Produce json
// @Param body body dto.CreateTicketRequest true "Ticket"
// @Success 201 {object} dto.TicketResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/support [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	// GetUserID liefert bei anonymem Zugriff einen Leerstring.
	resp, err := h.uc.Create(GetUserID(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID liest ein Ticket.
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// List listet Tickets, optional nach Status gefiltert.
func (h *TicketHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	resp, err := h.uc.List(c.Query("status"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus setzt den Bearbeitungsstatus eines Tickets.
func (h *TicketHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.UpdateStatus(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Delete entfernt ein Ticket.
func (h *TicketHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
