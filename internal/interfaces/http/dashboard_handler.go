package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/analytics"
)

// DashboardHandler liefert die Kennzahlen der Startseite.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview godoc
// @Summary Dashboard-Kennzahlen
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	resp, err := h.uc.GetOverview(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}
