package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/reports"
	"github.com/ep-bau/ep-system/internal/application/usecase"
)

// ProjektHandler bedient Projekte samt Etappen, Dokumenten und dem
// PDF-Projektbericht.
type ProjektHandler struct {
	uc      *usecase.ProjektUseCase
	bericht *reports.ProjektberichtUseCase
}

func NewProjektHandler(uc *usecase.ProjektUseCase, bericht *reports.ProjektberichtUseCase) *ProjektHandler {
	return &ProjektHandler{uc: uc, bericht: bericht}
}

// Create godoc
// @Summary Projekt anlegen
// @Tags projekte
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateProjektRequest true "Projekt"
// @Success 201 {object} dto.ProjektResponse
// @Failure 409 {object} dto.ErrorResponse "Projektnummer bereits vergeben"
// @Router /api/projekte [post]
func (h *ProjektHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProjektRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID liest ein Projekt.
func (h *ProjektHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// List listet Projekte, optional nach Status gefiltert.
func (h *ProjektHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	resp, err := h.uc.List(c.Query("status"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary Projekt aktualisieren (Projektnummer ist unveränderlich)
// @Tags projekte
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Projekt-ID"
// @Param body body dto.UpdateProjektRequest true "Änderungen"
// @Success 200 {object} dto.ProjektResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projekte/{id} [put]
func (h *ProjektHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProjektRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Update(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Delete entfernt ein Projekt.
func (h *ProjektHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateEtappe legt eine Etappe im Projekt an.
func (h *ProjektHandler) CreateEtappe(c *fiber.Ctx) error {
	var req dto.CreateEtappeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.CreateEtappe(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Etappen listet die Etappen eines Projekts in Sortierreihenfolge.
func (h *ProjektHandler) Etappen(c *fiber.Ctx) error {
	resp, err := h.uc.Etappen(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// UpdateEtappe aktualisiert eine Etappe des Projekts.
func (h *ProjektHandler) UpdateEtappe(c *fiber.Ctx) error {
	var req dto.UpdateEtappeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.UpdateEtappe(c.Params("id"), c.Params("etappeId"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// DeleteEtappe entfernt eine Etappe.
func (h *ProjektHandler) DeleteEtappe(c *fiber.Ctx) error {
	if err := h.uc.DeleteEtappe(c.Params("etappeId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddDokument hängt einen Dokumentverweis an das Projekt.
func (h *ProjektHandler) AddDokument(c *fiber.Ctx) error {
	var req dto.CreateDokumentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.AddDokument(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Dokumente listet die Dokumentverweise eines Projekts.
func (h *ProjektHandler) Dokumente(c *fiber.Ctx) error {
	resp, err := h.uc.Dokumente(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// DeleteDokument entfernt einen Dokumentverweis.
func (h *ProjektHandler) DeleteDokument(c *fiber.Ctx) error {
	if err := h.uc.DeleteDokument(c.Params("dokumentId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Bericht godoc
// @Summary Projektbericht als PDF herunterladen
// @Tags projekte
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Projekt-ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/projekte/{id}/bericht [post]
func (h *ProjektHandler) Bericht(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.bericht.Download(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Type("pdf")
	return c.Send(pdfBytes)
}
