package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/application/usecase"
)

// KategorieHandler bedient den Kategoriebaum. Lesen ist öffentlich, damit das
// Anfrageformular den Baum und die Zusatzfelder ohne Login laden kann.
type KategorieHandler struct {
	uc *usecase.KategorieUseCase
}

func NewKategorieHandler(uc *usecase.KategorieUseCase) *KategorieHandler {
	return &KategorieHandler{uc: uc}
}

// Tree godoc
// @Summary Kategorien einer Ebene listen
// @Tags kategorien
// @Produce json
// @Param parent_id query string false "leer = Wurzelebene"
// @Success 200 {array} dto.KategorieResponse
// @Router /api/kategorien [get]
func (h *KategorieHandler) Tree(c *fiber.Ctx) error {
	resp, err := h.uc.Tree(c.Query("parent_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Felder godoc
// @Summary Formularfelder für einen Kategoriepfad
// @Description Liefert die Zusatzfelder der letzten beiden Pfadsegmente in Pfadreihenfolge.
// @Tags kategorien
// @Produce json
// @Param pfad query string true "Kategorie-IDs von der Wurzel, kommagetrennt"
// @Success 200 {object} dto.FelderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/kategorien/felder [get]
func (h *KategorieHandler) Felder(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("pfad"))
	if raw == "" {
		return badRequest(c, "INVALID_QUERY", "parameter pfad erforderlich")
	}
	var pfadIDs []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			pfadIDs = append(pfadIDs, id)
		}
	}
	resp, err := h.uc.Felder(pfadIDs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary Kategorie anlegen
// @Tags kategorien
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateKategorieRequest true "Kategorie"
// @Success 201 {object} dto.KategorieResponse
// @Failure 404 {object} dto.ErrorResponse "Parent nicht gefunden"
// @Router /api/kategorien [post]
func (h *KategorieHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateKategorieRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Create(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update aktualisiert eine Kategorie.
func (h *KategorieHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateKategorieRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "ungültiger request body")
	}
	resp, err := h.uc.Update(c.Params("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Delete entfernt eine Kategorie ohne Unterkategorien.
func (h *KategorieHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
