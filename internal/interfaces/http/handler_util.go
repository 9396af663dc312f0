package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain"
)

// writeError bildet Domänenfehler auf HTTP-Status und Fehlercode ab.
// Unbekannte Fehler werden geloggt und als 500 ohne Details beantwortet.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrPflichtfeldFehlt):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PFLICHTFELD_FEHLT", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrBarcodeExists),
		errors.Is(err, domain.ErrProjektNrExists),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidAPIKey):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("unbehandelter fehler")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "interner fehler"})
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// pageParams liest limit/offset mit den üblichen Grenzen (Default 20, Max 100).
func pageParams(c *fiber.Ctx) (limit, offset int) {
	p := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	p.DefaultPage()
	return p.Limit, p.Offset
}

// timeParam parst einen optionalen RFC3339-Query-Parameter.
func timeParam(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
