package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/application/dto"
	"github.com/ep-bau/ep-system/internal/domain/authz"
	"github.com/ep-bau/ep-system/pkg/jwt"
)

// Locals-Keys für die authentifizierten Claims.
const (
	LocalUserID   = "user_id"
	LocalName     = "name"
	LocalPosition = "position"
)

// AuthMiddleware validiert das Bearer-Token und legt UserID, Name und Position
// in c.Locals ab. Das Token ist die einzige Sitzungsgrenze; weitere Prüfungen
// gegen die DB finden hier nicht statt.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization-Header erforderlich"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "leeres Token"})
		}
		userID, name, position, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Token ungültig oder abgelaufen"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalName, name)
		c.Locals(LocalPosition, position)
		return c.Next()
	}
}

// RequireRole lässt nur die angegebenen Positionen durch.
func RequireRole(positions ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		position := GetPosition(c)
		if position == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_POSITION", Message: "Token ohne Position"})
		}
		for _, p := range positions {
			if p == position {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "keine Berechtigung für diese Aktion"})
	}
}

// RequirePermission prüft die Capability-Tabelle (authz.Can) für Aktion und
// Ressource. Die Policy ist zentral; Handler führen keine eigenen Listen.
func RequirePermission(action, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		position := GetPosition(c)
		if position == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_POSITION", Message: "Token ohne Position"})
		}
		if !authz.Can(position, action, resource) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "keine Berechtigung für diese Aktion"})
		}
		return c.Next()
	}
}

// GetUserID liefert die UserID aus dem Kontext (nach AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetName liefert den Anzeigenamen aus dem Kontext.
func GetName(c *fiber.Ctx) string {
	v := c.Locals(LocalName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPosition liefert die Position aus dem Kontext.
func GetPosition(c *fiber.Ctx) string {
	v := c.Locals(LocalPosition)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
