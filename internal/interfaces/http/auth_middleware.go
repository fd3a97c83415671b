package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/voxly/voxly-api/internal/application/access"
	"github.com/voxly/voxly-api/internal/application/dto"
	"github.com/voxly/voxly-api/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUserID   = "user_id"
	LocalEntityID = "entity_id"
	LocalRole     = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja {userID, entityID, role}
// en c.Locals. Cualquier fallo (token ausente, inválido o expirado) deja la
// petición sin identidad y corta con 401: nunca hay autenticación parcial.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		payload, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, payload.UserID)
		c.Locals(LocalEntityID, payload.EntityID)
		c.Locals(LocalRole, payload.Role)
		return c.Next()
	}
}

// RequireRole exige exactamente el rol indicado (sin jerarquía: admin no pasa
// un check de manager). Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current := GetRole(c)
		if current == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if !access.RequireRole(current, role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso restringido"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetEntityID devuelve el EntityID del contexto (después del middleware de auth).
func GetEntityID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalEntityID).(int64)
	return v
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRole).(string)
	return v
}
