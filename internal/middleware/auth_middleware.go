package middleware

import (
	"strings"

	"asistencia-cosmos-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTSecret lee el secreto de firma. Debe ser el mismo que usa el handler
// de login al emitir tokens.
func JWTSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "cosmos-dev-secret"))
}

// Auth valida el token Bearer y deja los claims de la sesión en el contexto.
func Auth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token no encontrado"})
	}

	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Sesión inválida o expirada"})
	}

	claims := token.Claims.(jwt.MapClaims)
	c.Locals("user_id", claims["user_id"])
	c.Locals("tipo", claims["tipo"]) // worker | admin
	c.Locals("nombre", claims["nombre"])
	c.Locals("rol", claims["rol"])

	return c.Next()
}

// AdminOnly exige una sesión de tipo admin. Se encadena después de Auth.
func AdminOnly(c *fiber.Ctx) error {
	tipo, _ := c.Locals("tipo").(string)
	if tipo != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Requiere sesión de administrador"})
	}
	return c.Next()
}
