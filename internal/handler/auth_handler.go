package handler

import (
	"time"

	"asistencia-cosmos-backend/internal/middleware"
	"asistencia-cosmos-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Duración de la sesión: 8 horas desde la emisión.
const SesionTTL = 8 * time.Hour

// Mensaje genérico: no se distingue entre identidad desconocida y PIN
// incorrecto para no permitir enumeración.
const mensajeCredenciales = "Credenciales incorrectas"

type AuthHandler struct {
	trabajadorRepo repository.TrabajadorRepository
	adminRepo      repository.AdminRepository
	auditRepo      repository.AuditRepository
	limiter        *middleware.LoginLimiter
}

func NewAuthHandler(trabajadorRepo repository.TrabajadorRepository, adminRepo repository.AdminRepository, auditRepo repository.AuditRepository, limiter *middleware.LoginLimiter) *AuthHandler {
	return &AuthHandler{
		trabajadorRepo: trabajadorRepo,
		adminRepo:      adminRepo,
		auditRepo:      auditRepo,
		limiter:        limiter,
	}
}

type LoginTrabajadorRequest struct {
	TrabajadorID string `json:"trabajador_id"`
	PIN          string `json:"pin"`
}

func (h *AuthHandler) LoginTrabajador(c *fiber.Ctx) error {
	var req LoginTrabajadorRequest
	if err := c.BodyParser(&req); err != nil || req.TrabajadorID == "" || req.PIN == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos de login incompletos"})
	}

	if ok, restante := h.limiter.Allow(req.TrabajadorID); !ok {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":              "Demasiados intentos, espera antes de reintentar",
			"segundos_restantes": restante,
		})
	}

	trabajador, err := h.trabajadorRepo.GetByID(req.TrabajadorID)
	if err != nil {
		h.limiter.Fail(req.TrabajadorID)
		h.auditRepo.Log(req.TrabajadorID, "login_trabajador", "identidad desconocida", false)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": mensajeCredenciales})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(trabajador.PINHash), []byte(req.PIN)); err != nil {
		h.limiter.Fail(req.TrabajadorID)
		h.auditRepo.Log(req.TrabajadorID, "login_trabajador", "pin incorrecto", false)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": mensajeCredenciales})
	}

	h.limiter.Success(req.TrabajadorID)
	h.auditRepo.Log(trabajador.ID, "login_trabajador", "login correcto", true)

	token, expira, err := generarToken(trabajador.ID, "worker", trabajador.Nombre, "")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo crear la sesión"})
	}

	return c.JSON(fiber.Map{
		"message": "Login correcto",
		"token":   token,
		"session": fiber.Map{
			"userId":    trabajador.ID,
			"userType":  "worker",
			"userName":  trabajador.Nombre,
			"loginTime": time.Now().Format(time.RFC3339),
			"expiresAt": expira.Format(time.RFC3339),
		},
	})
}

type LoginAdminRequest struct {
	PIN string `json:"pin"`
}

// LoginAdmin prueba el PIN contra cada administrador, igual para admin y
// contador: un solo esquema de credenciales, hash al escribir y bcrypt al
// verificar.
func (h *AuthHandler) LoginAdmin(c *fiber.Ctx) error {
	var req LoginAdminRequest
	if err := c.BodyParser(&req); err != nil || req.PIN == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "PIN requerido"})
	}

	if ok, restante := h.limiter.Allow("admin:" + c.IP()); !ok {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":              "Demasiados intentos, espera antes de reintentar",
			"segundos_restantes": restante,
		})
	}

	admins, err := h.adminRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo validar el PIN"})
	}

	for _, admin := range admins {
		if bcrypt.CompareHashAndPassword([]byte(admin.PINHash), []byte(req.PIN)) == nil {
			h.limiter.Success("admin:" + c.IP())
			h.auditRepo.Log(admin.ID, "login_admin", "login correcto", true)

			token, expira, err := generarToken(admin.ID, "admin", admin.Nombre, admin.Rol)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo crear la sesión"})
			}
			return c.JSON(fiber.Map{
				"message": "Login correcto",
				"token":   token,
				"session": fiber.Map{
					"userId":    admin.ID,
					"userType":  "admin",
					"userName":  admin.Nombre,
					"role":      admin.Rol,
					"loginTime": time.Now().Format(time.RFC3339),
					"expiresAt": expira.Format(time.RFC3339),
				},
			})
		}
	}

	h.limiter.Fail("admin:" + c.IP())
	h.auditRepo.Log("", "login_admin", "pin incorrecto", false)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": mensajeCredenciales})
}

func generarToken(userID, tipo, nombre, rol string) (string, time.Time, error) {
	expira := time.Now().Add(SesionTTL)
	claims := jwt.MapClaims{
		"user_id": userID,
		"tipo":    tipo,
		"nombre":  nombre,
		"rol":     rol,
		"exp":     expira.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.JWTSecret())
	return token, expira, err
}
