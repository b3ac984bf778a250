package routes

import (
	"asistencia-cosmos-backend/internal/handler"
	"asistencia-cosmos-backend/internal/middleware"
	"asistencia-cosmos-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	trabajadorRepo := repository.NewTrabajadorRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	limiter := middleware.NewLoginLimiter()
	hdl := handler.NewAuthHandler(trabajadorRepo, adminRepo, auditRepo, limiter)

	api := app.Group("/api/auth")

	api.Post("/login", hdl.LoginTrabajador)
	api.Post("/admin", hdl.LoginAdmin)
}
