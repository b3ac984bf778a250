package routes

import (
	"asistencia-cosmos-backend/internal/handler"
	"asistencia-cosmos-backend/internal/middleware"
	"asistencia-cosmos-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	registroRepo := repository.NewRegistroRepository(db)
	pendingRepo := repository.NewPendingSyncRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	hdl := handler.NewDashboardHandler(registroRepo, pendingRepo, auditRepo)

	// Sin middleware a nivel de grupo: /api es prefijo compartido con otras rutas
	api := app.Group("/api")

	api.Get("/dashboard", middleware.Auth, middleware.AdminOnly, hdl.Resumen)
	api.Get("/auditoria", middleware.Auth, middleware.AdminOnly, hdl.Auditoria)
}
