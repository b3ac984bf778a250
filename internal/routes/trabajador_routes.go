package routes

import (
	"asistencia-cosmos-backend/internal/handler"
	"asistencia-cosmos-backend/internal/middleware"
	"asistencia-cosmos-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTrabajadorRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewTrabajadorRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	hdl := handler.NewTrabajadorHandler(repo, auditRepo)

	// Gestión de planilla: solo admin
	api := app.Group("/api/trabajadores", middleware.Auth, middleware.AdminOnly)

	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Put("/:id/pin", hdl.UpdatePIN)
	api.Delete("/:id", hdl.Delete)
}
