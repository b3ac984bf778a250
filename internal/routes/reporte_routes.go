package routes

import (
	"asistencia-cosmos-backend/internal/handler"
	"asistencia-cosmos-backend/internal/mailer"
	"asistencia-cosmos-backend/internal/middleware"
	"asistencia-cosmos-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReporteRoutes(app *fiber.App, db *gorm.DB) {
	registroRepo := repository.NewRegistroRepository(db)
	trabajadorRepo := repository.NewTrabajadorRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	hdl := handler.NewReporteHandler(registroRepo, trabajadorRepo, auditRepo, mailer.NewFromEnv())

	api := app.Group("/api/reportes", middleware.Auth, middleware.AdminOnly)

	api.Get("/diario", hdl.Diario)
	api.Get("/sunafil", hdl.Sunafil)
	api.Get("/export/json", hdl.ExportJSON)
	api.Get("/export/csv", hdl.ExportCSV)
	api.Post("/import", hdl.Import)
	api.Post("/sunafil/email", hdl.EmailSunafil)
}
