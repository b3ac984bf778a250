package routes

import (
	"asistencia-cosmos-backend/internal/handler"
	"asistencia-cosmos-backend/internal/middleware"
	"asistencia-cosmos-backend/internal/repository"
	"asistencia-cosmos-backend/internal/sheets"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRegistroRoutes(app *fiber.App, db *gorm.DB, sheetsClient *sheets.Client) {
	registroRepo := repository.NewRegistroRepository(db)
	trabajadorRepo := repository.NewTrabajadorRepository(db)
	pendingRepo := repository.NewPendingSyncRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	hdl := handler.NewRegistroHandler(registroRepo, trabajadorRepo, pendingRepo, auditRepo, sheetsClient)

	api := app.Group("/api/registros", middleware.Auth)

	// Marcación del trabajador autenticado
	api.Get("/estado", hdl.Estado)
	api.Get("/mios", hdl.MisRegistros)
	api.Post("/", hdl.Marcar)

	// Historial y correcciones: solo admin
	api.Get("/", middleware.AdminOnly, hdl.List)
	api.Post("/manual", middleware.AdminOnly, hdl.CrearManual)
	api.Put("/:id", middleware.AdminOnly, hdl.Editar)
	api.Delete("/:id", middleware.AdminOnly, hdl.Eliminar)
}
