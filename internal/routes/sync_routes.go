package routes

import (
	"asistencia-cosmos-backend/internal/handler"
	"asistencia-cosmos-backend/internal/middleware"
	"asistencia-cosmos-backend/internal/repository"
	"asistencia-cosmos-backend/internal/sheets"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSyncRoutes(app *fiber.App, db *gorm.DB, sheetsClient *sheets.Client) {
	registroRepo := repository.NewRegistroRepository(db)
	pendingRepo := repository.NewPendingSyncRepository(db)
	hdl := handler.NewSyncHandler(registroRepo, pendingRepo, sheetsClient)

	// Diagnóstico de credenciales, sin datos sensibles
	app.Get("/api/health/google", hdl.HealthGoogle)

	// Sin middleware a nivel de grupo: /api es prefijo compartido con otras rutas
	api := app.Group("/api")

	api.Post("/sync", middleware.Auth, hdl.Sync)
	api.Post("/sync-all", middleware.Auth, hdl.SyncAll)
	api.Post("/sync/retry", middleware.Auth, hdl.RetryPending)
}
