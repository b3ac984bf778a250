package handler

import (
	"asistencia-cosmos-backend/internal/marcaje"
	"asistencia-cosmos-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	registroRepo repository.RegistroRepository
	pendingRepo  repository.PendingSyncRepository
	auditRepo    repository.AuditRepository
}

func NewDashboardHandler(registroRepo repository.RegistroRepository, pendingRepo repository.PendingSyncRepository, auditRepo repository.AuditRepository) *DashboardHandler {
	return &DashboardHandler{
		registroRepo: registroRepo,
		pendingRepo:  pendingRepo,
		auditRepo:    auditRepo,
	}
}

// Resumen es el panel principal del admin: contadores de hoy, del mes en
// curso, totales históricos y el estado de la cola de sincronización.
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	registros, err := h.registroRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer los registros"})
	}

	hoy := marcaje.CurrentDate()
	pendientes, _ := h.pendingRepo.Count()

	return c.JSON(fiber.Map{
		"fecha":        hoy,
		"hoy":          marcaje.CalcTodayStats(registros, hoy),
		"mes":          marcaje.CalcMonthlyStats(registros, hoy[:7]),
		"estadisticas": marcaje.CalcRecordStatistics(registros, hoy),
		"sync": fiber.Map{
			"pendientes": pendientes,
			"alDia":      pendientes == 0,
		},
	})
}

// Auditoria lista las últimas acciones registradas (logins, ediciones,
// importaciones). limit acota el resultado, por defecto 100.
func (h *DashboardHandler) Auditoria(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)

	logs, err := h.auditRepo.Recent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer la auditoría"})
	}
	return c.JSON(fiber.Map{"data": logs, "total": len(logs)})
}
