package handler

import (
	"context"
	"log"
	"time"

	"asistencia-cosmos-backend/internal/model"
	"asistencia-cosmos-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// espejo es el contrato del cliente de Google Sheets que consumen los
// handlers. *sheets.Client lo implementa.
type espejo interface {
	Configured() bool
	SyncRecord(ctx context.Context, r model.Registro) error
	Health() map[string]interface{}
}

type SyncHandler struct {
	registroRepo repository.RegistroRepository
	pendingRepo  repository.PendingSyncRepository
	sheets       espejo
}

func NewSyncHandler(registroRepo repository.RegistroRepository, pendingRepo repository.PendingSyncRepository, sheetsClient espejo) *SyncHandler {
	return &SyncHandler{
		registroRepo: registroRepo,
		pendingRepo:  pendingRepo,
		sheets:       sheetsClient,
	}
}

// Sync reenvía un registro puntual al espejo. El contrato con el frontend es
// fijo: 200 {ok:true} o 500 {ok:false, error:"SYNC_FAILED"}.
func (h *SyncHandler) Sync(c *fiber.Ctx) error {
	var registro model.Registro
	if err := c.BodyParser(&registro); err != nil || registro.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "SYNC_FAILED"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 25*time.Second)
	defer cancel()

	if err := h.sheets.SyncRecord(ctx, registro); err != nil {
		log.Printf("sync de %s fallido: %v", registro.ID, err)
		h.pendingRepo.Enqueue(registro.ID, err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false, "error": "SYNC_FAILED"})
	}

	h.pendingRepo.Remove(registro.ID)
	return c.JSON(fiber.Map{"ok": true})
}

// SyncAll reenvía un lote completo, registro por registro. El cuerpo es el
// arreglo JSON plano que manda el frontend. Un fallo no detiene el lote: el
// registro fallido se encola y se sigue con el resto.
func (h *SyncHandler) SyncAll(c *fiber.Ctx) error {
	var registros []model.Registro
	if err := c.BodyParser(&registros); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "SYNC_ALL_FAILED"})
	}

	enviados := 0
	fallidos := 0
	for _, registro := range registros {
		ctx, cancel := context.WithTimeout(c.Context(), 25*time.Second)
		err := h.sheets.SyncRecord(ctx, registro)
		cancel()
		if err != nil {
			log.Printf("sync-all: %s falló, encolado: %v", registro.ID, err)
			h.pendingRepo.Enqueue(registro.ID, err.Error())
			fallidos++
			continue
		}
		h.pendingRepo.Remove(registro.ID)
		enviados++
	}

	return c.JSON(fiber.Map{"ok": true, "enviados": enviados, "fallidos": fallidos})
}

// RetryPending drena la cola de registros que fallaron al marcar. Cada envío
// exitoso sale de la cola; los fallos acumulan intento y se quedan.
func (h *SyncHandler) RetryPending(c *fiber.Ctx) error {
	pendientes, err := h.pendingRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer la cola"})
	}

	enviados := 0
	fallidos := 0
	for _, p := range pendientes {
		registro, err := h.registroRepo.GetByID(p.RegistroID)
		if err != nil {
			// El registro ya no existe; la entrada en cola sobra.
			h.pendingRepo.Remove(p.RegistroID)
			continue
		}

		ctx, cancel := context.WithTimeout(c.Context(), 25*time.Second)
		err = h.sheets.SyncRecord(ctx, *registro)
		cancel()
		if err != nil {
			h.pendingRepo.Enqueue(p.RegistroID, err.Error())
			fallidos++
			continue
		}
		h.pendingRepo.Remove(p.RegistroID)
		enviados++
	}

	return c.JSON(fiber.Map{
		"message":  "Reintento completado",
		"enviados": enviados,
		"fallidos": fallidos,
	})
}

// HealthGoogle expone el diagnóstico de credenciales de la cuenta de
// servicio, sin tocar la API de Sheets.
func (h *SyncHandler) HealthGoogle(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"configured": h.sheets.Configured(),
		"env":        h.sheets.Health(),
	})
}
