package handler

import (
	"context"
	"log"
	"strings"
	"time"

	"asistencia-cosmos-backend/internal/marcaje"
	"asistencia-cosmos-backend/internal/model"
	"asistencia-cosmos-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type RegistroHandler struct {
	repo           repository.RegistroRepository
	trabajadorRepo repository.TrabajadorRepository
	pendingRepo    repository.PendingSyncRepository
	auditRepo      repository.AuditRepository
	sheets         espejo
	validate       *validator.Validate
}

func NewRegistroHandler(repo repository.RegistroRepository, trabajadorRepo repository.TrabajadorRepository, pendingRepo repository.PendingSyncRepository, auditRepo repository.AuditRepository, sheetsClient espejo) *RegistroHandler {
	return &RegistroHandler{
		repo:           repo,
		trabajadorRepo: trabajadorRepo,
		pendingRepo:    pendingRepo,
		auditRepo:      auditRepo,
		sheets:         sheetsClient,
		validate:       validator.New(),
	}
}

// Estado devuelve el último evento de hoy y qué botones van habilitados.
func (h *RegistroHandler) Estado(c *fiber.Ctx) error {
	trabajadorID, _ := c.Locals("user_id").(string)
	hoy := marcaje.CurrentDate()

	ultimo, _ := h.repo.GetUltimoDelDia(trabajadorID, hoy)

	ultimoEvento := ""
	if ultimo != nil {
		ultimoEvento = ultimo.Evento
	}

	return c.JSON(fiber.Map{
		"fecha":           hoy,
		"ultimo_evento":   ultimoEvento,
		"eventos_validos": marcaje.NextValidEvents(ultimoEvento),
		"botones":         marcaje.ButtonStates(ultimo, hoy),
	})
}

type MarcarRequest struct {
	Evento string `json:"evento"`
}

// Marcar registra un evento del trabajador autenticado. El evento se valida
// contra la máquina de estados (solo el último evento del día, no el
// historial completo). Tras guardar localmente se intenta el espejo en
// Sheets; si falla, el registro entra a la cola de pendientes y la marcación
// igual se confirma al trabajador.
func (h *RegistroHandler) Marcar(c *fiber.Ctx) error {
	trabajadorID, _ := c.Locals("user_id").(string)

	var req MarcarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}
	if !model.EsEventoValido(req.Evento) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tipo de evento desconocido"})
	}

	trabajador, err := h.trabajadorRepo.GetByID(trabajadorID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trabajador no encontrado"})
	}

	hoy := marcaje.CurrentDate()
	ultimo, _ := h.repo.GetUltimoDelDia(trabajadorID, hoy)
	ultimoEvento := ""
	if ultimo != nil {
		ultimoEvento = ultimo.Evento
	}

	if !marcaje.EventoPermitido(ultimoEvento, req.Evento) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":           "Evento no permitido en este momento",
			"eventos_validos": marcaje.NextValidEvents(ultimoEvento),
		})
	}

	ts := marcaje.CurrentTimestamp()
	registro := model.Registro{
		ID:                  marcaje.GenerateID(),
		TrabajadorID:        trabajador.ID,
		TrabajadorNombre:    trabajador.Nombre,
		TrabajadorDocumento: trabajador.Documento,
		Evento:              req.Evento,
		Timestamp:           ts,
		Fecha:               hoy,
		Ubicacion:           marcaje.UbicacionPrincipal,
	}

	if err := h.repo.Create(registro); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo guardar la marcación"})
	}

	sync := h.sincronizar(registro)

	return c.JSON(fiber.Map{
		"message": "Marcación registrada",
		"data":    registro,
		"sync":    sync,
	})
}

// sincronizar intenta el espejo y encola en fallo. Devuelve "ok", "pending"
// o "disabled" para informar al cliente sin bloquearlo.
func (h *RegistroHandler) sincronizar(registro model.Registro) string {
	if h.sheets == nil || !h.sheets.Configured() {
		return "disabled"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.sheets.SyncRecord(ctx, registro); err != nil {
		log.Printf("sync fallido para %s, encolado: %v", registro.ID, err)
		if qerr := h.pendingRepo.Enqueue(registro.ID, err.Error()); qerr != nil {
			log.Printf("no se pudo encolar %s: %v", registro.ID, qerr)
		}
		return "pending"
	}
	return "ok"
}

// MisRegistros lista los eventos recientes del trabajador autenticado.
func (h *RegistroHandler) MisRegistros(c *fiber.Ctx) error {
	trabajadorID, _ := c.Locals("user_id").(string)
	limit := c.QueryInt("limit", 5)

	registros, err := h.repo.GetByTrabajador(trabajadorID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer el historial"})
	}
	return c.JSON(fiber.Map{"data": registros})
}

// List es la vista de historial del admin, con filtros combinables.
func (h *RegistroHandler) List(c *fiber.Ctx) error {
	fecha := c.Query("fecha")
	desde := c.Query("desde")
	hasta := c.Query("hasta")
	trabajadorID := c.Query("trabajador_id")
	evento := c.Query("evento")

	var registros []model.Registro
	var err error

	switch {
	case fecha != "":
		registros, err = h.repo.GetByFecha(fecha)
	case desde != "" && hasta != "":
		registros, err = h.repo.GetByRango(desde, hasta)
	default:
		registros, err = h.repo.GetAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer el historial"})
	}

	registros = filtrarRegistros(registros, trabajadorID, evento)
	return c.JSON(fiber.Map{"data": registros, "total": len(registros)})
}

func filtrarRegistros(registros []model.Registro, trabajadorID, evento string) []model.Registro {
	if trabajadorID == "" && evento == "" {
		return registros
	}
	out := make([]model.Registro, 0, len(registros))
	for _, r := range registros {
		if trabajadorID != "" && r.TrabajadorID != trabajadorID {
			continue
		}
		if evento != "" && r.Evento != evento {
			continue
		}
		out = append(out, r)
	}
	return out
}

type CrearManualRequest struct {
	TrabajadorID string `json:"trabajador_id" validate:"required"`
	Evento       string `json:"evento" validate:"required"`
	Timestamp    string `json:"timestamp" validate:"required"`
	Notas        string `json:"notas"`
}

// CrearManual es el formulario de ingreso manual del admin. La fecha se
// deriva siempre del timestamp; el snapshot del trabajador se toma al crear.
func (h *RegistroHandler) CrearManual(c *fiber.Ctx) error {
	var req CrearManualRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !model.EsEventoValido(req.Evento) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tipo de evento desconocido"})
	}

	fecha, ok := marcaje.FechaDeTimestamp(req.Timestamp)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Timestamp inválido"})
	}

	trabajador, err := h.trabajadorRepo.GetByID(req.TrabajadorID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trabajador no encontrado"})
	}

	registro := model.Registro{
		ID:                  marcaje.GenerateID(),
		TrabajadorID:        trabajador.ID,
		TrabajadorNombre:    trabajador.Nombre,
		TrabajadorDocumento: trabajador.Documento,
		Evento:              req.Evento,
		Timestamp:           req.Timestamp,
		Fecha:               fecha,
		Ubicacion:           marcaje.UbicacionPrincipal,
		Notas:               strings.TrimSpace(req.Notas),
	}

	if err := h.repo.Create(registro); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo guardar el registro"})
	}

	adminID, _ := c.Locals("user_id").(string)
	h.auditRepo.Log(adminID, "registro_manual", "registro "+registro.ID+" para "+trabajador.ID, true)

	sync := h.sincronizar(registro)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": registro, "sync": sync})
}

type EditarRegistroRequest struct {
	Evento    string `json:"evento"`
	Timestamp string `json:"timestamp"`
}

// Editar solo permite cambiar evento y timestamp; la fecha se recalcula del
// timestamp editado. El historial no se revalida contra la máquina de
// estados: una edición fuera de orden queda tal cual se pidió.
func (h *RegistroHandler) Editar(c *fiber.Ctx) error {
	id := c.Params("id")

	registro, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registro no encontrado"})
	}

	var req EditarRegistroRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}

	if req.Evento != "" {
		if !model.EsEventoValido(req.Evento) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tipo de evento desconocido"})
		}
		registro.Evento = req.Evento
	}
	if req.Timestamp != "" {
		fecha, ok := marcaje.FechaDeTimestamp(req.Timestamp)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Timestamp inválido"})
		}
		registro.Timestamp = req.Timestamp
		registro.Fecha = fecha
	}

	if err := h.repo.Update(registro); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar el registro"})
	}

	adminID, _ := c.Locals("user_id").(string)
	h.auditRepo.Log(adminID, "registro_editado", "registro "+registro.ID, true)

	return c.JSON(fiber.Map{"data": registro})
}

func (h *RegistroHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := h.repo.GetByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registro no encontrado"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo eliminar el registro"})
	}

	adminID, _ := c.Locals("user_id").(string)
	h.auditRepo.Log(adminID, "registro_eliminado", "registro "+id, true)

	return c.JSON(fiber.Map{"message": "Registro eliminado"})
}
