package handler

import (
	"fmt"

	"asistencia-cosmos-backend/internal/mailer"
	"asistencia-cosmos-backend/internal/marcaje"
	"asistencia-cosmos-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ReporteHandler struct {
	registroRepo   repository.RegistroRepository
	trabajadorRepo repository.TrabajadorRepository
	auditRepo      repository.AuditRepository
	mailer         *mailer.Mailer
}

func NewReporteHandler(registroRepo repository.RegistroRepository, trabajadorRepo repository.TrabajadorRepository, auditRepo repository.AuditRepository, m *mailer.Mailer) *ReporteHandler {
	return &ReporteHandler{
		registroRepo:   registroRepo,
		trabajadorRepo: trabajadorRepo,
		auditRepo:      auditRepo,
		mailer:         m,
	}
}

// Diario arma el resumen del día: una fila por trabajador del roster, con sus
// cuatro eventos y las horas brutas y netas. Sin query se asume hoy.
func (h *ReporteHandler) Diario(c *fiber.Ctx) error {
	fecha := c.Query("fecha", marcaje.CurrentDate())

	registros, err := h.registroRepo.GetByFecha(fecha)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer los registros"})
	}
	trabajadores, err := h.trabajadorRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer la planilla"})
	}

	reporte := marcaje.GenerateDailyReport(registros, fecha, trabajadores)
	return c.JSON(fiber.Map{
		"fecha":      fecha,
		"fechaLarga": marcaje.FormatDate(fecha),
		"data":       reporte,
	})
}

// Sunafil agrega el rango pedido por trabajador: días trabajados, horas
// totales, regulares y extras.
func (h *ReporteHandler) Sunafil(c *fiber.Ctx) error {
	desde := c.Query("desde")
	hasta := c.Query("hasta")
	if desde == "" || hasta == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parámetros desde y hasta requeridos (YYYY-MM-DD)"})
	}

	registros, err := h.registroRepo.GetByRango(desde, hasta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer los registros"})
	}

	reporte := marcaje.GenerateSunafilReport(registros, desde, hasta)
	return c.JSON(fiber.Map{
		"empresa": marcaje.EmpresaNombre,
		"ruc":     marcaje.EmpresaRUC,
		"periodo": desde + " al " + hasta,
		"data":    reporte,
	})
}

// ExportJSON descarga el respaldo completo en el formato de importación.
func (h *ReporteHandler) ExportJSON(c *fiber.Ctx) error {
	registros, err := h.registroRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer los registros"})
	}

	data, err := marcaje.ExportJSON(registros)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo generar el respaldo"})
	}

	nombre := "asistencia_" + marcaje.CurrentDate() + ".json"
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(data)
}

// ExportCSV descarga el historial plano para hojas de cálculo.
func (h *ReporteHandler) ExportCSV(c *fiber.Ctx) error {
	registros, err := h.registroRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer los registros"})
	}

	data, err := marcaje.ExportCSV(registros)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo generar el CSV"})
	}

	nombre := "asistencia_" + marcaje.CurrentDate() + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(data)
}

// Import restaura un respaldo JSON. Solo se insertan las filas que no existen
// aún (dedupe por id); las filas sin campos obligatorios se descartan.
func (h *ReporteHandler) Import(c *fiber.Ctx) error {
	var dump marcaje.ExportDump
	if err := c.BodyParser(&dump); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Respaldo no válido"})
	}

	existentes, err := h.registroRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer los registros"})
	}

	nuevos := marcaje.NuevosImportados(existentes, dump.Records)
	if err := h.registroRepo.CreateMany(nuevos); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo guardar el respaldo"})
	}

	adminID, _ := c.Locals("user_id").(string)
	h.auditRepo.Log(adminID, "import_respaldo", fmt.Sprintf("%d nuevos de %d recibidos", len(nuevos), len(dump.Records)), true)

	return c.JSON(fiber.Map{
		"message":    "Respaldo importado",
		"recibidos":  len(dump.Records),
		"importados": len(nuevos),
		"duplicados": len(dump.Records) - len(nuevos),
	})
}

type EmailSunafilRequest struct {
	Desde   string `json:"desde"`
	Hasta   string `json:"hasta"`
	Destino string `json:"destino"`
}

// EmailSunafil genera el CSV del periodo y lo envía por correo al contador.
func (h *ReporteHandler) EmailSunafil(c *fiber.Ctx) error {
	var req EmailSunafilRequest
	if err := c.BodyParser(&req); err != nil || req.Desde == "" || req.Hasta == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Campos desde y hasta requeridos (YYYY-MM-DD)"})
	}
	if !h.mailer.Configured() && req.Destino == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Correo no configurado"})
	}

	registros, err := h.registroRepo.GetByRango(req.Desde, req.Hasta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer los registros"})
	}

	filas := marcaje.GenerateSunafilReport(registros, req.Desde, req.Hasta)
	data, err := marcaje.SunafilCSV(filas)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo generar el CSV"})
	}

	asunto := fmt.Sprintf("Reporte SUNAFIL %s al %s - %s", req.Desde, req.Hasta, marcaje.EmpresaNombre)
	cuerpo := fmt.Sprintf("Adjunto el reporte de asistencia del periodo %s al %s.\n\n%s\nRUC %s",
		req.Desde, req.Hasta, marcaje.EmpresaNombre, marcaje.EmpresaRUC)
	nombre := fmt.Sprintf("sunafil_%s_%s.csv", req.Desde, req.Hasta)

	adminID, _ := c.Locals("user_id").(string)
	if err := h.mailer.SendCSV(req.Destino, asunto, cuerpo, nombre, data); err != nil {
		h.auditRepo.Log(adminID, "email_sunafil", err.Error(), false)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo enviar el correo"})
	}
	h.auditRepo.Log(adminID, "email_sunafil", "periodo "+req.Desde+" al "+req.Hasta, true)

	return c.JSON(fiber.Map{"message": "Reporte enviado", "trabajadores": len(filas)})
}
