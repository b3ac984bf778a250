package handler

import (
	"strings"

	"asistencia-cosmos-backend/internal/model"
	"asistencia-cosmos-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type TrabajadorHandler struct {
	repo      repository.TrabajadorRepository
	auditRepo repository.AuditRepository
	validate  *validator.Validate
}

func NewTrabajadorHandler(repo repository.TrabajadorRepository, auditRepo repository.AuditRepository) *TrabajadorHandler {
	return &TrabajadorHandler{
		repo:      repo,
		auditRepo: auditRepo,
		validate:  validator.New(),
	}
}

func (h *TrabajadorHandler) GetAll(c *fiber.Ctx) error {
	trabajadores, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo leer la planilla"})
	}
	return c.JSON(fiber.Map{"data": trabajadores, "total": len(trabajadores)})
}

func (h *TrabajadorHandler) GetByID(c *fiber.Ctx) error {
	trabajador, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trabajador no encontrado"})
	}
	return c.JSON(fiber.Map{"data": trabajador})
}

type CrearTrabajadorRequest struct {
	Nombre    string `json:"name" validate:"required,min=3"`
	Documento string `json:"document" validate:"required,min=8"`
	Cargo     string `json:"position" validate:"required"`
	Foto      string `json:"photo"`
	PIN       string `json:"pin" validate:"required,numeric,min=4,max=6"`
}

// Create da de alta a un trabajador. El documento (DNI) debe ser único y el
// PIN se guarda solo como hash bcrypt.
func (h *TrabajadorHandler) Create(c *fiber.Ctx) error {
	var req CrearTrabajadorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if existente, _ := h.repo.FindByDocumento(req.Documento); existente != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Ya existe un trabajador con ese documento"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo registrar el PIN"})
	}

	trabajador := model.Trabajador{
		ID:        uuid.NewString(),
		Nombre:    strings.TrimSpace(req.Nombre),
		Documento: strings.TrimSpace(req.Documento),
		Cargo:     strings.TrimSpace(req.Cargo),
		Foto:      req.Foto,
		PINHash:   string(hash),
	}

	if err := h.repo.Create(trabajador); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo crear el trabajador"})
	}

	adminID, _ := c.Locals("user_id").(string)
	h.auditRepo.Log(adminID, "trabajador_creado", "trabajador "+trabajador.ID, true)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": trabajador})
}

type ActualizarTrabajadorRequest struct {
	Nombre    string `json:"name"`
	Documento string `json:"document"`
	Cargo     string `json:"position"`
	Foto      string `json:"photo"`
}

func (h *TrabajadorHandler) Update(c *fiber.Ctx) error {
	trabajador, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trabajador no encontrado"})
	}

	var req ActualizarTrabajadorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}

	if req.Documento != "" && req.Documento != trabajador.Documento {
		if existente, _ := h.repo.FindByDocumento(req.Documento); existente != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Ya existe un trabajador con ese documento"})
		}
		trabajador.Documento = strings.TrimSpace(req.Documento)
	}
	if req.Nombre != "" {
		trabajador.Nombre = strings.TrimSpace(req.Nombre)
	}
	if req.Cargo != "" {
		trabajador.Cargo = strings.TrimSpace(req.Cargo)
	}
	if req.Foto != "" {
		trabajador.Foto = req.Foto
	}

	if err := h.repo.Update(trabajador); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar el trabajador"})
	}

	adminID, _ := c.Locals("user_id").(string)
	h.auditRepo.Log(adminID, "trabajador_actualizado", "trabajador "+trabajador.ID, true)

	return c.JSON(fiber.Map{"data": trabajador})
}

type CambiarPINRequest struct {
	PIN string `json:"pin" validate:"required,numeric,min=4,max=6"`
}

func (h *TrabajadorHandler) UpdatePIN(c *fiber.Ctx) error {
	trabajador, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trabajador no encontrado"})
	}

	var req CambiarPINRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Datos no válidos"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo registrar el PIN"})
	}
	trabajador.PINHash = string(hash)

	if err := h.repo.Update(trabajador); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo actualizar el PIN"})
	}

	adminID, _ := c.Locals("user_id").(string)
	h.auditRepo.Log(adminID, "pin_rotado", "trabajador "+trabajador.ID, true)

	return c.JSON(fiber.Map{"message": "PIN actualizado"})
}

// Delete elimina al trabajador de la planilla. Sus registros históricos se
// conservan: llevan el snapshot de nombre y documento al momento de marcar.
func (h *TrabajadorHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := h.repo.GetByID(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trabajador no encontrado"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No se pudo eliminar el trabajador"})
	}

	adminID, _ := c.Locals("user_id").(string)
	h.auditRepo.Log(adminID, "trabajador_eliminado", "trabajador "+id, true)

	return c.JSON(fiber.Map{"message": "Trabajador eliminado"})
}
