package database

import (
	"fmt"
	"log"

	"asistencia-cosmos-backend/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll carga los administradores y una planilla de demostración. Es
// idempotente: si el documento o el nombre ya existen no se duplica nada, y
// los PINs existentes no se pisan.
func SeedAll(db *gorm.DB) {
	seedAdmins(db)
	seedTrabajadores(db)
}

func seedAdmins(db *gorm.DB) {
	admins := []struct {
		nombre string
		rol    string
		pin    string
	}{
		{"Administrador Principal", model.RolAdmin, "999888"},
		{"Contador SUNAFIL", model.RolContador, "777666"},
	}

	for _, a := range admins {
		var existente model.Admin
		err := db.Where("nombre = ?", a.nombre).First(&existente).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("seed admin %s: %v", a.nombre, err)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(a.pin), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("seed admin %s: %v", a.nombre, err)
			continue
		}
		admin := model.Admin{
			ID:      uuid.NewString(),
			Nombre:  a.nombre,
			Rol:     a.rol,
			PINHash: string(hash),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("seed admin %s: %v", a.nombre, err)
			continue
		}
		fmt.Printf("Admin creado: %s (%s)\n", a.nombre, a.rol)
	}
}

func seedTrabajadores(db *gorm.DB) {
	trabajadores := []struct {
		nombre    string
		documento string
		cargo     string
		pin       string
	}{
		{"Juan Carlos Pérez", "45678912", "Operario", "1234"},
		{"María Elena García", "78912345", "Supervisora", "5678"},
		{"Carlos Antonio López", "12345678", "Almacenero", "9012"},
	}

	for _, t := range trabajadores {
		var existente model.Trabajador
		err := db.Where("documento = ?", t.documento).First(&existente).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("seed trabajador %s: %v", t.nombre, err)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(t.pin), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("seed trabajador %s: %v", t.nombre, err)
			continue
		}
		trabajador := model.Trabajador{
			ID:        uuid.NewString(),
			Nombre:    t.nombre,
			Documento: t.documento,
			Cargo:     t.cargo,
			PINHash:   string(hash),
		}
		if err := db.Create(&trabajador).Error; err != nil {
			log.Printf("seed trabajador %s: %v", t.nombre, err)
			continue
		}
		fmt.Printf("Trabajador creado: %s (DNI %s)\n", t.nombre, t.documento)
	}
}
