package model

import "time"

// Roles de administrador.
const (
	RolAdmin    = "admin"
	RolContador = "contador"
)

type Admin struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Nombre    string    `json:"name"`
	Rol       string    `json:"role"` // admin | contador
	PINHash   string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
