package model

import "time"

// Trabajador es el perfil del empleado. El PIN nunca viaja en las respuestas,
// solo se guarda el hash bcrypt.
type Trabajador struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Nombre    string    `json:"name"`
	Documento string    `json:"document" gorm:"uniqueIndex;size:32"`
	Cargo     string    `json:"position"`
	Foto      string    `json:"photo"`
	PINHash   string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
