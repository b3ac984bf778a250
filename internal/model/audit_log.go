package model

import "gorm.io/gorm"

// AuditLog guarda el rastro de acciones sensibles (logins, ediciones,
// borrados). Persistido en DB, no en memoria.
type AuditLog struct {
	gorm.Model
	UserID  string `json:"user_id" gorm:"size:64"`
	Accion  string `json:"accion" gorm:"size:64"`
	Detalle string `json:"detalle"`
	Exito   bool   `json:"exito"`
}
