package model

import "gorm.io/gorm"

// PendingSync es la cola de reintentos del espejo en Google Sheets.
// Un registro cae aquí cuando el append falla; el reintento lo dispara
// el cliente, nunca el servidor.
type PendingSync struct {
	gorm.Model
	RegistroID string `json:"registro_id" gorm:"uniqueIndex;size:64"`
	Intentos   int    `json:"intentos"`
	LastError  string `json:"last_error"`
}
