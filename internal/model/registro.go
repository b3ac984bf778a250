package model

import "time"

// Tipos de evento de marcaje (enumeración cerrada).
const (
	EventoEntrada           = "ENTRADA"
	EventoRefrigerio        = "REFRIGERIO"
	EventoTerminoRefrigerio = "TERMINO_REFRIGERIO"
	EventoSalida            = "SALIDA"
)

// EventosValidos lista los cuatro eventos en el orden del flujo de jornada.
var EventosValidos = []string{
	EventoEntrada,
	EventoRefrigerio,
	EventoTerminoRefrigerio,
	EventoSalida,
}

// EsEventoValido reporta si s pertenece a la enumeración de eventos.
func EsEventoValido(s string) bool {
	for _, e := range EventosValidos {
		if e == s {
			return true
		}
	}
	return false
}

// Registro es un evento de marcaje. Nombre y documento del trabajador se
// copian al momento de marcar (snapshot histórico, no referencia viva).
// Fecha siempre se recalcula desde Timestamp al crear o editar.
type Registro struct {
	ID                  string    `json:"id" gorm:"primaryKey;size:64"`
	TrabajadorID        string    `json:"workerId" gorm:"index;size:64"`
	TrabajadorNombre    string    `json:"workerName"`
	TrabajadorDocumento string    `json:"workerDocument"`
	Evento              string    `json:"eventType" gorm:"index;size:32"`
	Timestamp           string    `json:"timestamp"`                 // ISO-8601, clave de orden
	Fecha               string    `json:"date" gorm:"index;size:10"` // YYYY-MM-DD
	Ubicacion           string    `json:"location"`
	Notas               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"-"`
	UpdatedAt           time.Time `json:"-"`
}
