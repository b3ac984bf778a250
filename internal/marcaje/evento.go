package marcaje

import "asistencia-cosmos-backend/internal/model"

// NextValidEvents calcula qué eventos puede marcar el trabajador según su
// último evento del día. Cadena vacía = sin eventos hoy.
//
//	(ninguno)           -> ENTRADA
//	ENTRADA             -> REFRIGERIO, SALIDA (puede saltarse el refrigerio)
//	REFRIGERIO          -> TERMINO_REFRIGERIO (el refrigerio se cierra antes que nada)
//	TERMINO_REFRIGERIO  -> SALIDA
//	SALIDA              -> ENTRADA (nuevo turno)
func NextValidEvents(ultimoEvento string) []string {
	switch ultimoEvento {
	case model.EventoEntrada:
		return []string{model.EventoRefrigerio, model.EventoSalida}
	case model.EventoRefrigerio:
		return []string{model.EventoTerminoRefrigerio}
	case model.EventoTerminoRefrigerio:
		return []string{model.EventoSalida}
	case model.EventoSalida:
		return []string{model.EventoEntrada}
	default:
		return []string{model.EventoEntrada}
	}
}

// EventoPermitido reporta si evento está en el conjunto válido tras ultimoEvento.
func EventoPermitido(ultimoEvento, evento string) bool {
	for _, e := range NextValidEvents(ultimoEvento) {
		if e == evento {
			return true
		}
	}
	return false
}

// ButtonStates mapea cada evento a si su botón debe estar habilitado.
// Si el último registro no es de hoy la máquina se resetea: el límite es el
// día calendario, no las horas transcurridas.
func ButtonStates(ultimo *model.Registro, hoy string) map[string]bool {
	ultimoEvento := ""
	if ultimo != nil && ultimo.Fecha == hoy {
		ultimoEvento = ultimo.Evento
	}

	validos := NextValidEvents(ultimoEvento)
	states := make(map[string]bool, len(model.EventosValidos))
	for _, e := range model.EventosValidos {
		states[e] = false
	}
	for _, e := range validos {
		states[e] = true
	}
	return states
}

// UltimoEventoDelDia busca el registro más reciente (por timestamp) del
// trabajador en la fecha dada. La máquina de estados solo mira este evento;
// no se revalida el historial completo del día.
func UltimoEventoDelDia(registros []model.Registro, trabajadorID, fecha string) *model.Registro {
	var ultimo *model.Registro
	var ultimoT int64
	for i := range registros {
		r := &registros[i]
		if r.TrabajadorID != trabajadorID || r.Fecha != fecha {
			continue
		}
		t, ok := ParseTimestamp(r.Timestamp)
		if !ok {
			continue
		}
		if ultimo == nil || t.UnixMilli() > ultimoT {
			ultimo = r
			ultimoT = t.UnixMilli()
		}
	}
	return ultimo
}
