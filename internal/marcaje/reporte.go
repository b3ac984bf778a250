package marcaje

import "asistencia-cosmos-backend/internal/model"

// DailyReport es una fila del reporte diario: los cuatro eventos del día ya
// formateados más las horas calculadas. Derivado, nunca se persiste.
type DailyReport struct {
	TrabajadorID        string  `json:"workerId"`
	TrabajadorNombre    string  `json:"workerName"`
	TrabajadorDocumento string  `json:"workerDocument"`
	Fecha               string  `json:"date"`
	Entrada             string  `json:"entrada,omitempty"`
	Refrigerio          string  `json:"refrigerio,omitempty"`
	TerminoRefrigerio   string  `json:"terminoRefrigerio,omitempty"`
	Salida              string  `json:"salida,omitempty"`
	HorasTrabajadas     float64 `json:"horasTrabajadas"`
	HorasNetas          float64 `json:"horasNetas"`
}

// SunafilReport es una fila del reporte periódico por trabajador.
type SunafilReport struct {
	Empresa        string  `json:"empresa"`
	RUC            string  `json:"ruc"`
	Periodo        string  `json:"periodo"`
	Trabajador     string  `json:"trabajador"`
	Documento      string  `json:"documento"`
	DiasTrabajados int     `json:"diasTrabajados"`
	HorasTotales   float64 `json:"horasTotales"`
	HorasRegulares float64 `json:"horasRegulares"`
	HorasExtras    float64 `json:"horasExtras"`
}

// eventosDelDia junta el primer registro de cada tipo de evento, en el orden
// en que aparecen en el slice. Si hay ENTRADA duplicada gana la primera.
type eventosDelDia struct {
	entrada, refrigerio, termino, salida *model.Registro
}

func agruparEventos(registros []model.Registro) eventosDelDia {
	var ev eventosDelDia
	for i := range registros {
		r := &registros[i]
		switch r.Evento {
		case model.EventoEntrada:
			if ev.entrada == nil {
				ev.entrada = r
			}
		case model.EventoRefrigerio:
			if ev.refrigerio == nil {
				ev.refrigerio = r
			}
		case model.EventoTerminoRefrigerio:
			if ev.termino == nil {
				ev.termino = r
			}
		case model.EventoSalida:
			if ev.salida == nil {
				ev.salida = r
			}
		}
	}
	return ev
}

func ts(r *model.Registro) string {
	if r == nil {
		return ""
	}
	return r.Timestamp
}

func hora(r *model.Registro) string {
	if r == nil {
		return ""
	}
	return FormatTime(r.Timestamp)
}

// GenerateDailyReport produce una fila por trabajador, en el mismo orden del
// roster, para la fecha exacta dada. Eventos ausentes dejan su campo vacío y
// aportan 0 a las horas.
func GenerateDailyReport(registros []model.Registro, fecha string, trabajadores []model.Trabajador) []DailyReport {
	if fecha == "" {
		return []DailyReport{}
	}

	var delDia []model.Registro
	for _, r := range registros {
		if r.Fecha == fecha {
			delDia = append(delDia, r)
		}
	}

	reporte := make([]DailyReport, 0, len(trabajadores))
	for _, t := range trabajadores {
		var propios []model.Registro
		for _, r := range delDia {
			if r.TrabajadorID == t.ID {
				propios = append(propios, r)
			}
		}
		ev := agruparEventos(propios)

		reporte = append(reporte, DailyReport{
			TrabajadorID:        t.ID,
			TrabajadorNombre:    t.Nombre,
			TrabajadorDocumento: t.Documento,
			Fecha:               fecha,
			Entrada:             hora(ev.entrada),
			Refrigerio:          hora(ev.refrigerio),
			TerminoRefrigerio:   hora(ev.termino),
			Salida:              hora(ev.salida),
			HorasTrabajadas:     GrossHours(ts(ev.entrada), ts(ev.salida)),
			HorasNetas:          NetHours(ts(ev.entrada), ts(ev.salida), ts(ev.refrigerio), ts(ev.termino)),
		})
	}
	return reporte
}

// GenerateSunafilReport agrega el rango [desde, hasta] (inclusivo, comparación
// lexicográfica sobre YYYY-MM-DD) por trabajador. Un día cuenta como trabajado
// si tiene ENTRADA o SALIDA; días de solo refrigerio no cuentan. Horas
// regulares = min(total, días×8); el resto son extras. Un trabajador sin
// registros en el rango no produce fila.
func GenerateSunafilReport(registros []model.Registro, desde, hasta string) []SunafilReport {
	if desde == "" || hasta == "" {
		return []SunafilReport{}
	}

	type datosTrabajador struct {
		nombre, documento string
		dias              map[string][]model.Registro
		ordenDias         []string
	}

	porTrabajador := make(map[string]*datosTrabajador)
	var orden []string

	for _, r := range registros {
		if r.Fecha < desde || r.Fecha > hasta || r.TrabajadorID == "" {
			continue
		}
		d, ok := porTrabajador[r.TrabajadorID]
		if !ok {
			d = &datosTrabajador{
				nombre:    r.TrabajadorNombre,
				documento: r.TrabajadorDocumento,
				dias:      make(map[string][]model.Registro),
			}
			porTrabajador[r.TrabajadorID] = d
			orden = append(orden, r.TrabajadorID)
		}
		if _, ok := d.dias[r.Fecha]; !ok {
			d.ordenDias = append(d.ordenDias, r.Fecha)
		}
		d.dias[r.Fecha] = append(d.dias[r.Fecha], r)
	}

	periodo := desde + " al " + hasta
	reporte := make([]SunafilReport, 0, len(orden))

	for _, id := range orden {
		d := porTrabajador[id]
		diasTrabajados := 0
		horasTotales := 0.0

		for _, fecha := range d.ordenDias {
			ev := agruparEventos(d.dias[fecha])
			if ev.entrada == nil && ev.salida == nil {
				continue // día de solo refrigerio, no cuenta
			}
			diasTrabajados++
			horasTotales += NetHours(ts(ev.entrada), ts(ev.salida), ts(ev.refrigerio), ts(ev.termino))
		}

		regulares := horasTotales
		if tope := float64(diasTrabajados) * 8; regulares > tope {
			regulares = tope
		}
		extras := horasTotales - regulares
		if extras < 0 {
			extras = 0
		}

		reporte = append(reporte, SunafilReport{
			Empresa:        EmpresaNombre,
			RUC:            EmpresaRUC,
			Periodo:        periodo,
			Trabajador:     d.nombre,
			Documento:      d.documento,
			DiasTrabajados: diasTrabajados,
			HorasTotales:   horasTotales,
			HorasRegulares: regulares,
			HorasExtras:    extras,
		})
	}
	return reporte
}
