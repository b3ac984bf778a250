package marcaje

import "asistencia-cosmos-backend/internal/model"

// HoraTardanza: una ENTRADA a partir de esta hora local cuenta como tardanza.
const HoraTardanza = 9

// TodayStats son los contadores rápidos del dashboard para hoy. Ausentes es
// una aproximación (trabajadores vistos alguna vez en los registros menos los
// presentes), no se calcula contra el roster vivo.
type TodayStats struct {
	Presentes int `json:"presentes"`
	Ausentes  int `json:"ausentes"`
	Tardanzas int `json:"tardanzas"`
}

// MonthlyStats resume el mes calendario en curso.
type MonthlyStats struct {
	TotalRegistros int     `json:"totalRegistros"`
	PromedioHoras  float64 `json:"promedioHoras"`
}

// RecordStatistics son los totales generales del panel de administración.
type RecordStatistics struct {
	Total     int            `json:"total"`
	Hoy       int            `json:"today"`
	EsteMes   int            `json:"thisMonth"`
	PorEvento map[string]int `json:"byEventType"`
}

// CalcTodayStats recorre todos los registros una sola vez. hoy es YYYY-MM-DD.
func CalcTodayStats(registros []model.Registro, hoy string) TodayStats {
	presentes := make(map[string]bool)
	todos := make(map[string]bool)
	tardanzas := 0

	for _, r := range registros {
		todos[r.TrabajadorID] = true
		if r.Fecha != hoy || r.Evento != model.EventoEntrada {
			continue
		}
		presentes[r.TrabajadorID] = true
		if t, ok := ParseTimestamp(r.Timestamp); ok && t.Hour() >= HoraTardanza {
			tardanzas++
		}
	}

	ausentes := len(todos) - len(presentes)
	if ausentes < 0 {
		ausentes = 0
	}
	return TodayStats{
		Presentes: len(presentes),
		Ausentes:  ausentes,
		Tardanzas: tardanzas,
	}
}

// CalcMonthlyStats agrega el mes dado (YYYY-MM). El promedio de horas se
// calcula sobre los pares trabajador-día que tienen entrada y salida; los
// días incompletos no entran al promedio.
func CalcMonthlyStats(registros []model.Registro, mes string) MonthlyStats {
	total := 0
	type dia struct{ entrada, salida string }
	porDia := make(map[string]*dia)
	var orden []string

	for _, r := range registros {
		if len(r.Fecha) < 7 || r.Fecha[:7] != mes {
			continue
		}
		total++
		key := r.TrabajadorID + "|" + r.Fecha
		d, ok := porDia[key]
		if !ok {
			d = &dia{}
			porDia[key] = d
			orden = append(orden, key)
		}
		switch r.Evento {
		case model.EventoEntrada:
			if d.entrada == "" {
				d.entrada = r.Timestamp
			}
		case model.EventoSalida:
			if d.salida == "" {
				d.salida = r.Timestamp
			}
		}
	}

	suma := 0.0
	completos := 0
	for _, key := range orden {
		d := porDia[key]
		if d.entrada == "" || d.salida == "" {
			continue
		}
		suma += GrossHours(d.entrada, d.salida)
		completos++
	}

	promedio := 0.0
	if completos > 0 {
		promedio = suma / float64(completos)
	}
	return MonthlyStats{TotalRegistros: total, PromedioHoras: promedio}
}

// CalcRecordStatistics produce los totales generales. hoy es YYYY-MM-DD;
// el mes en curso se deriva de su prefijo.
func CalcRecordStatistics(registros []model.Registro, hoy string) RecordStatistics {
	stats := RecordStatistics{
		PorEvento: map[string]int{
			model.EventoEntrada:           0,
			model.EventoRefrigerio:        0,
			model.EventoTerminoRefrigerio: 0,
			model.EventoSalida:            0,
		},
	}
	mes := ""
	if len(hoy) >= 7 {
		mes = hoy[:7]
	}

	for _, r := range registros {
		stats.Total++
		if r.Fecha == hoy {
			stats.Hoy++
		}
		if mes != "" && len(r.Fecha) >= 7 && r.Fecha[:7] == mes {
			stats.EsteMes++
		}
		if _, ok := stats.PorEvento[r.Evento]; ok {
			stats.PorEvento[r.Evento]++
		}
	}
	return stats
}
