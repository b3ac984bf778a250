package marcaje

import (
	"testing"

	"asistencia-cosmos-backend/internal/model"
)

func TestCalcTodayStats(t *testing.T) {
	hoy := "2024-01-15"
	registros := []model.Registro{
		registro("1", "w1", "ENTRADA", "2024-01-15T08:00:00-05:00"), // puntual
		registro("2", "w2", "ENTRADA", "2024-01-15T09:15:00-05:00"), // tardanza
		registro("3", "w2", "SALIDA", "2024-01-15T17:00:00-05:00"),
		registro("4", "w3", "ENTRADA", "2024-01-10T08:00:00-05:00"), // otro día
	}

	stats := CalcTodayStats(registros, hoy)
	if stats.Presentes != 2 {
		t.Errorf("presentes = %d, want 2", stats.Presentes)
	}
	// w3 aparece en el historial pero no marcó ENTRADA hoy.
	if stats.Ausentes != 1 {
		t.Errorf("ausentes = %d, want 1", stats.Ausentes)
	}
	if stats.Tardanzas != 1 {
		t.Errorf("tardanzas = %d, want 1", stats.Tardanzas)
	}
}

func TestCalcTodayStatsSinRegistros(t *testing.T) {
	stats := CalcTodayStats(nil, "2024-01-15")
	if stats.Presentes != 0 || stats.Ausentes != 0 || stats.Tardanzas != 0 {
		t.Errorf("stats vacíos = %+v", stats)
	}
}

func TestCalcMonthlyStats(t *testing.T) {
	registros := []model.Registro{
		// w1 día completo: 8h
		registro("1", "w1", "ENTRADA", "2024-01-15T08:00:00-05:00"),
		registro("2", "w1", "SALIDA", "2024-01-15T16:00:00-05:00"),
		// w2 día completo: 10h
		registro("3", "w2", "ENTRADA", "2024-01-16T07:00:00-05:00"),
		registro("4", "w2", "SALIDA", "2024-01-16T17:00:00-05:00"),
		// w1 día incompleto: no entra al promedio
		registro("5", "w1", "ENTRADA", "2024-01-17T08:00:00-05:00"),
		// otro mes
		registro("6", "w1", "ENTRADA", "2024-02-01T08:00:00-05:00"),
	}

	stats := CalcMonthlyStats(registros, "2024-01")
	if stats.TotalRegistros != 5 {
		t.Errorf("total registros = %d, want 5", stats.TotalRegistros)
	}
	if !casiIgual(stats.PromedioHoras, 9) {
		t.Errorf("promedio horas = %v, want 9", stats.PromedioHoras)
	}
}

func TestCalcRecordStatistics(t *testing.T) {
	registros := []model.Registro{
		registro("1", "w1", "ENTRADA", "2024-01-15T08:00:00-05:00"),
		registro("2", "w1", "SALIDA", "2024-01-15T17:00:00-05:00"),
		registro("3", "w1", "ENTRADA", "2024-01-10T08:00:00-05:00"),
		registro("4", "w1", "ENTRADA", "2023-12-20T08:00:00-05:00"),
	}

	stats := CalcRecordStatistics(registros, "2024-01-15")
	if stats.Total != 4 || stats.Hoy != 2 || stats.EsteMes != 3 {
		t.Errorf("total/hoy/mes = %d/%d/%d, want 4/2/3", stats.Total, stats.Hoy, stats.EsteMes)
	}
	if stats.PorEvento["ENTRADA"] != 3 || stats.PorEvento["SALIDA"] != 1 {
		t.Errorf("por evento = %v", stats.PorEvento)
	}
}
