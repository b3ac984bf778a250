package marcaje

import (
	"testing"

	"asistencia-cosmos-backend/internal/model"
)

func registro(id, trabajador, evento, ts string) model.Registro {
	fecha, _ := FechaDeTimestamp(ts)
	return model.Registro{
		ID:                  id,
		TrabajadorID:        trabajador,
		TrabajadorNombre:    "Trabajador " + trabajador,
		TrabajadorDocumento: "doc-" + trabajador,
		Evento:              evento,
		Timestamp:           ts,
		Fecha:               fecha,
		Ubicacion:           UbicacionPrincipal,
	}
}

func TestGenerateDailyReportJornadaCompleta(t *testing.T) {
	trabajadores := []model.Trabajador{{ID: "w1", Nombre: "Juan Pérez", Documento: "12345678"}}
	registros := []model.Registro{
		registro("1", "w1", "ENTRADA", "2024-01-15T08:00:00-05:00"),
		registro("2", "w1", "SALIDA", "2024-01-15T17:00:00-05:00"),
	}

	filas := GenerateDailyReport(registros, "2024-01-15", trabajadores)
	if len(filas) != 1 {
		t.Fatalf("esperaba 1 fila, got %d", len(filas))
	}
	f := filas[0]
	if !casiIgual(f.HorasTrabajadas, 9) || !casiIgual(f.HorasNetas, 9) {
		t.Errorf("horas = %v/%v, want 9/9", f.HorasTrabajadas, f.HorasNetas)
	}
	if f.Entrada != "08:00:00" || f.Salida != "17:00:00" {
		t.Errorf("horas formateadas = %q/%q", f.Entrada, f.Salida)
	}
	if f.Refrigerio != "" || f.TerminoRefrigerio != "" {
		t.Errorf("eventos ausentes deben quedar vacíos: %q %q", f.Refrigerio, f.TerminoRefrigerio)
	}
}

func TestGenerateDailyReportConRefrigerio(t *testing.T) {
	trabajadores := []model.Trabajador{{ID: "w1", Nombre: "Juan Pérez", Documento: "12345678"}}
	registros := []model.Registro{
		registro("1", "w1", "ENTRADA", "2024-01-15T08:00:00-05:00"),
		registro("2", "w1", "REFRIGERIO", "2024-01-15T12:00:00-05:00"),
		registro("3", "w1", "TERMINO_REFRIGERIO", "2024-01-15T12:30:00-05:00"),
		registro("4", "w1", "SALIDA", "2024-01-15T17:00:00-05:00"),
	}

	filas := GenerateDailyReport(registros, "2024-01-15", trabajadores)
	if len(filas) != 1 {
		t.Fatalf("esperaba 1 fila, got %d", len(filas))
	}
	if !casiIgual(filas[0].HorasTrabajadas, 9) {
		t.Errorf("horas trabajadas = %v, want 9", filas[0].HorasTrabajadas)
	}
	if !casiIgual(filas[0].HorasNetas, 8.5) {
		t.Errorf("horas netas = %v, want 8.5", filas[0].HorasNetas)
	}
}

func TestGenerateDailyReportOrdenYPrimerEvento(t *testing.T) {
	trabajadores := []model.Trabajador{
		{ID: "w2", Nombre: "María García", Documento: "87654321"},
		{ID: "w1", Nombre: "Juan Pérez", Documento: "12345678"},
	}
	// Dos ENTRADA el mismo día: gana la primera en orden de llegada.
	registros := []model.Registro{
		registro("1", "w1", "ENTRADA", "2024-01-15T08:00:00-05:00"),
		registro("2", "w1", "ENTRADA", "2024-01-15T09:30:00-05:00"),
		registro("3", "w1", "ENTRADA", "2024-01-14T08:00:00-05:00"), // otro día, fuera
	}

	filas := GenerateDailyReport(registros, "2024-01-15", trabajadores)
	if len(filas) != 2 {
		t.Fatalf("esperaba una fila por trabajador del roster, got %d", len(filas))
	}
	if filas[0].TrabajadorID != "w2" || filas[1].TrabajadorID != "w1" {
		t.Errorf("el orden del roster debe preservarse: %s, %s", filas[0].TrabajadorID, filas[1].TrabajadorID)
	}
	if filas[0].Entrada != "" {
		t.Errorf("w2 sin registros debe tener entrada vacía, got %q", filas[0].Entrada)
	}
	if filas[1].Entrada != "08:00:00" {
		t.Errorf("debe usarse la primera ENTRADA encontrada, got %q", filas[1].Entrada)
	}
}

func TestGenerateSunafilReportHorasExtras(t *testing.T) {
	// 3 días de 9 horas netas: total 27, regulares 24 (3×8), extras 3.
	var registros []model.Registro
	dias := []string{"2024-01-15", "2024-01-16", "2024-01-17"}
	for i, d := range dias {
		registros = append(registros,
			registro("e"+itoa(i), "w1", "ENTRADA", d+"T08:00:00-05:00"),
			registro("s"+itoa(i), "w1", "SALIDA", d+"T17:00:00-05:00"),
		)
	}

	filas := GenerateSunafilReport(registros, "2024-01-15", "2024-01-17")
	if len(filas) != 1 {
		t.Fatalf("esperaba 1 fila, got %d", len(filas))
	}
	f := filas[0]
	if f.DiasTrabajados != 3 {
		t.Errorf("dias trabajados = %d, want 3", f.DiasTrabajados)
	}
	if !casiIgual(f.HorasTotales, 27) || !casiIgual(f.HorasRegulares, 24) || !casiIgual(f.HorasExtras, 3) {
		t.Errorf("horas = %v/%v/%v, want 27/24/3", f.HorasTotales, f.HorasRegulares, f.HorasExtras)
	}
	if f.Empresa != EmpresaNombre || f.RUC != EmpresaRUC {
		t.Errorf("empresa/ruc = %q/%q", f.Empresa, f.RUC)
	}
	if f.Periodo != "2024-01-15 al 2024-01-17" {
		t.Errorf("periodo = %q", f.Periodo)
	}
}

func TestGenerateSunafilReportSoloRefrigerioNoCuenta(t *testing.T) {
	registros := []model.Registro{
		registro("1", "w1", "REFRIGERIO", "2024-01-15T12:00:00-05:00"),
		registro("2", "w1", "TERMINO_REFRIGERIO", "2024-01-15T12:30:00-05:00"),
		registro("3", "w1", "ENTRADA", "2024-01-16T08:00:00-05:00"),
		registro("4", "w1", "SALIDA", "2024-01-16T16:00:00-05:00"),
	}

	filas := GenerateSunafilReport(registros, "2024-01-15", "2024-01-16")
	if len(filas) != 1 {
		t.Fatalf("esperaba 1 fila, got %d", len(filas))
	}
	if filas[0].DiasTrabajados != 1 {
		t.Errorf("el día de solo refrigerio no debe contar: dias = %d, want 1", filas[0].DiasTrabajados)
	}
}

func TestGenerateSunafilReportRangoYAusencias(t *testing.T) {
	registros := []model.Registro{
		registro("1", "w1", "ENTRADA", "2024-01-10T08:00:00-05:00"), // antes del rango
		registro("2", "w2", "ENTRADA", "2024-01-15T08:00:00-05:00"),
		registro("3", "w2", "SALIDA", "2024-01-15T16:00:00-05:00"),
	}

	filas := GenerateSunafilReport(registros, "2024-01-15", "2024-01-20")
	if len(filas) != 1 {
		t.Fatalf("trabajadores sin registros en el rango no producen fila: got %d filas", len(filas))
	}
	if filas[0].Trabajador != "Trabajador w2" {
		t.Errorf("fila de %q, want w2", filas[0].Trabajador)
	}
}

func TestGenerateSunafilReportRangoVacio(t *testing.T) {
	if filas := GenerateSunafilReport(nil, "", "2024-01-20"); len(filas) != 0 {
		t.Errorf("rango incompleto debe dar reporte vacío, got %d filas", len(filas))
	}
}
