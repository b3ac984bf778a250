package marcaje

import (
	"encoding/json"
	"strings"
	"testing"

	"asistencia-cosmos-backend/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	existentes := []model.Registro{
		registro("a", "w1", "ENTRADA", "2024-01-15T08:00:00-05:00"),
		registro("b", "w1", "SALIDA", "2024-01-15T17:00:00-05:00"),
	}

	data, err := ExportJSON(existentes)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var dump ExportDump
	if err := json.Unmarshal(data, &dump); err != nil {
		t.Fatalf("el respaldo debe ser JSON válido: %v", err)
	}
	if dump.TotalRecords != 2 || len(dump.Records) != 2 {
		t.Fatalf("respaldo con %d/%d registros, want 2/2", dump.TotalRecords, len(dump.Records))
	}

	// Reimportar el mismo respaldo más un registro nuevo: los duplicados por
	// id se descartan y solo lo genuinamente nuevo se importa.
	importados := append(dump.Records, registro("c", "w2", "ENTRADA", "2024-01-16T08:00:00-05:00"))
	nuevos := NuevosImportados(existentes, importados)
	if len(nuevos) != 1 || nuevos[0].ID != "c" {
		t.Errorf("nuevos = %+v, want solo c", nuevos)
	}
}

func TestNuevosImportadosDescartaInvalidos(t *testing.T) {
	importados := []model.Registro{
		{ID: "", TrabajadorID: "w1", Evento: "ENTRADA", Timestamp: "2024-01-15T08:00:00-05:00"},
		{ID: "x", TrabajadorID: "", Evento: "ENTRADA", Timestamp: "2024-01-15T08:00:00-05:00"},
		{ID: "y", TrabajadorID: "w1", Evento: "", Timestamp: "2024-01-15T08:00:00-05:00"},
		{ID: "z", TrabajadorID: "w1", Evento: "ENTRADA", Timestamp: ""},
	}

	nuevos := NuevosImportados(nil, importados)
	if len(nuevos) != 0 {
		t.Errorf("filas sin campos obligatorios no deben importarse: %d nuevos", len(nuevos))
	}
}

func TestNuevosImportados(t *testing.T) {
	existentes := []model.Registro{registro("a", "w1", "ENTRADA", "2024-01-15T08:00:00-05:00")}
	importados := []model.Registro{
		registro("a", "w1", "ENTRADA", "2024-01-15T08:00:00-05:00"),
		registro("b", "w1", "SALIDA", "2024-01-15T17:00:00-05:00"),
	}

	nuevos := NuevosImportados(existentes, importados)
	if len(nuevos) != 1 || nuevos[0].ID != "b" {
		t.Fatalf("nuevos = %+v, want solo b", nuevos)
	}
}

func TestExportCSV(t *testing.T) {
	registros := []model.Registro{registro("a", "w1", "ENTRADA", "2024-01-15T08:00:00-05:00")}

	data, err := ExportCSV(registros)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv con %d líneas, want cabecera + 1 fila", len(lines))
	}
	if lines[0] != "Fecha,Trabajador,Evento,Hora" {
		t.Errorf("cabecera = %q", lines[0])
	}
	if lines[1] != "2024-01-15,Trabajador w1,ENTRADA,08:00:00" {
		t.Errorf("fila = %q", lines[1])
	}
}

func TestSunafilCSV(t *testing.T) {
	filas := []SunafilReport{{
		Empresa: EmpresaNombre, RUC: EmpresaRUC, Periodo: "2024-01-01 al 2024-01-31",
		Trabajador: "Juan Pérez", Documento: "12345678",
		DiasTrabajados: 3, HorasTotales: 27, HorasRegulares: 24, HorasExtras: 3,
	}}

	data, err := SunafilCSV(filas)
	if err != nil {
		t.Fatalf("SunafilCSV: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "Juan Pérez") || !strings.Contains(out, "27.00") {
		t.Errorf("csv inesperado: %s", out)
	}
}
