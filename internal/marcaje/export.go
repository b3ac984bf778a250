package marcaje

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"asistencia-cosmos-backend/internal/model"
)

// ExportDump es el formato del respaldo JSON, compatible con los respaldos
// históricos del sistema.
type ExportDump struct {
	ExportDate   string           `json:"exportDate"`
	TotalRecords int              `json:"totalRecords"`
	Records      []model.Registro `json:"records"`
}

// ExportJSON serializa todos los registros como respaldo legible (pretty).
func ExportJSON(registros []model.Registro) ([]byte, error) {
	dump := ExportDump{
		ExportDate:   time.Now().Format(time.RFC3339),
		TotalRecords: len(registros),
		Records:      registros,
	}
	return json.MarshalIndent(dump, "", "  ")
}

// ExportCSV genera el CSV de descarga: fecha, trabajador, evento, hora.
func ExportCSV(registros []model.Registro) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Fecha", "Trabajador", "Evento", "Hora"}); err != nil {
		return nil, err
	}
	for _, r := range registros {
		if err := w.Write([]string{r.Fecha, r.TrabajadorNombre, r.Evento, FormatTime(r.Timestamp)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// SunafilCSV genera el CSV del reporte periódico para descarga o correo.
func SunafilCSV(filas []SunafilReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Empresa", "RUC", "Periodo", "Trabajador", "Documento",
		"Dias Trabajados", "Horas Totales", "Horas Regulares", "Horas Extras"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, f := range filas {
		row := []string{
			f.Empresa, f.RUC, f.Periodo, f.Trabajador, f.Documento,
			itoa(f.DiasTrabajados), ftoa(f.HorasTotales), ftoa(f.HorasRegulares), ftoa(f.HorasExtras),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// NuevosImportados devuelve solo las filas del respaldo que no existen aún,
// para persistirlas sin tocar las demás. Se descartan las filas sin campos
// obligatorios y los duplicados por id.
func NuevosImportados(existentes, importados []model.Registro) []model.Registro {
	vistos := make(map[string]bool, len(existentes))
	for _, r := range existentes {
		vistos[r.ID] = true
	}

	var nuevos []model.Registro
	for _, r := range importados {
		if r.ID == "" || r.TrabajadorID == "" || r.Evento == "" || r.Timestamp == "" {
			continue
		}
		if vistos[r.ID] {
			continue
		}
		vistos[r.ID] = true
		nuevos = append(nuevos, r)
	}
	return nuevos
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
