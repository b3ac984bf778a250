package marcaje

import (
	"math/rand"
	"strconv"
	"time"
)

// Ubicación fija de marcaje y datos de la empresa para el reporte SUNAFIL.
const (
	UbicacionPrincipal = "Oficina Principal - V&D COMOS S.R.L."
	EmpresaNombre      = "V&D COMOS S.R.L."
	EmpresaRUC         = "20609799090"
)

var diasSemana = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
}

var meses = map[time.Month]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// ParseTimestamp acepta los timestamps ISO-8601 que guarda el sistema.
func ParseTimestamp(ts string) (time.Time, bool) {
	if ts == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTime devuelve la hora hh:mm:ss del timestamp, o el centinela
// "--:--:--" si no se puede parsear. Nunca falla hacia el caller.
func FormatTime(ts string) string {
	t, ok := ParseTimestamp(ts)
	if !ok {
		return "--:--:--"
	}
	return t.Format("15:04:05")
}

// FormatDate devuelve la fecha larga en español ("lunes, 15 de enero de 2024")
// a partir de una fecha YYYY-MM-DD, o "--/--/----" si es inválida.
func FormatDate(fecha string) string {
	t, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return "--/--/----"
	}
	return diasSemana[t.Weekday()] + ", " + strconv.Itoa(t.Day()) +
		" de " + meses[t.Month()] + " de " + strconv.Itoa(t.Year())
}

// FormatFechaCorta devuelve dd/mm/yyyy para el espejo en Sheets.
func FormatFechaCorta(ts string) string {
	t, ok := ParseTimestamp(ts)
	if !ok {
		return "--/--/----"
	}
	return t.Format("02/01/2006")
}

// FechaDeTimestamp deriva el día calendario YYYY-MM-DD del timestamp,
// en la zona horaria que el propio timestamp trae.
func FechaDeTimestamp(ts string) (string, bool) {
	t, ok := ParseTimestamp(ts)
	if !ok {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// CurrentDate devuelve el día calendario local de hoy.
func CurrentDate() string {
	return time.Now().Format("2006-01-02")
}

// CurrentTimestamp devuelve el instante actual en ISO-8601 con zona local.
func CurrentTimestamp() string {
	return time.Now().Format(time.RFC3339)
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID genera el id del registro: epoch en milisegundos más un sufijo
// aleatorio base36 de 9 caracteres. Unicidad no criptográfica; la colisión
// es despreciable a esta escala.
func GenerateID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + string(suffix)
}
