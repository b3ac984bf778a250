package marcaje

import (
	"strings"
	"testing"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name string
		ts   string
		want string
	}{
		{"timestamp con zona", "2024-01-15T08:05:09-05:00", "08:05:09"},
		{"timestamp UTC", "2024-01-15T23:59:59Z", "23:59:59"},
		{"vacío da centinela", "", "--:--:--"},
		{"corrupto da centinela", "ayer a las ocho", "--:--:--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(tt.ts); got != tt.want {
				t.Errorf("FormatTime(%q) = %q, want %q", tt.ts, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-01-15"); got != "lunes, 15 de enero de 2024" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate("no-fecha"); got != "--/--/----" {
		t.Errorf("FormatDate inválida = %q, want centinela", got)
	}
}

func TestFormatFechaCorta(t *testing.T) {
	if got := FormatFechaCorta("2024-01-15T08:00:00-05:00"); got != "15/01/2024" {
		t.Errorf("FormatFechaCorta = %q, want 15/01/2024", got)
	}
}

func TestFechaDeTimestamp(t *testing.T) {
	// La fecha se deriva en la zona horaria que trae el propio timestamp.
	fecha, ok := FechaDeTimestamp("2024-01-15T23:30:00-05:00")
	if !ok || fecha != "2024-01-15" {
		t.Errorf("FechaDeTimestamp = %q (%v), want 2024-01-15", fecha, ok)
	}
	if _, ok := FechaDeTimestamp("basura"); ok {
		t.Error("timestamp corrupto no debe parsear")
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if len(id) < 13+9 {
		t.Errorf("id demasiado corto: %q", id)
	}
	for _, c := range id {
		if !strings.ContainsRune(base36, c) {
			t.Errorf("caracter inesperado %q en id %q", c, id)
		}
	}
	if GenerateID() == id && GenerateID() == id {
		t.Error("ids consecutivos idénticos")
	}
}
