package marcaje

import (
	"math"
	"testing"
)

func casiIgual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGrossHours(t *testing.T) {
	tests := []struct {
		name    string
		entrada string
		salida  string
		want    float64
	}{
		{"jornada de 9 horas", "2024-01-15T08:00:00-05:00", "2024-01-15T17:00:00-05:00", 9},
		{"media hora", "2024-01-15T08:00:00-05:00", "2024-01-15T08:30:00-05:00", 0.5},
		{"salida antes de entrada da 0", "2024-01-15T17:00:00-05:00", "2024-01-15T08:00:00-05:00", 0},
		{"sin entrada da 0", "", "2024-01-15T17:00:00-05:00", 0},
		{"sin salida da 0", "2024-01-15T08:00:00-05:00", "", 0},
		{"timestamp corrupto da 0", "no-es-fecha", "2024-01-15T17:00:00-05:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GrossHours(tt.entrada, tt.salida); !casiIgual(got, tt.want) {
				t.Errorf("GrossHours = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNetHours(t *testing.T) {
	entrada := "2024-01-15T08:00:00-05:00"
	salida := "2024-01-15T17:00:00-05:00"

	tests := []struct {
		name       string
		refrigerio string
		termino    string
		want       float64
	}{
		{"refrigerio de media hora", "2024-01-15T12:00:00-05:00", "2024-01-15T12:30:00-05:00", 8.5},
		{"refrigerio de una hora", "2024-01-15T13:00:00-05:00", "2024-01-15T14:00:00-05:00", 8},
		{"sin refrigerio igual a brutas", "", "", 9},
		{"refrigerio sin cierre no descuenta", "2024-01-15T12:00:00-05:00", "", 9},
		{"refrigerio negativo cuenta como 0", "2024-01-15T13:00:00-05:00", "2024-01-15T12:00:00-05:00", 9},
		{"refrigerio corrupto no descuenta", "xxx", "2024-01-15T12:30:00-05:00", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NetHours(entrada, salida, tt.refrigerio, tt.termino); !casiIgual(got, tt.want) {
				t.Errorf("NetHours = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNetHoursSinJornada(t *testing.T) {
	// Sin entrada/salida las brutas son 0 y el refrigerio no puede volverlas negativas.
	got := NetHours("", "", "2024-01-15T12:00:00-05:00", "2024-01-15T13:00:00-05:00")
	if !casiIgual(got, 0) {
		t.Errorf("NetHours sin jornada = %v, want 0", got)
	}
}
