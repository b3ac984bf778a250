package handler

import (
	"testing"

	"asistencia-cosmos-backend/internal/model"
)

func TestFiltrarRegistros(t *testing.T) {
	registros := []model.Registro{
		{ID: "1", TrabajadorID: "w1", Evento: model.EventoEntrada},
		{ID: "2", TrabajadorID: "w1", Evento: model.EventoSalida},
		{ID: "3", TrabajadorID: "w2", Evento: model.EventoEntrada},
	}

	tests := []struct {
		nombre       string
		trabajadorID string
		evento       string
		esperados    []string
	}{
		{"sin filtros devuelve todo", "", "", []string{"1", "2", "3"}},
		{"por trabajador", "w1", "", []string{"1", "2"}},
		{"por evento", "", model.EventoEntrada, []string{"1", "3"}},
		{"trabajador y evento combinados", "w1", model.EventoSalida, []string{"2"}},
		{"sin coincidencias", "w3", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			got := filtrarRegistros(registros, tt.trabajadorID, tt.evento)
			if len(got) != len(tt.esperados) {
				t.Fatalf("esperaba %d registros, hay %d", len(tt.esperados), len(got))
			}
			for i, r := range got {
				if r.ID != tt.esperados[i] {
					t.Errorf("posición %d: esperaba id %s, hay %s", i, tt.esperados[i], r.ID)
				}
			}
		})
	}
}
