package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"asistencia-cosmos-backend/internal/mailer"
	"asistencia-cosmos-backend/internal/marcaje"
	"asistencia-cosmos-backend/internal/model"
)

func TestDiarioIncluyeFechaLarga(t *testing.T) {
	regRepo := &fakeRegistroRepo{registros: []model.Registro{
		{ID: "a", TrabajadorID: "w1", TrabajadorNombre: "Juan Pérez", Evento: "ENTRADA",
			Timestamp: "2024-01-15T08:00:00-05:00", Fecha: "2024-01-15"},
	}}
	trabRepo := &fakeTrabajadorRepo{trabajadores: []model.Trabajador{
		{ID: "w1", Nombre: "Juan Pérez", Documento: "12345678"},
	}}
	hdl := NewReporteHandler(regRepo, trabRepo, &fakeAuditRepo{}, mailer.NewFromEnv())

	app := newTestApp()
	app.Get("/api/reportes/diario", hdl.Diario)

	req := httptest.NewRequest("GET", "/api/reportes/diario?fecha=2024-01-15", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		Fecha      string                `json:"fecha"`
		FechaLarga string                `json:"fechaLarga"`
		Data       []marcaje.DailyReport `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Fecha != "2024-01-15" {
		t.Errorf("fecha = %q", out.Fecha)
	}
	if out.FechaLarga != "lunes, 15 de enero de 2024" {
		t.Errorf("fechaLarga = %q, want la fecha larga en español", out.FechaLarga)
	}
	if len(out.Data) != 1 || out.Data[0].Entrada != "08:00:00" {
		t.Errorf("data = %+v, want la entrada de w1", out.Data)
	}
}
