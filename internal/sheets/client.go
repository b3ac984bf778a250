package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"asistencia-cosmos-backend/config"
	"asistencia-cosmos-backend/internal/marcaje"
	"asistencia-cosmos-backend/internal/model"
)

// Pestañas y cabeceras del espejo. Ambas hojas son append-only; la cabecera
// se asegura una sola vez de forma idempotente.
const (
	tabDetalle = "DETALLE"
	tabSunafil = "SUNAFIL"

	sheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	tokenURL      = "https://oauth2.googleapis.com/token"
	scope         = "https://www.googleapis.com/auth/spreadsheets"
)

var headersDetalle = []string{"ID", "Fecha", "Hora", "Trabajador", "Evento", "Ubicación", "Notas"}
var headersSunafil = []string{"Trabajador", "Timestamp", "Fecha", "Hora", "Evento", "Ubicación", "ID evento"}

// Config son las credenciales de la cuenta de servicio y los IDs fijos de
// las dos hojas, todo desde .env.
type Config struct {
	ClientEmail    string
	PrivateKey     string
	DetalleSheetID string
	SunafilSheetID string
}

func ConfigFromEnv() Config {
	return Config{
		ClientEmail:    config.GetEnv("GOOGLE_CLIENT_EMAIL", ""),
		PrivateKey:     strings.ReplaceAll(config.GetEnv("GOOGLE_PRIVATE_KEY", ""), `\n`, "\n"),
		DetalleSheetID: config.GetEnv("GOOGLE_DETAILED_SHEET_ID", ""),
		SunafilSheetID: config.GetEnv("GOOGLE_SUNAFIL_SHEET_ID", ""),
	}
}

type Client struct {
	cfg  Config
	http *http.Client

	mu        sync.Mutex
	token     string
	tokenExp  time.Time
	headersOK map[string]bool
}

func New(cfg Config) *Client {
	return &Client{
		cfg:       cfg,
		http:      &http.Client{Timeout: 30 * time.Second},
		headersOK: make(map[string]bool),
	}
}

// Configured reporta si hay credenciales y hojas definidas. Sin configuración
// el espejo se omite en silencio: la marcación local nunca depende de Sheets.
func (c *Client) Configured() bool {
	return c.cfg.ClientEmail != "" && c.cfg.PrivateKey != "" &&
		c.cfg.DetalleSheetID != "" && c.cfg.SunafilSheetID != ""
}

// SyncRecord agrega el registro a las dos pestañas del espejo. No reintenta:
// el reintento es responsabilidad del caller vía la cola de pendientes. Un
// registro reenviado puede duplicar la fila en el espejo.
func (c *Client) SyncRecord(ctx context.Context, r model.Registro) error {
	if !c.Configured() {
		return errors.New("google sheets no configurado")
	}

	fecha := marcaje.FormatFechaCorta(r.Timestamp)
	hora := marcaje.FormatTime(r.Timestamp)

	if err := c.ensureHeaders(ctx, c.cfg.DetalleSheetID, tabDetalle, headersDetalle); err != nil {
		return err
	}
	if err := c.ensureHeaders(ctx, c.cfg.SunafilSheetID, tabSunafil, headersSunafil); err != nil {
		return err
	}

	filaDetalle := []interface{}{r.ID, fecha, hora, r.TrabajadorNombre, r.Evento, r.Ubicacion, r.Notas}
	if err := c.appendRow(ctx, c.cfg.DetalleSheetID, tabDetalle, filaDetalle); err != nil {
		return err
	}

	filaSunafil := []interface{}{r.TrabajadorNombre, r.Timestamp, fecha, hora, r.Evento, r.Ubicacion, r.ID}
	return c.appendRow(ctx, c.cfg.SunafilSheetID, tabSunafil, filaSunafil)
}

// Health expone el chequeo de credenciales del endpoint /api/health/google.
func (c *Client) Health() map[string]interface{} {
	keyRaw := config.GetEnv("GOOGLE_PRIVATE_KEY", "")
	return map[string]interface{}{
		"emailOk":            c.cfg.ClientEmail != "",
		"keyLen":             len(keyRaw),
		"hasEscapedNewlines": strings.Contains(keyRaw, `\n`),
	}
}

func (c *Client) ensureHeaders(ctx context.Context, spreadsheetID, tab string, headers []string) error {
	c.mu.Lock()
	done := c.headersOK[spreadsheetID+"/"+tab]
	c.mu.Unlock()
	if done {
		return nil
	}

	rango := tab + "!1:1"
	var got struct {
		Values [][]interface{} `json:"values"`
	}
	if err := c.doJSON(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s/values/%s", sheetsBaseURL, spreadsheetID, url.PathEscape(rango)),
		nil, &got); err != nil {
		return err
	}

	if len(got.Values) == 0 || len(got.Values[0]) == 0 {
		fila := make([]interface{}, len(headers))
		for i, h := range headers {
			fila[i] = h
		}
		body := map[string]interface{}{"values": [][]interface{}{fila}}
		err := c.doJSON(ctx, http.MethodPut,
			fmt.Sprintf("%s/%s/values/%s?valueInputOption=RAW", sheetsBaseURL, spreadsheetID, url.PathEscape(tab+"!A1")),
			body, nil)
		if err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.headersOK[spreadsheetID+"/"+tab] = true
	c.mu.Unlock()
	return nil
}

func (c *Client) appendRow(ctx context.Context, spreadsheetID, tab string, fila []interface{}) error {
	body := map[string]interface{}{"values": [][]interface{}{fila}}
	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=USER_ENTERED",
		sheetsBaseURL, spreadsheetID, url.PathEscape(tab+"!A1:G1"))
	return c.doJSON(ctx, http.MethodPost, endpoint, body, nil)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, out interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return fmt.Errorf("sheets api %s (%d): %s", endpoint, res.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out != nil {
		return json.NewDecoder(res.Body).Decode(out)
	}
	return nil
}
