package fastprint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jhoicas/catalog-sync/internal/application/catalogsync"
	dsync "github.com/jhoicas/catalog-sync/internal/domain/catalogsync"
)

// Verificar en tiempo de compilación que Client implementa ProductSource.
var _ catalogsync.ProductSource = (*Client)(nil)

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 10 << 20 // 10 MB
)

// Options configuración del cliente.
type Options struct {
	Endpoint          string
	UserAgent         string
	Timeout           time.Duration // timeout por intento; 0 = 30 s
	AttemptsPerSecond float64       // <= 0 desactiva el limitador
}

// Client adaptador de la API de inventario remota. Mantiene una sesión persistente
// (cookies + conexiones keep-alive) entre intentos, como un navegador.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient construye el cliente con su cookie jar y timeout explícito por intento.
func NewClient(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("fastprint: endpoint es obligatorio")
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("fastprint: cookie jar: %w", err)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		endpoint:  opts.Endpoint,
		userAgent: opts.UserAgent,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}
	if opts.AttemptsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.AttemptsPerSecond), 1)
	}
	return c, nil
}

// ── Protocolo ────────────────────────────────────────────────────────────────

// apiResponse sobre de respuesta: {"error": <int>, "ket": <string>, "data": [...]}.
type apiResponse struct {
	Error json.RawMessage `json:"error"`
	Ket   json.RawMessage `json:"ket"`
	Data  json.RawMessage `json:"data"`
}

// FetchProducts hace un POST form-urlencoded con username/password y clasifica la
// respuesta. Solo devuelve error ante fallos de transporte; cualquier respuesta recibida
// (aunque sea inválida) es un AttemptResult.
func (c *Client) FetchProducts(ctx context.Context, username, password string) (*catalogsync.AttemptResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("fastprint: esperando turno: %w", err)
		}
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("fastprint: crear request: %w", err)
	}
	c.setBrowserHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fastprint: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("fastprint: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("fastprint: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return soft(resp.StatusCode, fmt.Sprintf("HTTP %d", resp.StatusCode)), nil
	}
	return parseBody(body), nil
}

// setBrowserHeaders el filtro del servidor rechaza peticiones sin cabeceras de navegador
// ni el marcador XHR.
func (c *Client) setBrowserHeaders(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
}

// parseBody clasifica un cuerpo recibido con HTTP 200.
func parseBody(body []byte) *catalogsync.AttemptResult {
	var env apiResponse
	if err := json.Unmarshal(bytes.TrimSpace(body), &env); err != nil {
		return soft(http.StatusOK, "respuesta JSON inválida")
	}
	if !isZero(env.Error) {
		msg := message(env.Ket)
		if msg == "" {
			msg = "Unknown error"
		}
		return soft(http.StatusOK, msg)
	}
	if len(env.Data) == 0 {
		return soft(http.StatusOK, "respuesta sin campo data")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(env.Data, &items); err != nil || items == nil {
		return soft(http.StatusOK, "el campo data no es una lista")
	}

	records := make([]dsync.RemoteRecord, len(items))
	for i, raw := range items {
		// elementos que no son objetos quedan vacíos y la reconciliación los omite
		_ = json.Unmarshal(raw, &records[i])
	}
	return &catalogsync.AttemptResult{
		Outcome:    catalogsync.OutcomeSuccess,
		StatusCode: http.StatusOK,
		Message:    message(env.Ket),
		Records:    records,
	}
}

func soft(status int, msg string) *catalogsync.AttemptResult {
	return &catalogsync.AttemptResult{
		Outcome:    catalogsync.OutcomeSoftFailure,
		StatusCode: status,
		Message:    msg,
	}
}

// isZero true solo si el indicador de error es el número JSON 0 (o 0.0).
func isZero(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	if s == "" || s[0] == '"' {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f == 0
}

func message(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
