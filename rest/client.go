package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raywall/starkbank-go/errs"
	"github.com/raywall/starkbank-go/pkg/metrics"
	"github.com/raywall/starkbank-go/user"
	"github.com/rs/zerolog"
)

// Version é a versão do SDK enviada no User-Agent.
const Version = "0.1.0"

const (
	SandboxURL    = "https://sandbox.api.starkbank.com/v2"
	ProductionURL = "https://api.starkbank.com/v2"

	DefaultLanguage = "en-US"
	DefaultTimeout  = 15 * time.Second

	// maxPageSize é o maior limit aceito pela API por página.
	maxPageSize = 100
)

// Client guarda as configurações usadas em todas as chamadas.
// Não deve ser alterado depois de construído; é seguro para uso concorrente.
type Client struct {
	// User assina as requisições. Quando nil, a credencial vem do context.
	User user.User
	// BaseURL substitui a URL derivada do ambiente (ex: emulador local).
	BaseURL string
	// HTTPClient executa as requisições.
	HTTPClient *http.Client
	// Timeout aplicado por requisição. Zero desliga.
	Timeout time.Duration
	// Language vai no header Accept-Language ("en-US" ou "pt-BR").
	Language string
	// Logger recebe um evento debug por requisição.
	Logger zerolog.Logger

	recorder *metrics.Recorder
}

// Option configura o Client.
type Option func(*Client)

// WithUser define o Project ou a Organization que assina as requisições.
// Sem ele, o usuário é buscado no contexto da chamada.
func WithUser(u user.User) Option {
	return func(c *Client) { c.User = u }
}

// WithBaseURL troca a URL derivada do ambiente do usuário, por exemplo
// para apontar o Client para um emulador.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.BaseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithHTTPClient substitui o http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithTimeout limita a duração de cada requisição. Zero desliga o limite.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.Timeout = d }
}

// WithLanguage define o Accept-Language ("en-US" ou "pt-BR") das mensagens de erro.
func WithLanguage(language string) Option {
	return func(c *Client) { c.Language = language }
}

// WithLogger define o logger das chamadas; o padrão descarta tudo.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.Logger = logger }
}

// WithMetrics envia contagem, latência e erros de cada chamada ao provider.
func WithMetrics(provider metrics.Provider) Option {
	return func(c *Client) { c.recorder = metrics.NewRecorder(provider) }
}

// New cria um Client com os valores padrão sobrescritos pelas opções.
func New(opts ...Option) *Client {
	c := &Client{
		HTTPClient: http.DefaultClient,
		Timeout:    DefaultTimeout,
		Language:   DefaultLanguage,
		Logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultClient = New()

func (c *Client) orDefault() *Client {
	if c == nil {
		return defaultClient
	}
	return c
}

func (c *Client) credential(ctx context.Context) (user.User, error) {
	if c.User != nil {
		return c.User, nil
	}
	if u, ok := user.FromContext(ctx); ok {
		return u, nil
	}
	return nil, &errs.AuthenticationError{
		Message: "no user informed: set rest.Client.User or use user.NewContext",
	}
}

func (c *Client) baseURL(u user.User) string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if u.Environment() == user.Production {
		return ProductionURL
	}
	return SandboxURL
}

func userAgent() string {
	return "Go-" + strings.TrimPrefix(runtime.Version(), "go") + "-SDK-" + Version
}

// request é uma chamada pronta para ser assinada e enviada.
type request struct {
	method   string
	resource Resource
	path     string
	query    url.Values
	payload  any
}

// fetch assina, envia e devolve o corpo de uma resposta 2xx.
// Respostas fora da faixa 2xx viram *errs.ApiError.
func (c *Client) fetch(ctx context.Context, r request) ([]byte, error) {
	c = c.orDefault()

	u, err := c.credential(ctx)
	if err != nil {
		return nil, err
	}

	var body []byte
	if r.payload != nil {
		body, err = json.Marshal(r.payload)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar payload: %w", err)
		}
	}

	target := c.baseURL(u) + "/" + r.path
	if encoded := r.query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	reqCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, r.method, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar request: %w", err)
	}

	requestID := uuid.NewString()
	accessTime := strconv.FormatInt(time.Now().Unix(), 10)
	message := u.AccessID() + ":" + accessTime + ":" + r.method + ":" + req.URL.RequestURI() + ":" + string(body)

	req.Header.Set("Access-Id", u.AccessID())
	req.Header.Set("Access-Time", accessTime)
	req.Header.Set("Access-Signature", u.Sign(message))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", c.Language)
	req.Header.Set("User-Agent", userAgent())
	req.Header.Set("X-Request-Id", requestID)

	started := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.observe(r, requestID, 0, started, "network")
		return nil, &errs.NetworkError{Method: r.method, Path: req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(r, requestID, resp.StatusCode, started, "network")
		return nil, &errs.NetworkError{Method: r.method, Path: req.URL.Path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseApiError(resp.StatusCode, respBody)
		c.observe(r, requestID, resp.StatusCode, started, "api")
		c.Logger.Warn().
			Str("request_id", requestID).
			Str("method", r.method).
			Str("path", req.URL.Path).
			Int("status", resp.StatusCode).
			Err(apiErr).
			Msg("starkbank api error")
		return nil, apiErr
	}

	c.observe(r, requestID, resp.StatusCode, started, "")
	return respBody, nil
}

func (c *Client) observe(r request, requestID string, status int, started time.Time, kind string) {
	elapsed := time.Since(started)

	c.Logger.Debug().
		Str("request_id", requestID).
		Str("method", r.method).
		Str("path", r.path).
		Int("status", status).
		Dur("duration", elapsed).
		Msg("starkbank request")

	c.recorder.ObserveRequest(metrics.Request{
		Resource: r.resource.Endpoint(),
		Method:   r.method,
		Status:   status,
		Duration: elapsed,
		Kind:     kind,
	})
}

func parseApiError(status int, body []byte) *errs.ApiError {
	var content struct {
		Errors []errs.ErrorElement `json:"errors"`
	}
	if err := json.Unmarshal(body, &content); err == nil && len(content.Errors) > 0 {
		return &errs.ApiError{StatusCode: status, Errors: content.Errors}
	}

	if status >= http.StatusInternalServerError {
		return &errs.ApiError{StatusCode: status, Errors: []errs.ErrorElement{{
			Code:    "internalServerError",
			Message: "Houston, we have a problem.",
		}}}
	}
	return &errs.ApiError{StatusCode: status, Errors: []errs.ErrorElement{{
		Code:    "unknownError",
		Message: strings.TrimSpace(string(body)),
	}}}
}
