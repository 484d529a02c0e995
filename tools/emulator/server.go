package emulator

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/raywall/starkbank-go/errs"
	"github.com/raywall/starkbank-go/key"
	"github.com/raywall/starkbank-go/rest"
	"github.com/rs/zerolog"
)

const maxPageSize = 100

// Server implementa o protocolo da API sobre um Store em memória.
type Server struct {
	store   *Store
	logger  zerolog.Logger
	latency time.Duration

	mu     sync.RWMutex
	verify bool
	keys   map[string]*key.PublicKey
}

// Option configura o Server.
type Option func(*Server)

// WithStore usa um Store já populado em vez de um vazio.
func WithStore(store *Store) Option {
	return func(s *Server) { s.store = store }
}

// WithLogger registra cada requisição recebida.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithLatency atrasa todas as respostas (útil para testar timeouts).
func WithLatency(d time.Duration) Option {
	return func(s *Server) { s.latency = d }
}

// WithVerification liga a conferência da assinatura. Requisições de
// Access-Id sem chave registrada são rejeitadas.
func WithVerification(keys map[string]*key.PublicKey) Option {
	return func(s *Server) {
		s.verify = true
		for accessID, pub := range keys {
			s.keys[accessID] = pub
		}
	}
}

// New cria um Server vazio.
func New(opts ...Option) *Server {
	s := &Server{
		store:  NewStore(),
		logger: zerolog.Nop(),
		keys:   make(map[string]*key.PublicKey),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store expõe o armazenamento (ex: para seeds em testes).
func (s *Server) Store() *Store {
	return s.store
}

// RegisterKey associa uma chave pública a um Access-Id e liga a verificação.
func (s *Server) RegisterKey(accessID string, pub *key.PublicKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verify = true
	s.keys[accessID] = pub
}

// Handler monta o roteador. As rotas respondem com e sem o prefixo /v2.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.logRequests, s.authenticate)

	s.routes(router.PathPrefix("/v2").Subrouter())
	s.routes(router)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendError(w, http.StatusNotFound, "invalidPath", "path not found: "+r.URL.Path)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendError(w, http.StatusMethodNotAllowed, "invalidMethod", r.Method+" not allowed on "+r.URL.Path)
	})
	return router
}

func (s *Server) routes(router *mux.Router) {
	// logs primeiro: "/utility-payment/log" também casaria com "/{resource}/{id}"
	router.HandleFunc("/{parent}/log", s.list).Methods(http.MethodGet)
	router.HandleFunc("/{parent}/log/{id}", s.get).Methods(http.MethodGet)

	router.HandleFunc("/{resource}", s.create).Methods(http.MethodPost)
	router.HandleFunc("/{resource}", s.list).Methods(http.MethodGet)
	router.HandleFunc("/{resource}/{id}", s.get).Methods(http.MethodGet)
	router.HandleFunc("/{resource}/{id}", s.patch).Methods(http.MethodPatch)
	router.HandleFunc("/{resource}/{id}", s.remove).Methods(http.MethodDelete)
	router.HandleFunc("/{resource}/{id}/pdf", s.pdf).Methods(http.MethodGet)
}

// ListenAndServe atende em addr até ctx ser cancelado.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info().Str("addr", addr).Msg("emulador iniciado")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("erro no emulador (%s): %w", addr, err)
	}
	return nil
}

func endpointOf(r *http.Request) string {
	vars := mux.Vars(r)
	if parent, ok := vars["parent"]; ok {
		return parent + "/log"
	}
	return vars["resource"]
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	ep := endpointOf(r)
	res := rest.ResourceFromEndpoint(ep)

	var envelope map[string]json.RawMessage
	body, err := readBody(r)
	if err == nil {
		err = decode(body, &envelope)
	}
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalidJson", "request body must be a json object")
		return
	}

	if raw, ok := envelope[res.Plural()]; ok {
		var items []Object
		if err := decode(raw, &items); err != nil {
			sendError(w, http.StatusBadRequest, "invalidJson", res.Plural()+" must be a list of objects")
			return
		}
		created := make([]Object, 0, len(items))
		for _, item := range items {
			obj := s.store.Insert(ep, item)
			s.appendLog(ep, res, obj, "created")
			created = append(created, obj)
		}
		sendResponse(w, http.StatusOK, map[string]any{
			res.Plural(): created,
			"message":    fmt.Sprintf("%d %s successfully created", len(created), res.Plural()),
		})
		return
	}

	var item Object
	if err := decode(body, &item); err != nil {
		sendError(w, http.StatusBadRequest, "invalidJson", "request body must be a json object")
		return
	}
	obj := s.store.Insert(ep, item)
	s.appendLog(ep, res, obj, "created")
	sendResponse(w, http.StatusOK, map[string]any{
		res.Singular(): obj,
		"message":      res.Name + " successfully created",
	})
}

// appendLog registra o evento no endpoint de log do recurso, com o objeto
// embutido sob a chave singular (ex: utility-payment/log -> "payment").
func (s *Server) appendLog(ep string, res rest.Resource, obj Object, eventType string) {
	if strings.HasSuffix(ep, "/log") {
		return
	}
	s.store.Append(ep+"/log", Object{
		"type":         eventType,
		"errors":       []any{},
		res.Singular(): obj,
	})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	ep := endpointOf(r)
	res := rest.ResourceFromEndpoint(ep)
	id := mux.Vars(r)["id"]

	obj, ok := s.store.Get(ep, id)
	if !ok {
		sendNotFound(w, ep, id)
		return
	}
	sendResponse(w, http.StatusOK, map[string]any{res.Singular(): obj})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	ep := endpointOf(r)
	res := rest.ResourceFromEndpoint(ep)
	query := r.URL.Query()

	limit := maxPageSize
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			sendError(w, http.StatusBadRequest, "invalidLimit", "limit must be a positive integer")
			return
		}
		limit = min(n, maxPageSize)
	}

	offset, err := decodeCursor(query.Get("cursor"))
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalidCursor", "cursor is invalid")
		return
	}

	var filtered []Object
	for _, obj := range s.store.List(ep) {
		if matches(obj, query) {
			filtered = append(filtered, obj)
		}
	}

	page := []Object{}
	if offset < len(filtered) {
		page = filtered[offset:min(offset+limit, len(filtered))]
	}

	var cursor any
	if offset+limit < len(filtered) {
		cursor = encodeCursor(offset + limit)
	}

	sendResponse(w, http.StatusOK, map[string]any{
		res.Plural(): page,
		"cursor":     cursor,
	})
}

func (s *Server) patch(w http.ResponseWriter, r *http.Request) {
	ep := endpointOf(r)
	res := rest.ResourceFromEndpoint(ep)
	id := mux.Vars(r)["id"]

	var patch Object
	body, err := readBody(r)
	if err == nil {
		err = decode(body, &patch)
	}
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalidJson", "request body must be a json object")
		return
	}

	obj, ok := s.store.Patch(ep, id, patch)
	if !ok {
		sendNotFound(w, ep, id)
		return
	}

	eventType := "updated"
	if status, ok := patch["status"].(string); ok {
		eventType = status
	}
	s.appendLog(ep, res, obj, eventType)
	sendResponse(w, http.StatusOK, map[string]any{res.Singular(): obj})
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	ep := endpointOf(r)
	res := rest.ResourceFromEndpoint(ep)
	id := mux.Vars(r)["id"]

	obj, ok := s.store.Delete(ep, id)
	if !ok {
		sendNotFound(w, ep, id)
		return
	}
	s.appendLog(ep, res, obj, "canceled")
	sendResponse(w, http.StatusOK, map[string]any{res.Singular(): obj})
}

func (s *Server) pdf(w http.ResponseWriter, r *http.Request) {
	ep := endpointOf(r)
	id := mux.Vars(r)["id"]

	if _, ok := s.store.Get(ep, id); !ok {
		sendNotFound(w, ep, id)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(PDF(ep, id))
}

// PDF gera o documento mínimo devolvido pelo emulador.
func PDF(endpoint, id string) []byte {
	return []byte(fmt.Sprintf("%%PDF-1.4\n%% %s %s\n%%%%EOF\n", endpoint, id))
}

func encodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte("offset:" + strconv.Itoa(offset)))
}

func decodeCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimPrefix(string(raw), "offset:"))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("cursor inválido: %q", cursor)
	}
	return n, nil
}

func decode(data []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(target)
}

func sendNotFound(w http.ResponseWriter, ep, id string) {
	sendError(w, http.StatusNotFound, "invalidId", fmt.Sprintf("%s id %q not found", ep, id))
}

func sendError(w http.ResponseWriter, status int, code, message string) {
	sendResponse(w, status, map[string]any{
		"errors": []errs.ErrorElement{{Code: code, Message: message}},
	})
}

func sendResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}
