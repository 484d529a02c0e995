package emulator

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"
)

// maxBodySize limita o corpo aceito pelo emulador.
const maxBodySize = 10 << 20

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// authenticate exige os headers de assinatura e, com verificação ligada,
// confere a assinatura contra a chave registrada para o Access-Id.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessID := r.Header.Get("Access-Id")
		accessTime := r.Header.Get("Access-Time")
		signature := r.Header.Get("Access-Signature")

		if accessID == "" || accessTime == "" || signature == "" {
			sendError(w, http.StatusUnauthorized, "invalidCredentials",
				"Access-Id, Access-Time and Access-Signature headers are required")
			return
		}
		if _, err := strconv.ParseInt(accessTime, 10, 64); err != nil {
			sendError(w, http.StatusUnauthorized, "invalidAccessTime", "Access-Time must be a unix timestamp")
			return
		}

		s.mu.RLock()
		verify := s.verify
		pub := s.keys[accessID]
		s.mu.RUnlock()

		if verify {
			body, err := readBody(r)
			if err != nil {
				sendError(w, http.StatusBadRequest, "invalidBody", "could not read request body")
				return
			}
			message := accessID + ":" + accessTime + ":" + r.Method + ":" + r.URL.RequestURI() + ":" + string(body)
			if pub == nil || !pub.Verify(message, signature) {
				sendError(w, http.StatusUnauthorized, "invalidSignature", "the provided signature is not valid")
				return
			}
		}

		if s.latency > 0 {
			select {
			case <-time.After(s.latency):
			case <-r.Context().Done():
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", r.Header.Get("X-Request-Id")).
			Int("status", rec.status).
			Dur("duration", time.Since(started)).
			Msg("emulator request")
	})
}
