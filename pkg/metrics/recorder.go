package metrics

import (
	"strconv"
	"time"
)

// Request descreve uma chamada HTTP concluída (com ou sem resposta).
type Request struct {
	Resource string
	Method   string
	Status   int // 0 quando não houve resposta (erro de rede)
	Duration time.Duration
	Kind     string // tipo do erro, vazio em caso de sucesso
}

// Recorder traduz eventos do gateway em métricas do Provider.
// Um Recorder com Provider nil descarta tudo.
type Recorder struct {
	provider Provider
}

// NewRecorder cria um Recorder sobre o provider informado.
func NewRecorder(provider Provider) *Recorder {
	return &Recorder{provider: provider}
}

// ObserveRequest registra contagem, latência e, se houver, o erro da chamada.
// Falhas do provider são ignoradas: métricas nunca quebram uma requisição.
func (r *Recorder) ObserveRequest(req Request) {
	if r == nil || r.provider == nil {
		return
	}
	tags := []string{
		"resource:" + req.Resource,
		"method:" + req.Method,
		"status:" + strconv.Itoa(req.Status),
	}

	_ = r.provider.Count(RequestCount, 1, tags)
	_ = r.provider.Histogram(RequestDuration, float64(req.Duration.Milliseconds()), tags)

	if req.Kind != "" {
		_ = r.provider.Count(RequestError, 1, append(tags, "kind:"+req.Kind))
	}
}

// ObservePage registra a busca de mais uma página de uma listagem.
func (r *Recorder) ObservePage(resource string, items int) {
	if r == nil || r.provider == nil {
		return
	}
	_ = r.provider.Count(QueryPages, 1, []string{"resource:" + resource})
	_ = r.provider.Gauge(QueryPages+".items", float64(items), []string{"resource:" + resource})
}
