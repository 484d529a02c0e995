package metrics

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por outro backend sem alterar o gateway REST.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// Nomes das métricas emitidas pelo SDK.
const (
	RequestCount    = "starkbank.request.count"
	RequestDuration = "starkbank.request.duration_ms"
	RequestError    = "starkbank.request.error"
	QueryPages      = "starkbank.query.pages"
)
