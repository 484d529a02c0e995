package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type call struct {
	kind  string
	name  string
	value float64
	tags  []string
}

type fakeProvider struct {
	calls []call
}

func (f *fakeProvider) Count(name string, value float64, tags []string) error {
	f.calls = append(f.calls, call{"count", name, value, tags})
	return nil
}

func (f *fakeProvider) Gauge(name string, value float64, tags []string) error {
	f.calls = append(f.calls, call{"gauge", name, value, tags})
	return nil
}

func (f *fakeProvider) Histogram(name string, value float64, tags []string) error {
	f.calls = append(f.calls, call{"histogram", name, value, tags})
	return nil
}

func TestRecorder_ObserveRequest(t *testing.T) {
	t.Run("Sucesso", func(t *testing.T) {
		p := &fakeProvider{}
		NewRecorder(p).ObserveRequest(Request{
			Resource: "transfer", Method: "GET", Status: 200, Duration: 15 * time.Millisecond,
		})

		assert.Len(t, p.calls, 2)
		assert.Equal(t, RequestCount, p.calls[0].name)
		assert.Equal(t, []string{"resource:transfer", "method:GET", "status:200"}, p.calls[0].tags)
		assert.Equal(t, "histogram", p.calls[1].kind)
		assert.Equal(t, 15.0, p.calls[1].value)
	})

	t.Run("Erro", func(t *testing.T) {
		p := &fakeProvider{}
		NewRecorder(p).ObserveRequest(Request{Resource: "transfer", Method: "POST", Status: 400, Kind: "api"})

		assert.Len(t, p.calls, 3)
		assert.Equal(t, RequestError, p.calls[2].name)
		assert.Contains(t, p.calls[2].tags, "kind:api")
	})

	t.Run("Sem provider", func(t *testing.T) {
		var r *Recorder
		r.ObserveRequest(Request{})
		NewRecorder(nil).ObservePage("transfer", 3)
	})
}

func TestRecorder_ObservePage(t *testing.T) {
	p := &fakeProvider{}
	NewRecorder(p).ObservePage("deposit", 42)

	assert.Len(t, p.calls, 2)
	assert.Equal(t, QueryPages, p.calls[0].name)
	assert.Equal(t, 42.0, p.calls[1].value)
}
