package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payment struct {
	ID     string   `json:"id"`
	Amount int64    `json:"amount"`
	Status string   `json:"status"`
	Tags   []string `json:"tags,omitempty"`
}

func TestMatch(t *testing.T) {
	rm, err := NewManager()
	require.NoError(t, err)

	item := payment{ID: "1", Amount: 1500, Status: "success", Tags: []string{"pix"}}

	tests := []struct {
		expr string
		want bool
	}{
		{"item.amount > 1000", true},
		{"item.amount > 1000 && item.status == 'failed'", false},
		{"'pix' in item.tags", true},
		{"item.id.startsWith('1')", true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			prg, err := rm.Compile(tt.expr)
			require.NoError(t, err)
			got, err := prg.Match(item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch_Errors(t *testing.T) {
	rm, err := NewManager()
	require.NoError(t, err)

	_, err = rm.Compile("item.amount >")
	assert.Error(t, err)

	prg, err := rm.Compile("item.amount * 2")
	require.NoError(t, err)
	_, err = prg.Match(payment{Amount: 1})
	assert.Error(t, err, "resultado não booleano deve falhar")

	// expressão vazia aprova tudo
	empty, err := rm.Compile("")
	require.NoError(t, err)
	ok, err := empty.Match(payment{})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEval(t *testing.T) {
	rm, err := NewManager()
	require.NoError(t, err)

	prg, err := rm.Compile("item.amount * 2")
	require.NoError(t, err)

	res, err := prg.Eval(map[string]any{"amount": 100})
	require.NoError(t, err)
	assert.Equal(t, int64(200), res)
}

func TestSelection(t *testing.T) {
	rm, err := NewManager()
	require.NoError(t, err)

	sel, err := rm.NewSelection("item.status == 'success'", "item.id")
	require.NoError(t, err)

	value, ok, err := sel.Apply(payment{ID: "42", Status: "success"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", value)

	_, ok, err = sel.Apply(payment{ID: "43", Status: "failed"})
	require.NoError(t, err)
	assert.False(t, ok)

	passthrough, err := rm.NewSelection("", "")
	require.NoError(t, err)
	item := payment{ID: "7"}
	value, ok, err = passthrough.Apply(item)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, item, value)
}
