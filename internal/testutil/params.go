package testutil

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RoundTrip serializa v em JSON, lê o resultado de volta como um
// checks.Params (números como json.Number, igual ao que chega da API) e
// reconstrói o valor com build.
func RoundTrip[T any](t testing.TB, v T, build func(checks.Params) (T, error)) T {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var params checks.Params
	require.NoError(t, decoder.Decode(&params))

	got, err := build(params)
	require.NoError(t, err, "reconstruindo a partir de %s", data)
	return got
}

// Without devolve uma cópia de params sem as chaves indicadas.
func Without(params checks.Params, keys ...string) checks.Params {
	out := make(checks.Params, len(params))
	for k, v := range params {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// RequireFields remove cada campo de params, um por vez, e confere que build
// falha com um ValidationError apontando para o campo esperado. A chave do
// mapa é o campo removido; o valor, o campo reportado.
func RequireFields[T any](t *testing.T, params checks.Params, build func(checks.Params) (T, error), fields map[string]string) {
	t.Helper()

	for removed, reported := range fields {
		t.Run("sem "+removed, func(t *testing.T) {
			_, err := build(Without(params, removed))
			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, reported, verr.Field)
		})
	}
}
