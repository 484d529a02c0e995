// Package testutil reúne helpers compartilhados pelos testes dos recursos.
package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/key"
	"github.com/raywall/starkbank-go/rest"
	"github.com/raywall/starkbank-go/tools/emulator"
	"github.com/raywall/starkbank-go/user"
	"github.com/stretchr/testify/require"
)

// Project cria um projeto de sandbox com uma chave nova.
func Project(t testing.TB) *user.Project {
	t.Helper()

	privatePEM, _, err := key.Create()
	require.NoError(t, err)

	project, err := user.NewProject(checks.Params{
		"id":          "9999999999999999",
		"privateKey":  privatePEM,
		"environment": "sandbox",
	})
	require.NoError(t, err)
	return project
}

// Emulator sobe um emulador com verificação de assinatura e devolve um
// Client autenticado apontando para ele.
func Emulator(t testing.TB, opts ...emulator.Option) (*emulator.Server, *rest.Client) {
	t.Helper()

	project := Project(t)
	srv := emulator.New(opts...)
	srv.RegisterKey(project.AccessID(), project.PublicKey())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return srv, rest.New(rest.WithUser(project), rest.WithBaseURL(ts.URL))
}
