package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raywall/starkbank-go/key"
	"github.com/raywall/starkbank-go/pkg/config"
	"github.com/raywall/starkbank-go/tools/emulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArchiver struct {
	resource, id string
	content      []byte
}

func (f *fakeArchiver) Archive(_ context.Context, resource, id string, content []byte) (string, error) {
	f.resource, f.id, f.content = resource, id, content
	return "s3://receipts/" + resource + "/" + id + ".pdf", nil
}

// setupCLI sobe um emulador e escreve um YAML apontando para ele.
func setupCLI(t *testing.T, extra string) (*emulator.Server, string) {
	t.Helper()

	privatePEM, publicPEM, err := key.Create()
	require.NoError(t, err)
	pub, err := key.ParsePublicKey(publicPEM)
	require.NoError(t, err)

	srv := emulator.New()
	srv.RegisterKey("project/1234567890", pub)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	indented := strings.ReplaceAll(strings.TrimSpace(privatePEM), "\n", "\n    ")
	content := fmt.Sprintf(`
version: "1.0"
user:
  type: project
  id: "1234567890"
  environment: sandbox
  private_key: |
    %s
client:
  base_url: %s
  timeout: 2s
%s`, indented, ts.URL, extra)

	path := filepath.Join(t.TempDir(), "starkbank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return srv, path
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestGet(t *testing.T) {
	srv, cfg := setupCLI(t, "")
	srv.Store().Seed("transfer", emulator.Object{"id": "42", "amount": 1500, "name": "Tony"})

	code, out, errOut := execute(t, "-config", cfg, "get", "transfer", "42")
	require.Equal(t, 0, code, errOut)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "42", got["id"])
	assert.Equal(t, float64(1500), got["amount"])
}

func TestList_WhereAndSelect(t *testing.T) {
	srv, cfg := setupCLI(t, "")
	srv.Store().Seed("transfer",
		emulator.Object{"id": "1", "amount": 100, "status": "success"},
		emulator.Object{"id": "2", "amount": 5000, "status": "success"},
		emulator.Object{"id": "3", "amount": 9000, "status": "failed"},
	)

	code, out, errOut := execute(t, "-config", cfg, "list", "-where", "item.amount > 1000", "-select", "item.id", "transfer")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "\"2\"\n\"3\"\n", out)

	code, out, _ = execute(t, "-config", cfg, "list", "-limit", "1", "transfer")
	require.Equal(t, 0, code)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestPDF_Archives(t *testing.T) {
	srv, cfg := setupCLI(t, "receipts:\n  bucket: receipts\n")
	srv.Store().Seed("utility-payment", emulator.Object{"id": "77", "description": "luz"})

	fake := &fakeArchiver{}
	original := newArchiver
	newArchiver = func(context.Context, config.ReceiptsConf) (archiver, error) { return fake, nil }
	defer func() { newArchiver = original }()

	target := filepath.Join(t.TempDir(), "comprovante.pdf")
	code, out, errOut := execute(t, "-config", cfg, "pdf", "-out", target, "utility-payment", "77")
	require.Equal(t, 0, code, errOut)

	saved, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, emulator.PDF("utility-payment", "77"), saved)

	assert.Equal(t, "utility-payment", fake.resource)
	assert.Equal(t, "77", fake.id)
	assert.Equal(t, saved, fake.content)
	assert.Contains(t, out, "s3://receipts/utility-payment/77.pdf")
}

func TestErrors(t *testing.T) {
	_, cfg := setupCLI(t, "")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"sem comando", []string{"-config", cfg}, 2},
		{"comando desconhecido", []string{"-config", cfg, "delete", "transfer", "1"}, 2},
		{"recurso desconhecido", []string{"-config", cfg, "get", "boleto", "1"}, 1},
		{"id inexistente", []string{"-config", cfg, "get", "transfer", "404"}, 1},
		{"recurso sem pdf", []string{"-config", cfg, "pdf", "deposit", "1"}, 1},
		{"where inválido", []string{"-config", cfg, "list", "-where", "item.amount >", "transfer"}, 1},
		{"config inexistente", []string{"-config", "/nao/existe.yaml", "get", "transfer", "1"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := execute(t, tt.args...)
			assert.Equal(t, tt.code, code)
		})
	}
}
