package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/raywall/starkbank-go/tools/emulator"
	"github.com/raywall/starkbank-go/tools/emulator/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_LoadsSeedsAndStarts(t *testing.T) {
	seeds := writeFile(t, "seeds.json", `{"dict-key": [{"id": "tony@starkbank.com", "type": "email"}]}`)

	var started *emulator.Server
	var addr string
	original := serverStarter
	serverStarter = func(_ context.Context, srv *emulator.Server, a string) error {
		started, addr = srv, a
		return nil
	}
	defer func() { serverStarter = original }()

	err := run(context.Background(), config.Settings{Port: 9090, Seeds: []string{seeds}}, zerolog.Nop())
	require.NoError(t, err)

	require.NotNil(t, started)
	assert.Equal(t, ":9090", addr)
	obj, ok := started.Store().Get("dict-key", "tony@starkbank.com")
	require.True(t, ok)
	assert.Equal(t, "email", obj["type"])
}

func TestRun_InvalidFiles(t *testing.T) {
	err := run(context.Background(), config.Settings{Seeds: []string{"/nao/existe.json"}}, zerolog.Nop())
	assert.Error(t, err)

	keys := writeFile(t, "keys.json", `{"project/1": "não é PEM"}`)
	err = run(context.Background(), config.Settings{Keys: keys}, zerolog.Nop())
	assert.Error(t, err)
}

func TestRun_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, config.Settings{Port: 0}, zerolog.Nop())
	assert.NoError(t, err)
}
