package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/raywall/starkbank-go/pkg/config"
	"github.com/rs/zerolog"
)

// Configure inicializa o logger baseando-se na configuração do YAML.
// O destino padrão é stderr, deixando stdout livre para a saída da CLI.
func Configure(cfg config.LoggingConf) zerolog.Logger {
	return ConfigureTo(cfg, os.Stderr)
}

// ConfigureTo é Configure com destino explícito.
func ConfigureTo(cfg config.LoggingConf, out io.Writer) zerolog.Logger {
	// Define o nível de log (default: info)
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	output := out
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("component", "starkbank").
		Logger()
}
