package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	sdkconfig "github.com/raywall/starkbank-go/pkg/config"
	"github.com/raywall/starkbank-go/pkg/logger"
	"github.com/raywall/starkbank-go/tools/emulator"
	"github.com/raywall/starkbank-go/tools/emulator/config"
	"github.com/rs/zerolog"
)

// Injetável para testes
var serverStarter = func(ctx context.Context, srv *emulator.Server, addr string) error {
	return srv.ListenAndServe(ctx, addr)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings, err := config.Load()
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("configuração do emulador inválida")
	}

	log := newLogger(settings)
	if err := run(ctx, settings, log); err != nil {
		log.Fatal().Err(err).Msg("emulador encerrado com erro")
	}
}

func newLogger(settings config.Settings) zerolog.Logger {
	format := "console"
	if settings.LogJSON {
		format = "json"
	}
	return logger.Configure(sdkconfig.LoggingConf{
		Enabled: true,
		Level:   settings.LogLevel,
		Format:  format,
	})
}

// run contém a lógica de orquestração
func run(ctx context.Context, settings config.Settings, log zerolog.Logger) error {
	srv, err := build(settings, log)
	if err != nil {
		return err
	}
	return serverStarter(ctx, srv, settings.Addr())
}

func build(settings config.Settings, log zerolog.Logger) (*emulator.Server, error) {
	opts := []emulator.Option{
		emulator.WithLogger(log),
		emulator.WithLatency(settings.Latency),
	}

	if settings.Keys != "" {
		keys, err := config.LoadKeys(settings.Keys)
		if err != nil {
			return nil, err
		}
		opts = append(opts, emulator.WithVerification(keys))
		log.Info().Int("keys", len(keys)).Msg("verificação de assinatura ligada")
	}

	srv := emulator.New(opts...)

	if len(settings.Seeds) > 0 {
		seeds, err := config.LoadSeeds(settings.Seeds...)
		if err != nil {
			return nil, err
		}
		srv.Store().Load(seeds)
		for endpoint, items := range seeds {
			log.Info().Str("endpoint", endpoint).Int("items", len(items)).Msg("seeds carregadas")
		}
	}
	return srv, nil
}
