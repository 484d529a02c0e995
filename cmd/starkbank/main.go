package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/raywall/starkbank-go/pkg/config"
	"github.com/raywall/starkbank-go/pkg/logger"
	"github.com/raywall/starkbank-go/pkg/observability"
	"github.com/raywall/starkbank-go/pkg/receipts"
	"github.com/raywall/starkbank-go/pkg/rules"
	"github.com/raywall/starkbank-go/rest"
	"github.com/rs/zerolog"
)

const usage = `uso: starkbank [-config fonte] <comando> [flags] <recurso> [id]

comandos:
  get  <recurso> <id>                          busca um objeto
  list [-limit N] [-where CEL] [-select CEL] <recurso>
                                               lista objetos (um JSON por linha)
  pdf  [-out arquivo] <recurso> <id>           baixa o comprovante

fonte: caminho local, file://, s3://bucket/chave ou dynamodb://tabela/chave
`

// archiver é o subconjunto de receipts.Archiver usado pelo comando pdf.
type archiver interface {
	Archive(ctx context.Context, resource, id string, content []byte) (string, error)
}

// Injetável para testes
var newArchiver = func(ctx context.Context, cfg config.ReceiptsConf) (archiver, error) {
	return receipts.NewFromConfig(ctx, cfg)
}

// cli guarda as dependências montadas a partir da configuração.
type cli struct {
	client   *rest.Client
	archiver archiver
	log      zerolog.Logger
	stdout   io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run devolve o código de saída do processo.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("starkbank", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { fmt.Fprint(stderr, usage) }

	source := global.String("config", envOr("STARKBANK_CONFIG", "starkbank.yaml"), "fonte da configuração")
	if err := global.Parse(args); err != nil {
		return 2
	}
	if global.NArg() < 1 {
		global.Usage()
		return 2
	}

	cfg, err := config.Load(ctx, *source)
	if err != nil {
		fmt.Fprintf(stderr, "erro: %v\n", err)
		return 1
	}

	app, closeFn, err := setup(ctx, cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "erro: %v\n", err)
		return 1
	}
	defer closeFn()

	command, cmdArgs := global.Arg(0), global.Args()[1:]
	switch command {
	case "get":
		err = app.get(ctx, cmdArgs)
	case "list":
		err = app.list(ctx, cmdArgs, stderr)
	case "pdf":
		err = app.pdf(ctx, cmdArgs, stderr)
	default:
		fmt.Fprintf(stderr, "comando desconhecido: %s\n\n%s", command, usage)
		return 2
	}

	if err != nil {
		app.log.Error().Err(err).Str("command", command).Msg("comando falhou")
		fmt.Fprintf(stderr, "erro: %v\n", err)
		return 1
	}
	return 0
}

func setup(ctx context.Context, cfg *config.SDKConfig, stdout, stderr io.Writer) (*cli, func(), error) {
	log := logger.ConfigureTo(cfg.Logging, stderr)

	u, err := cfg.User.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("credencial inválida: %w", err)
	}

	provider, err := observability.SetupMetrics(cfg.Metrics)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {}
	if closer, ok := provider.(io.Closer); ok {
		closeFn = func() { _ = closer.Close() }
	}

	opts := []rest.Option{
		rest.WithUser(u),
		rest.WithTimeout(cfg.Client.GetTimeout()),
		rest.WithLogger(log),
		rest.WithMetrics(provider),
	}
	if cfg.Client.BaseURL != "" {
		opts = append(opts, rest.WithBaseURL(cfg.Client.BaseURL))
	}
	if cfg.Client.Language != "" {
		opts = append(opts, rest.WithLanguage(cfg.Client.Language))
	}

	app := &cli{client: rest.New(opts...), log: log, stdout: stdout}

	if cfg.Receipts.Enabled() {
		app.archiver, err = newArchiver(ctx, cfg.Receipts)
		if err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("falha ao preparar arquivamento: %w", err)
		}
	}
	return app, closeFn, nil
}

func lookup(name string) (commands, error) {
	cmds, ok := registry[name]
	if !ok {
		return commands{}, fmt.Errorf("recurso desconhecido %q (disponíveis: %s)", name, strings.Join(resourceNames(), ", "))
	}
	return cmds, nil
}

func (a *cli) get(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("get exige <recurso> <id>")
	}
	cmds, err := lookup(args[0])
	if err != nil {
		return err
	}
	item, err := cmds.get(ctx, a.client, args[1])
	if err != nil {
		return err
	}
	return a.print(item)
}

func (a *cli) list(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	limit := fs.Int("limit", 0, "máximo de itens buscados na API (0 = todos)")
	where := fs.String("where", "", "filtro CEL sobre item (ex: item.amount > 1000)")
	sel := fs.String("select", "", "expressão CEL exibida no lugar do item (ex: item.id)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("list exige <recurso>")
	}

	cmds, err := lookup(fs.Arg(0))
	if err != nil {
		return err
	}

	rm, err := rules.NewManager()
	if err != nil {
		return err
	}
	selection, err := rm.NewSelection(*where, *sel)
	if err != nil {
		return err
	}

	// limit é aplicado na API, antes do filtro CEL
	for item, err := range cmds.list(ctx, a.client, *limit) {
		if err != nil {
			return err
		}
		value, ok, err := selection.Apply(item)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := a.print(value); err != nil {
			return err
		}
	}
	return nil
}

func (a *cli) pdf(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("pdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "", "arquivo de destino (padrão: <recurso>-<id>.pdf)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("pdf exige <recurso> <id>")
	}
	resource, id := fs.Arg(0), fs.Arg(1)

	cmds, err := lookup(resource)
	if err != nil {
		return err
	}
	if cmds.pdf == nil {
		return fmt.Errorf("%s não possui comprovante em PDF", resource)
	}

	content, err := cmds.pdf(ctx, a.client, id)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = resource + "-" + id + ".pdf"
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", path, err)
	}
	a.log.Info().Str("path", path).Int("bytes", len(content)).Msg("comprovante salvo")
	fmt.Fprintln(a.stdout, path)

	if a.archiver != nil {
		uri, err := a.archiver.Archive(ctx, resource, id, content)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, uri)
	}
	return nil
}

func (a *cli) print(value any) error {
	return json.NewEncoder(a.stdout).Encode(value)
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
