package injector

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/raywall/starkbank-go/pkg/secrets"
)

// Regex para capturar padrões ${tipo.chave}
// Ex: ${env.STARKBANK_ID}, ${ssm./starkbank/private-key}, ${secret.starkbank/prod#privateKey}
var pattern = regexp.MustCompile(`\$\{(env|ssm|secret)\.([^}]+)\}`)

// Resolver busca valores remotos. *secrets.Resolver satisfaz esta interface.
type Resolver interface {
	Parameter(ctx context.Context, path string) (string, error)
	Secret(ctx context.Context, id string) (string, error)
}

type Injector struct {
	resolver Resolver
}

// Option configura o Injector.
type Option func(*Injector)

// WithResolver troca o resolvedor AWS (usado em testes).
func WithResolver(r Resolver) Option {
	return func(i *Injector) { i.resolver = r }
}

// New cria um Injector; sem opções, os clientes AWS são criados sob demanda.
func New(opts ...Option) *Injector {
	i := &Injector{}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Inject percorre target (ponteiro para struct) aplicando tags env e
// resolvendo placeholders em strings, slices e mapas.
func (i *Injector) Inject(ctx context.Context, target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("target deve ser um ponteiro para struct não nulo")
	}
	return i.injectRecursive(ctx, v.Elem())
}

func (i *Injector) injectRecursive(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for k := 0; k < t.NumField(); k++ {
			field := t.Field(k)
			value := v.Field(k)
			if !value.CanSet() {
				continue
			}

			// 1. Tags (env:"...") têm prioridade sobre o YAML
			if tag := field.Tag.Get("env"); tag != "" && value.Kind() == reflect.String {
				if val, exists := os.LookupEnv(tag); exists {
					value.SetString(val)
				}
			}

			// 2. Recursão (strings incluídas)
			if err := i.injectRecursive(ctx, value); err != nil {
				return fmt.Errorf("%s: %w", field.Name, err)
			}
		}

	case reflect.String:
		if !v.CanSet() {
			return nil
		}
		newValue, err := i.interpolateString(ctx, v.String())
		if err != nil {
			return err
		}
		v.SetString(newValue)

	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String && !v.IsNil() {
			return i.injectMap(ctx, v)
		}

	case reflect.Ptr:
		if !v.IsNil() {
			return i.injectRecursive(ctx, v.Elem())
		}

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			if err := i.injectRecursive(ctx, v.Index(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// interpolateString realiza a substituição baseada em Regex
func (i *Injector) interpolateString(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var err error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		if err != nil {
			return match
		}
		sub := pattern.FindStringSubmatch(match)
		val, resolveErr := i.fetchValue(ctx, sub[1], sub[2])
		if resolveErr != nil {
			err = resolveErr
			return match
		}
		return val
	})

	return result, err
}

// injectMap lida com mapas dinâmicos (map[string]string ou map[string]any)
func (i *Injector) injectMap(ctx context.Context, v reflect.Value) error {
	iter := v.MapRange()
	updates := make(map[string]reflect.Value)

	for iter.Next() {
		key := iter.Key()
		elem := iter.Value()
		if elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		if !elem.IsValid() {
			continue
		}

		switch elem.Kind() {
		case reflect.String:
			newVal, err := i.interpolateString(ctx, elem.String())
			if err != nil {
				return err
			}
			updates[key.String()] = reflect.ValueOf(newVal).Convert(v.Type().Elem())
		case reflect.Map:
			if err := i.injectMap(ctx, elem); err != nil {
				return err
			}
		}
	}

	for k, val := range updates {
		v.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), val)
	}
	return nil
}

// fetchValue centraliza a busca de dados
func (i *Injector) fetchValue(ctx context.Context, sourceType, key string) (string, error) {
	if sourceType == "env" {
		// Variável não encontrada retorna vazio
		return os.Getenv(key), nil
	}

	if i.resolver == nil {
		r, err := secrets.NewAWSResolver(ctx, os.Getenv("AWS_REGION"))
		if err != nil {
			return "", err
		}
		i.resolver = r
	}

	switch sourceType {
	case "ssm":
		return i.resolver.Parameter(ctx, key)
	case "secret":
		return i.resolver.Secret(ctx, key)
	}
	return "", fmt.Errorf("fonte desconhecida: %s", sourceType)
}
