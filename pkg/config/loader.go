package config

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raywall/starkbank-go/pkg/config/injector"
	"gopkg.in/yaml.v3"
)

// Load é o atalho usado pela CLI e pelos exemplos.
func Load(ctx context.Context, source string) (*SDKConfig, error) {
	return NewLoader().Load(ctx, source)
}

// --- Interfaces para Mocking ---

type S3Downloader interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type DynamoGetter interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Loader suporta múltiplas fontes de configuração (Local, S3, DynamoDB).
type Loader struct {
	validator *ConfigValidator
	injector  *injector.Injector
	s3        S3Downloader
	dynamo    DynamoGetter
}

// LoaderOption configura o Loader.
type LoaderOption func(*Loader)

// WithS3 injeta o cliente S3 (por padrão criado a partir da config AWS).
func WithS3(client S3Downloader) LoaderOption {
	return func(l *Loader) { l.s3 = client }
}

// WithDynamoDB injeta o cliente DynamoDB.
func WithDynamoDB(client DynamoGetter) LoaderOption {
	return func(l *Loader) { l.dynamo = client }
}

// WithInjector troca o injector (ex: com um resolvedor de segredos falso).
func WithInjector(inj *injector.Injector) LoaderOption {
	return func(l *Loader) { l.injector = inj }
}

// NewLoader cria um Loader com validador e injetor padrão.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		validator: NewValidator(),
		injector:  injector.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load detecta o esquema da fonte e carrega a configuração.
func (l *Loader) Load(ctx context.Context, source string) (*SDKConfig, error) {
	var rawData []byte
	var err error

	switch {
	case strings.HasPrefix(source, "s3://"):
		if l.s3 == nil {
			cfg, cfgErr := awsconfig.LoadDefaultConfig(ctx)
			if cfgErr != nil {
				return nil, fmt.Errorf("falha ao carregar config AWS: %w", cfgErr)
			}
			l.s3 = s3.NewFromConfig(cfg)
		}
		rawData, err = l.loadFromS3(ctx, source)

	case strings.HasPrefix(source, "dynamodb://"):
		if l.dynamo == nil {
			cfg, cfgErr := awsconfig.LoadDefaultConfig(ctx)
			if cfgErr != nil {
				return nil, fmt.Errorf("falha ao carregar config AWS: %w", cfgErr)
			}
			l.dynamo = dynamodb.NewFromConfig(cfg)
		}
		rawData, err = l.loadFromDynamoDB(ctx, source)

	default:
		rawData, err = l.loadFromFile(source)
	}

	if err != nil {
		return nil, fmt.Errorf("falha leitura config (%s): %w", source, err)
	}

	return l.Parse(ctx, rawData)
}

func (l *Loader) loadFromFile(path string) ([]byte, error) {
	// Suporta tanto "file://config.yaml" quanto apenas "config.yaml"
	return os.ReadFile(strings.TrimPrefix(path, "file://"))
}

func (l *Loader) loadFromS3(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL S3 inválida: %w", err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")

	out, err := l.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// loadFromDynamoDB lê dynamodb://tabela/chave?col=config&pk=id
func (l *Loader) loadFromDynamoDB(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL DynamoDB inválida: %w", err)
	}

	tableName := u.Host
	pkValue := strings.TrimPrefix(u.Path, "/")

	colName := u.Query().Get("col")
	if colName == "" {
		colName = "config"
	}
	pkName := u.Query().Get("pk")
	if pkName == "" {
		pkName = "id"
	}

	out, err := l.dynamo.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &tableName,
		Key: map[string]types.AttributeValue{
			pkName: &types.AttributeValueMemberS{Value: pkValue},
		},
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("item não encontrado no DynamoDB")
	}

	var itemMap map[string]any
	if err := attributevalue.UnmarshalMap(out.Item, &itemMap); err != nil {
		return nil, err
	}

	content, ok := itemMap[colName].(string)
	if !ok {
		return nil, fmt.Errorf("coluna '%s' inválida ou vazia no DynamoDB", colName)
	}
	return []byte(content), nil
}

// Parse converte o YAML, resolve variáveis e valida o resultado.
func (l *Loader) Parse(ctx context.Context, data []byte) (*SDKConfig, error) {
	var cfg SDKConfig

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("YAML malformado: %w", err)
	}

	if err := l.injector.Inject(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("falha na injeção de variáveis: %w", err)
	}

	if err := l.validator.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validação da configuração falhou: %w", err)
	}

	return &cfg, nil
}
