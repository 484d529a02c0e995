// Package secrets resolve valores guardados no AWS Systems Manager Parameter
// Store e no AWS Secrets Manager. É usado pelo injector para preencher a chave
// privada e outros campos sensíveis da configuração do SDK.
package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ErrNotFound indica que o parâmetro ou segredo existe mas não tem valor.
var ErrNotFound = errors.New("secrets: value not found")

// Interfaces para abstrair o SDK da AWS (permite mocking)
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

var (
	awsCfg  aws.Config
	awsOnce sync.Once
	awsErr  error
)

// AWSConfig carrega a configuração da AWS (env vars, profile, IAM role) uma única vez.
func AWSConfig(ctx context.Context, region string) (aws.Config, error) {
	awsOnce.Do(func() {
		opts := []func(*config.LoadOptions) error{}
		if region != "" {
			opts = append(opts, config.WithRegion(region))
		}
		awsCfg, awsErr = config.LoadDefaultConfig(ctx, opts...)
	})
	return awsCfg, awsErr
}

// Resolver busca valores no SSM e no Secrets Manager.
type Resolver struct {
	ssm     SSMClient
	secrets SecretsClient
}

// NewResolver monta um Resolver com clientes explícitos (útil em testes).
func NewResolver(ssmClient SSMClient, secretsClient SecretsClient) *Resolver {
	return &Resolver{ssm: ssmClient, secrets: secretsClient}
}

// NewAWSResolver monta um Resolver com os clientes reais da região informada.
func NewAWSResolver(ctx context.Context, region string) (*Resolver, error) {
	cfg, err := AWSConfig(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar config AWS: %w", err)
	}
	return NewResolver(ssm.NewFromConfig(cfg), secretsmanager.NewFromConfig(cfg)), nil
}

// Parameter lê um parâmetro do Parameter Store, sempre com descriptografia.
func (r *Resolver) Parameter(ctx context.Context, path string) (string, error) {
	decrypt := true
	out, err := r.ssm.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &path,
		WithDecryption: &decrypt,
	})
	if err != nil {
		return "", fmt.Errorf("erro no SSM GetParameter: %w", err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return *out.Parameter.Value, nil
}

// Secret lê um segredo do Secrets Manager.
//
// O id aceita o sufixo "#campo": quando o segredo é um JSON, devolve apenas o
// valor daquele campo (ex: "starkbank/prod#privateKey").
func (r *Resolver) Secret(ctx context.Context, id string) (string, error) {
	secretID, field, _ := strings.Cut(id, "#")

	out, err := r.secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretID,
	})
	if err != nil {
		return "", fmt.Errorf("erro no SecretsManager: %w", err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, secretID)
	}

	val := *out.SecretString
	if field == "" {
		return val, nil
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return "", fmt.Errorf("segredo %s não é JSON: %w", secretID, err)
	}
	fieldVal, ok := data[field]
	if !ok {
		return "", fmt.Errorf("%w: %s#%s", ErrNotFound, secretID, field)
	}
	return fmt.Sprintf("%v", fieldVal), nil
}
