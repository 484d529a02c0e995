package config

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raywall/starkbank-go/pkg/config/injector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockS3Loader struct {
	GetObjectFunc func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

func (m *MockS3Loader) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return m.GetObjectFunc(ctx, params, optFns...)
}

type MockDynamoLoader struct {
	GetItemFunc func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

func (m *MockDynamoLoader) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return m.GetItemFunc(ctx, params, optFns...)
}

type fakeResolver struct{}

func (fakeResolver) Parameter(_ context.Context, path string) (string, error) {
	if path == "/starkbank/key" {
		return "PEM-FROM-SSM", nil
	}
	return "", errors.New("not found")
}

func (fakeResolver) Secret(context.Context, string) (string, error) {
	return "", errors.New("not found")
}

const validYAML = `
version: "1.0"
user:
  type: project
  id: "5656565656565656"
  environment: sandbox
  private_key: "${ssm./starkbank/key}"
client:
  timeout: 3s
  language: pt-BR
logging:
  enabled: true
  level: debug
  format: console
receipts:
  bucket: receipts-bucket
  prefix: starkbank
`

// --- Testes ---

func TestLoader_Load_Local(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starkbank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o600))

	loader := NewLoader(WithInjector(injector.New(injector.WithResolver(fakeResolver{}))))

	for _, source := range []string{path, "file://" + path} {
		cfg, err := loader.Load(context.Background(), source)
		require.NoError(t, err)

		assert.Equal(t, "5656565656565656", cfg.User.ID)
		assert.Equal(t, "PEM-FROM-SSM", cfg.User.PrivateKey)
		assert.Equal(t, "3s", cfg.Client.GetTimeout().String())
		assert.True(t, cfg.Receipts.Enabled())
	}
}

func TestLoader_Load_EnvOverride(t *testing.T) {
	t.Setenv("STARKBANK_ID", "1111")

	loader := NewLoader(WithInjector(injector.New(injector.WithResolver(fakeResolver{}))))
	cfg, err := loader.Parse(context.Background(), []byte(validYAML))
	require.NoError(t, err)
	assert.Equal(t, "1111", cfg.User.ID)
}

func TestLoader_S3(t *testing.T) {
	mockClient := &MockS3Loader{
		GetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			assert.Equal(t, "my-bucket", *params.Bucket)
			assert.Equal(t, "configs/starkbank.yaml", *params.Key)
			return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(validYAML))}, nil
		},
	}

	loader := NewLoader(
		WithS3(mockClient),
		WithInjector(injector.New(injector.WithResolver(fakeResolver{}))),
	)
	cfg, err := loader.Load(context.Background(), "s3://my-bucket/configs/starkbank.yaml")
	require.NoError(t, err)
	assert.Equal(t, "project", cfg.User.Type)
}

func TestLoader_DynamoDB(t *testing.T) {
	mockClient := &MockDynamoLoader{
		GetItemFunc: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "ConfigTable", *params.TableName)
			key := params.Key["Name"].(*types.AttributeValueMemberS).Value
			assert.Equal(t, "sdk", key)
			return &dynamodb.GetItemOutput{
				Item: map[string]types.AttributeValue{
					"Name": &types.AttributeValueMemberS{Value: "sdk"},
					"yaml": &types.AttributeValueMemberS{Value: validYAML},
				},
			}, nil
		},
	}

	loader := NewLoader(
		WithDynamoDB(mockClient),
		WithInjector(injector.New(injector.WithResolver(fakeResolver{}))),
	)
	cfg, err := loader.Load(context.Background(), "dynamodb://ConfigTable/sdk?col=yaml&pk=Name")
	require.NoError(t, err)
	assert.Equal(t, "sandbox", cfg.User.Environment)
}

func TestLoader_DynamoDB_NotFound(t *testing.T) {
	mockClient := &MockDynamoLoader{
		GetItemFunc: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}

	_, err := NewLoader(WithDynamoDB(mockClient)).Load(context.Background(), "dynamodb://ConfigTable/none")
	assert.Error(t, err)
}

func TestLoader_Parse_Errors(t *testing.T) {
	loader := NewLoader(WithInjector(injector.New(injector.WithResolver(fakeResolver{}))))

	_, err := loader.Parse(context.Background(), []byte("version: [\n"))
	assert.ErrorContains(t, err, "YAML malformado")

	_, err = loader.Parse(context.Background(), []byte("version: \"1.0\"\nuser:\n  type: robot\n"))
	assert.ErrorContains(t, err, "validação")
}
