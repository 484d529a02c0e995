package config

import "time"

// DefaultTimeout é usado quando client.timeout não é informado.
const DefaultTimeout = 15 * time.Second

// SDKConfig representa a estrutura raiz do arquivo YAML consumido pela CLI,
// pelo emulador e por aplicações que preferem configurar o SDK por arquivo.
type SDKConfig struct {
	Version  string       `yaml:"version" validate:"required"`
	User     UserConf     `yaml:"user" validate:"required"`
	Client   ClientConf   `yaml:"client"`
	Logging  LoggingConf  `yaml:"logging"`
	Metrics  MetricsConf  `yaml:"metrics"`
	Receipts ReceiptsConf `yaml:"receipts"`
}

// UserConf descreve a credencial (Project ou Organization).
// private_key aceita o PEM literal ou um placeholder ${ssm.path} / ${secret.id}.
type UserConf struct {
	Type        string `yaml:"type" validate:"required,oneof=project organization"`
	ID          string `yaml:"id" env:"STARKBANK_ID" validate:"required"`
	Environment string `yaml:"environment" env:"STARKBANK_ENVIRONMENT" validate:"required,oneof=sandbox production"`
	PrivateKey  string `yaml:"private_key" env:"STARKBANK_PRIVATE_KEY" validate:"required"`
	WorkspaceID string `yaml:"workspace_id"`
}

type ClientConf struct {
	BaseURL  string `yaml:"base_url" env:"STARKBANK_BASE_URL" validate:"omitempty,url"`
	Timeout  string `yaml:"timeout"` // Ex: "500ms", "15s"
	Language string `yaml:"language" validate:"omitempty,oneof=en-US pt-BR"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"omitempty,oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool     `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string   `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string   `yaml:"namespace"`
	Tags      []string `yaml:"tags"`
}

// ReceiptsConf habilita o arquivamento de PDFs no S3. Sem bucket, desligado.
type ReceiptsConf struct {
	Bucket string `yaml:"bucket" env:"STARKBANK_RECEIPTS_BUCKET"`
	Prefix string `yaml:"prefix"`
	Region string `yaml:"region"`
}

// GetTimeout interpreta Timeout; valores inválidos caem em DefaultTimeout.
func (c ClientConf) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// Enabled informa se há bucket configurado para os comprovantes.
func (r ReceiptsConf) Enabled() bool {
	return r.Bucket != ""
}
