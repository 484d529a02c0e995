package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *SDKConfig) error {
	if err := cv.validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *SDKConfig) error {
	// workspace só faz sentido para organizações
	if cfg.User.WorkspaceID != "" && cfg.User.Type != "organization" {
		return fmt.Errorf("user.workspace_id só é permitido quando user.type é 'organization'")
	}

	if cfg.Client.Timeout != "" {
		d, err := time.ParseDuration(cfg.Client.Timeout)
		if err != nil {
			return fmt.Errorf("client.timeout inválido '%s': %w", cfg.Client.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("client.timeout deve ser positivo, recebido '%s'", cfg.Client.Timeout)
		}
	}

	if strings.Contains(cfg.Receipts.Prefix, "..") {
		return fmt.Errorf("receipts.prefix não pode conter '..'")
	}

	return nil
}
