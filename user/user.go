// Package user define as credenciais que assinam as requisições: Project e
// Organization.
//
// Não existe usuário padrão global. A credencial é passada explicitamente no
// rest.Client ou associada a um contexto com NewContext, cujo tempo de vida é
// o do bloco de código que o criou.
package user

import (
	"context"
	"fmt"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/errs"
	"github.com/raywall/starkbank-go/key"
	"github.com/raywall/starkbank-go/resource"
)

// Environment seleciona a URL base da API.
type Environment string

const (
	Sandbox    Environment = "sandbox"
	Production Environment = "production"
)

// ParseEnvironment valida o nome do ambiente.
func ParseEnvironment(value string) (Environment, error) {
	switch Environment(value) {
	case Sandbox, Production:
		return Environment(value), nil
	}
	return "", &errs.ValidationError{
		Field:   "environment",
		Message: fmt.Sprintf("must be %q or %q, got %q", Sandbox, Production, value),
	}
}

// User é o contrato usado pelo gateway REST para autenticar uma chamada.
type User interface {
	// AccessID identifica a credencial no header Access-Id.
	AccessID() string
	// Environment indica o ambiente onde a credencial é válida.
	Environment() Environment
	// Sign assina a mensagem canônica da requisição.
	Sign(message string) string
}

type credential struct {
	resource.Resource
	environment Environment
	privateKey  *key.PrivateKey
}

func newCredential(c *checks.Checker) (credential, error) {
	id := c.String("id")
	pemContent := c.String("privateKey")
	envName := c.String("environment")

	if id == "" {
		return credential{}, &errs.ValidationError{Field: "id", Message: "is required"}
	}
	env, err := ParseEnvironment(envName)
	if err != nil {
		return credential{}, err
	}
	if pemContent == "" {
		return credential{}, &errs.ValidationError{Field: "privateKey", Message: "is required"}
	}
	privateKey, err := key.ParsePrivateKey(pemContent)
	if err != nil {
		return credential{}, &errs.ValidationError{Field: "privateKey", Message: err.Error()}
	}

	return credential{
		Resource:    resource.Resource{ID: id},
		environment: env,
		privateKey:  privateKey,
	}, nil
}

func (c credential) Environment() Environment { return c.environment }

func (c credential) Sign(message string) string { return c.privateKey.Sign(message) }

// PublicKey devolve a chave pública da credencial (útil para cadastro e testes).
func (c credential) PublicKey() *key.PublicKey { return c.privateKey.PublicKey() }

// Project é a credencial de um projeto vinculado a um workspace.
type Project struct {
	credential
	Name       string
	AllowedIPs []string
}

// NewProject constrói um Project a partir de id, privateKey, environment e,
// opcionalmente, name e allowedIps.
func NewProject(params checks.Params) (*Project, error) {
	c := checks.New(params)
	cred, err := newCredential(c)
	if err != nil {
		return nil, err
	}
	p := &Project{
		credential: cred,
		Name:       c.String("name"),
		AllowedIPs: c.Strings("allowedIps"),
	}
	if err := c.Finish(); err != nil {
		return nil, err
	}
	return p, nil
}

// AccessID devolve "project/{id}".
func (p *Project) AccessID() string {
	return "project/" + p.ID
}

// Organization é a credencial de uma organização. Sem WorkspaceID ela só
// acessa recursos da própria organização (ex: Workspace).
type Organization struct {
	credential
	WorkspaceID string
}

// NewOrganization constrói uma Organization a partir de id, privateKey,
// environment e, opcionalmente, workspaceId.
func NewOrganization(params checks.Params) (*Organization, error) {
	c := checks.New(params)
	cred, err := newCredential(c)
	if err != nil {
		return nil, err
	}
	o := &Organization{
		credential:  cred,
		WorkspaceID: c.String("workspaceId"),
	}
	if err := c.Finish(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Organization) AccessID() string {
	if o.WorkspaceID != "" {
		return "organization/" + o.ID + "/workspace/" + o.WorkspaceID
	}
	return "organization/" + o.ID
}

// Replace devolve uma cópia da organização atuando sobre outro workspace.
func (o *Organization) Replace(workspaceID string) *Organization {
	copied := *o
	copied.WorkspaceID = workspaceID
	return &copied
}

type contextKey struct{}

// NewContext associa u ao contexto; chamadas feitas com ele usam essa credencial
// quando o cliente não tiver uma própria.
func NewContext(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext recupera a credencial associada por NewContext.
func FromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(contextKey{}).(User)
	return u, ok && u != nil
}
