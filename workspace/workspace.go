// Package workspace cria e consulta workspaces de uma Organization.
package workspace

import (
	"context"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/resource"
	"github.com/raywall/starkbank-go/rest"
)

var workspaces = rest.Resource{Name: "Workspace"}

// Workspace é uma conta isolada dentro de uma Organization. A criação
// exige credencial de Organization sem workspace selecionado.
type Workspace struct {
	resource.Resource
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// New monta um Workspace; username e name são obrigatórios.
func New(params checks.Params) (Workspace, error) {
	c := checks.New(params)
	w := Workspace{
		Resource: resource.Resource{ID: c.String("id")},
		Username: c.String("username"),
		Name:     c.String("name"),
	}
	if err := c.Finish(); err != nil {
		return Workspace{}, err
	}
	if err := checks.Struct(w); err != nil {
		return Workspace{}, err
	}
	return w, nil
}

// Filter restringe Query e Page.
type Filter struct {
	Limit    int      `url:"-"`
	Username string   `url:"username,omitempty"`
	IDs      []string `url:"ids,comma,omitempty"`
}

// Create cria um workspace. Só uma Organization pode chamá-lo.
func Create(ctx context.Context, c *rest.Client, w Workspace) (Workspace, error) {
	return rest.PostSingle(ctx, c, workspaces, w)
}

// Get busca um workspace pelo id.
func Get(ctx context.Context, c *rest.Client, id string) (Workspace, error) {
	return rest.GetID[Workspace](ctx, c, workspaces, id)
}

// Query percorre os workspaces visíveis ao usuário.
func Query(c *rest.Client, f Filter) *rest.Iterator[Workspace] {
	return rest.Query[Workspace](c, workspaces, f.Limit, f)
}

// Page busca uma página de workspaces a partir de cursor.
func Page(ctx context.Context, c *rest.Client, cursor string, f Filter) ([]Workspace, string, error) {
	return rest.GetPage[Workspace](ctx, c, workspaces, f.Limit, cursor, f)
}
