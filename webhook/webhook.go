// Package webhook gerencia as assinaturas de eventos enviadas por POST
// para uma URL do cliente.
package webhook

import (
	"context"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/resource"
	"github.com/raywall/starkbank-go/rest"
)

var webhooks = rest.Resource{Name: "Webhook"}

// Webhook associa uma URL aos tipos de evento que ela recebe
// (ex: "transfer", "deposit", "utility-payment").
type Webhook struct {
	resource.Resource
	URL           string   `json:"url" validate:"required,url"`
	Subscriptions []string `json:"subscriptions" validate:"required,min=1,dive,required"`
}

// New monta um Webhook; url e ao menos uma inscrição são obrigatórias.
func New(params checks.Params) (Webhook, error) {
	c := checks.New(params)
	w := Webhook{
		Resource:      resource.Resource{ID: c.String("id")},
		URL:           c.String("url"),
		Subscriptions: c.Strings("subscriptions"),
	}
	if err := c.Finish(); err != nil {
		return Webhook{}, err
	}
	if err := checks.Struct(w); err != nil {
		return Webhook{}, err
	}
	return w, nil
}

// Filter restringe Query e Page.
type Filter struct {
	Limit int `url:"-"`
}

// Create registra um único webhook.
func Create(ctx context.Context, c *rest.Client, w Webhook) (Webhook, error) {
	return rest.PostSingle(ctx, c, webhooks, w)
}

// Get busca uma inscrição de webhook pelo id.
func Get(ctx context.Context, c *rest.Client, id string) (Webhook, error) {
	return rest.GetID[Webhook](ctx, c, webhooks, id)
}

// Query percorre as inscrições sob demanda.
func Query(c *rest.Client, f Filter) *rest.Iterator[Webhook] {
	return rest.Query[Webhook](c, webhooks, f.Limit, f)
}

// Page busca uma página de inscrições a partir de cursor.
func Page(ctx context.Context, c *rest.Client, cursor string, f Filter) ([]Webhook, string, error) {
	return rest.GetPage[Webhook](ctx, c, webhooks, f.Limit, cursor, f)
}

// Delete remove a assinatura e devolve seu último estado.
func Delete(ctx context.Context, c *rest.Client, id string) (Webhook, error) {
	return rest.DeleteID[Webhook](ctx, c, webhooks, id)
}
