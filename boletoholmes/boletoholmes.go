// Package boletoholmes investiga boletos emitidos: cada "holmes" acompanha
// o registro e a liquidação de um boleto e registra o resultado.
package boletoholmes

import (
	"context"
	"time"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/resource"
	"github.com/raywall/starkbank-go/rest"
)

var holmes = rest.Resource{Name: "BoletoHolmes"}

// BoletoHolmes é uma investigação sobre o boleto BoletoID.
// Result fica vazio até a investigação terminar.
type BoletoHolmes struct {
	resource.Resource
	BoletoID string     `json:"boletoId" validate:"required"`
	Tags     []string   `json:"tags,omitempty"`
	Status   string     `json:"status,omitempty"`
	Result   string     `json:"result,omitempty"`
	Created  *time.Time `json:"created,omitempty"`
	Updated  *time.Time `json:"updated,omitempty"`
}

// New monta um BoletoHolmes; boletoId é obrigatório.
func New(params checks.Params) (BoletoHolmes, error) {
	c := checks.New(params)
	h := BoletoHolmes{
		Resource: resource.Resource{ID: c.String("id")},
		BoletoID: c.String("boletoId"),
		Tags:     c.Strings("tags"),
		Status:   c.String("status"),
		Result:   c.String("result"),
		Created:  c.DateTime("created"),
		Updated:  c.DateTime("updated"),
	}
	if err := c.Finish(); err != nil {
		return BoletoHolmes{}, err
	}
	if err := checks.Struct(h); err != nil {
		return BoletoHolmes{}, err
	}
	return h, nil
}

// Filter restringe Query e Page.
type Filter struct {
	Limit    int        `url:"-"`
	After    *time.Time `url:"after,omitempty" layout:"2006-01-02"`
	Before   *time.Time `url:"before,omitempty" layout:"2006-01-02"`
	Tags     []string   `url:"tags,comma,omitempty"`
	IDs      []string   `url:"ids,comma,omitempty"`
	Status   string     `url:"status,omitempty"`
	BoletoID string     `url:"boletoId,omitempty"`
}

// Create abre as investigações em lote.
func Create(ctx context.Context, c *rest.Client, items []BoletoHolmes) ([]BoletoHolmes, error) {
	return rest.Post(ctx, c, holmes, items)
}

// Get busca uma investigação pelo id.
func Get(ctx context.Context, c *rest.Client, id string) (BoletoHolmes, error) {
	return rest.GetID[BoletoHolmes](ctx, c, holmes, id)
}

// Query percorre as investigações sob demanda.
func Query(c *rest.Client, f Filter) *rest.Iterator[BoletoHolmes] {
	return rest.Query[BoletoHolmes](c, holmes, f.Limit, f)
}

// Page busca uma página de investigações a partir de cursor.
func Page(ctx context.Context, c *rest.Client, cursor string, f Filter) ([]BoletoHolmes, string, error) {
	return rest.GetPage[BoletoHolmes](ctx, c, holmes, f.Limit, cursor, f)
}
