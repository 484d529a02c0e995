// Package utilitypayment paga contas de consumo (água, luz, telefone) pela
// linha digitável ou pelo código de barras.
package utilitypayment

import (
	"context"
	"time"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/resource"
	"github.com/raywall/starkbank-go/rest"
)

var payments = rest.Resource{Name: "UtilityPayment"}

// UtilityPayment exige Line ou BarCode. Scheduled é uma data (sem horário).
type UtilityPayment struct {
	resource.Resource
	Line        string     `json:"line,omitempty" validate:"required_without=BarCode"`
	BarCode     string     `json:"barCode,omitempty" validate:"required_without=Line"`
	Description string     `json:"description" validate:"required"`
	Scheduled   *time.Time `json:"scheduled,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Amount      int64      `json:"amount,omitempty"`
	Status      string     `json:"status,omitempty"`
	Fee         int64      `json:"fee,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	Updated     *time.Time `json:"updated,omitempty"`
}

// New monta um UtilityPayment a partir de parâmetros nomeados.
func New(params checks.Params) (UtilityPayment, error) {
	c := checks.New(params)
	p := UtilityPayment{
		Resource:    resource.Resource{ID: c.String("id")},
		Line:        c.String("line"),
		BarCode:     c.String("barCode"),
		Description: c.String("description"),
		Scheduled:   c.Date("scheduled"),
		Tags:        c.Strings("tags"),
		Amount:      c.Int64("amount"),
		Status:      c.String("status"),
		Fee:         c.Int64("fee"),
		Created:     c.DateTime("created"),
		Updated:     c.DateTime("updated"),
	}
	if err := c.Finish(); err != nil {
		return UtilityPayment{}, err
	}
	if err := checks.Struct(p); err != nil {
		return UtilityPayment{}, err
	}
	return p, nil
}

// Filter restringe Query e Page.
type Filter struct {
	Limit  int        `url:"-"`
	After  *time.Time `url:"after,omitempty" layout:"2006-01-02"`
	Before *time.Time `url:"before,omitempty" layout:"2006-01-02"`
	Tags   []string   `url:"tags,comma,omitempty"`
	IDs    []string   `url:"ids,comma,omitempty"`
	Status string     `url:"status,omitempty"`
}

// Create agenda ou paga as contas em lote.
func Create(ctx context.Context, c *rest.Client, items []UtilityPayment) ([]UtilityPayment, error) {
	return rest.Post(ctx, c, payments, items)
}

// Get busca um pagamento pelo id.
func Get(ctx context.Context, c *rest.Client, id string) (UtilityPayment, error) {
	return rest.GetID[UtilityPayment](ctx, c, payments, id)
}

// Query percorre os pagamentos sob demanda.
func Query(c *rest.Client, f Filter) *rest.Iterator[UtilityPayment] {
	return rest.Query[UtilityPayment](c, payments, f.Limit, f)
}

// Page busca uma página de pagamentos a partir de cursor.
func Page(ctx context.Context, c *rest.Client, cursor string, f Filter) ([]UtilityPayment, string, error) {
	return rest.GetPage[UtilityPayment](ctx, c, payments, f.Limit, cursor, f)
}

// Delete cancela um pagamento ainda não processado.
func Delete(ctx context.Context, c *rest.Client, id string) (UtilityPayment, error) {
	return rest.DeleteID[UtilityPayment](ctx, c, payments, id)
}

// PDF devolve o comprovante do pagamento.
func PDF(ctx context.Context, c *rest.Client, id string) ([]byte, error) {
	return rest.GetContent(ctx, c, payments, id, "pdf")
}
