// Package brcodepayment paga QR Codes Pix (BR Codes) a partir da conta.
package brcodepayment

import (
	"context"
	"time"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/resource"
	"github.com/raywall/starkbank-go/rest"
)

var payments = rest.Resource{Name: "BrcodePayment"}

// BrcodePayment paga o BR Code informado. Amount só é obrigatório quando o
// código não define valor.
type BrcodePayment struct {
	resource.Resource
	Brcode         string     `json:"brcode" validate:"required"`
	TaxID          string     `json:"taxId" validate:"required"`
	Description    string     `json:"description" validate:"required"`
	Amount         int64      `json:"amount,omitempty" validate:"gte=0"`
	Scheduled      *time.Time `json:"scheduled,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Status         string     `json:"status,omitempty"`
	Type           string     `json:"type,omitempty"`
	TransactionIDs []string   `json:"transactionIds,omitempty"`
	Fee            int64      `json:"fee,omitempty"`
	Updated        *time.Time `json:"updated,omitempty"`
	Created        *time.Time `json:"created,omitempty"`
}

// New monta um BrcodePayment a partir de parâmetros nomeados. brcode,
// taxId e description são obrigatórios.
func New(params checks.Params) (BrcodePayment, error) {
	c := checks.New(params)
	p := BrcodePayment{
		Resource:       resource.Resource{ID: c.String("id")},
		Brcode:         c.String("brcode"),
		TaxID:          c.String("taxId"),
		Description:    c.String("description"),
		Amount:         c.Int64("amount"),
		Scheduled:      c.DateTime("scheduled"),
		Tags:           c.Strings("tags"),
		Status:         c.String("status"),
		Type:           c.String("type"),
		TransactionIDs: c.Strings("transactionIds"),
		Fee:            c.Int64("fee"),
		Updated:        c.DateTime("updated"),
		Created:        c.DateTime("created"),
	}
	if err := c.Finish(); err != nil {
		return BrcodePayment{}, err
	}
	if err := checks.Struct(p); err != nil {
		return BrcodePayment{}, err
	}
	return p, nil
}

// Patch são os campos alteráveis de um pagamento. Hoje apenas o
// cancelamento de pagamentos agendados ("canceled").
type Patch struct {
	Status string `json:"status" validate:"required,oneof=canceled"`
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

// Create paga os BR Codes em lote.
func Create(ctx context.Context, c *rest.Client, items []BrcodePayment) ([]BrcodePayment, error) {
	return rest.Post(ctx, c, payments, items)
}

// Get busca um pagamento pelo id.
func Get(ctx context.Context, c *rest.Client, id string) (BrcodePayment, error) {
	return rest.GetID[BrcodePayment](ctx, c, payments, id)
}

// Query percorre os pagamentos de BR Code sob demanda.
func Query(c *rest.Client, f Filter) *rest.Iterator[BrcodePayment] {
	return rest.Query[BrcodePayment](c, payments, f.Limit, f)
}

// Page busca uma página de pagamentos a partir de cursor.
func Page(ctx context.Context, c *rest.Client, cursor string, f Filter) ([]BrcodePayment, string, error) {
	return rest.GetPage[BrcodePayment](ctx, c, payments, f.Limit, cursor, f)
}

// Update aplica patch ao pagamento e devolve o estado resultante.
func Update(ctx context.Context, c *rest.Client, id string, patch Patch) (BrcodePayment, error) {
	if err := checks.Struct(patch); err != nil {
		return BrcodePayment{}, err
	}
	return rest.PatchID[BrcodePayment](ctx, c, payments, id, patch)
}

// PDF devolve o comprovante do pagamento.
func PDF(ctx context.Context, c *rest.Client, id string) ([]byte, error) {
	return rest.GetContent(ctx, c, payments, id, "pdf")
}
