// Package transfer envia dinheiro da conta Stark Bank para contas de outros bancos.
package transfer

import (
	"context"
	"time"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/resource"
	"github.com/raywall/starkbank-go/rest"
)

var transfers = rest.Resource{Name: "Transfer"}

// Transfer é uma transferência para outra conta. Valores em centavos.
type Transfer struct {
	resource.Resource
	Amount         int64      `json:"amount" validate:"required,gt=0"`
	Name           string     `json:"name" validate:"required"`
	TaxID          string     `json:"taxId" validate:"required"`
	BankCode       string     `json:"bankCode" validate:"required"`
	BranchCode     string     `json:"branchCode" validate:"required"`
	AccountNumber  string     `json:"accountNumber" validate:"required"`
	AccountType    string     `json:"accountType,omitempty" validate:"omitempty,oneof=checking savings salary payment"`
	ExternalID     string     `json:"externalId,omitempty"`
	Scheduled      *time.Time `json:"scheduled,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Fee            int64      `json:"fee,omitempty"`
	Status         string     `json:"status,omitempty"`
	TransactionIDs []string   `json:"transactionIds,omitempty"`
	Created        *time.Time `json:"created,omitempty"`
	Updated        *time.Time `json:"updated,omitempty"`
}

// New monta uma Transfer a partir de parâmetros nomeados. Chaves
// desconhecidas ou de tipo errado resultam em *errs.ValidationError.
func New(params checks.Params) (Transfer, error) {
	c := checks.New(params)
	t := Transfer{
		Resource:       resource.Resource{ID: c.String("id")},
		Amount:         c.Int64("amount"),
		Name:           c.String("name"),
		TaxID:          c.String("taxId"),
		BankCode:       c.String("bankCode"),
		BranchCode:     c.String("branchCode"),
		AccountNumber:  c.String("accountNumber"),
		AccountType:    c.String("accountType"),
		ExternalID:     c.String("externalId"),
		Scheduled:      c.DateTime("scheduled"),
		Tags:           c.Strings("tags"),
		Fee:            c.Int64("fee"),
		Status:         c.String("status"),
		TransactionIDs: c.Strings("transactionIds"),
		Created:        c.DateTime("created"),
		Updated:        c.DateTime("updated"),
	}
	if err := c.Finish(); err != nil {
		return Transfer{}, err
	}
	if err := checks.Struct(t); err != nil {
		return Transfer{}, err
	}
	return t, nil
}

// Filter restringe Query e Page. Limit 0 devolve todos os itens.
type Filter struct {
	Limit          int        `url:"-"`
	After          *time.Time `url:"after,omitempty" layout:"2006-01-02"`
	Before         *time.Time `url:"before,omitempty" layout:"2006-01-02"`
	TransactionIDs []string   `url:"transactionIds,comma,omitempty"`
	Status         string     `url:"status,omitempty"`
	TaxID          string     `url:"taxId,omitempty"`
	Sort           string     `url:"sort,omitempty"`
	Tags           []string   `url:"tags,comma,omitempty"`
	IDs            []string   `url:"ids,comma,omitempty"`
}

// Create envia as transferências em lote e devolve os objetos criados.
func Create(ctx context.Context, c *rest.Client, items []Transfer) ([]Transfer, error) {
	return rest.Post(ctx, c, transfers, items)
}

// Get busca uma transferência pelo id.
func Get(ctx context.Context, c *rest.Client, id string) (Transfer, error) {
	return rest.GetID[Transfer](ctx, c, transfers, id)
}

// Query percorre as transferências página a página sob demanda.
func Query(c *rest.Client, f Filter) *rest.Iterator[Transfer] {
	return rest.Query[Transfer](c, transfers, f.Limit, f)
}

// Page busca uma única página a partir de cursor.
func Page(ctx context.Context, c *rest.Client, cursor string, f Filter) ([]Transfer, string, error) {
	return rest.GetPage[Transfer](ctx, c, transfers, f.Limit, cursor, f)
}

// Delete cancela uma transferência agendada.
func Delete(ctx context.Context, c *rest.Client, id string) (Transfer, error) {
	return rest.DeleteID[Transfer](ctx, c, transfers, id)
}

// PDF devolve o comprovante da transferência.
func PDF(ctx context.Context, c *rest.Client, id string) ([]byte, error) {
	return rest.GetContent(ctx, c, transfers, id, "pdf")
}
