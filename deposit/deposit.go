// Package deposit consulta os depósitos recebidos na conta.
package deposit

import (
	"context"
	"time"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/resource"
	"github.com/raywall/starkbank-go/rest"
)

var deposits = rest.Resource{Name: "Deposit"}

// Deposit é criado pela API quando dinheiro entra na conta; o SDK apenas lê.
type Deposit struct {
	resource.Resource
	Name           string     `json:"name,omitempty"`
	TaxID          string     `json:"taxId,omitempty"`
	BankCode       string     `json:"bankCode,omitempty"`
	BranchCode     string     `json:"branchCode,omitempty"`
	AccountNumber  string     `json:"accountNumber,omitempty"`
	Amount         int64      `json:"amount,omitempty"`
	Type           string     `json:"type,omitempty"`
	Status         string     `json:"status,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Fee            int64      `json:"fee,omitempty"`
	TransactionIDs []string   `json:"transactionIds,omitempty"`
	Created        *time.Time `json:"created,omitempty"`
	Updated        *time.Time `json:"updated,omitempty"`
}

// New monta um Deposit. Depósitos são criados pelo banco, então nenhum
// campo é obrigatório.
func New(params checks.Params) (Deposit, error) {
	c := checks.New(params)
	d := Deposit{
		Resource:       resource.Resource{ID: c.String("id")},
		Name:           c.String("name"),
		TaxID:          c.String("taxId"),
		BankCode:       c.String("bankCode"),
		BranchCode:     c.String("branchCode"),
		AccountNumber:  c.String("accountNumber"),
		Amount:         c.Int64("amount"),
		Type:           c.String("type"),
		Status:         c.String("status"),
		Tags:           c.Strings("tags"),
		Fee:            c.Int64("fee"),
		TransactionIDs: c.Strings("transactionIds"),
		Created:        c.DateTime("created"),
		Updated:        c.DateTime("updated"),
	}
	if err := c.Finish(); err != nil {
		return Deposit{}, err
	}
	if err := checks.Struct(d); err != nil {
		return Deposit{}, err
	}
	return d, nil
}

// Filter restringe Query e Page.
type Filter struct {
	Limit  int        `url:"-"`
	After  *time.Time `url:"after,omitempty" layout:"2006-01-02"`
	Before *time.Time `url:"before,omitempty" layout:"2006-01-02"`
	Status string     `url:"status,omitempty"`
	Sort   string     `url:"sort,omitempty"`
	Tags   []string   `url:"tags,comma,omitempty"`
	IDs    []string   `url:"ids,comma,omitempty"`
}

// Get busca um depósito pelo id.
func Get(ctx context.Context, c *rest.Client, id string) (Deposit, error) {
	return rest.GetID[Deposit](ctx, c, deposits, id)
}

// Query percorre os depósitos recebidos sob demanda.
func Query(c *rest.Client, f Filter) *rest.Iterator[Deposit] {
	return rest.Query[Deposit](c, deposits, f.Limit, f)
}

// Page busca uma página de depósitos a partir de cursor.
func Page(ctx context.Context, c *rest.Client, cursor string, f Filter) ([]Deposit, string, error) {
	return rest.GetPage[Deposit](ctx, c, deposits, f.Limit, cursor, f)
}
