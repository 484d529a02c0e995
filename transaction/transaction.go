// Package transaction movimenta saldo entre contas Stark Bank e consulta o
// extrato da conta.
package transaction

import (
	"context"
	"time"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/resource"
	"github.com/raywall/starkbank-go/rest"
)

var transactions = rest.Resource{Name: "Transaction"}

// Transaction é uma entrada do extrato. Na criação, Amount é debitado da conta
// atual e creditado em ReceiverID. ExternalID impede duplicidade.
type Transaction struct {
	resource.Resource
	Amount      int64      `json:"amount" validate:"required,gt=0"`
	Description string     `json:"description" validate:"required"`
	ExternalID  string     `json:"externalId" validate:"required"`
	ReceiverID  string     `json:"receiverId" validate:"required"`
	SenderID    string     `json:"senderId,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Fee         int64      `json:"fee,omitempty"`
	Source      string     `json:"source,omitempty"`
	Balance     int64      `json:"balance,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
}

// New monta uma Transaction. amount, description, externalId e
// receiverId são obrigatórios.
func New(params checks.Params) (Transaction, error) {
	c := checks.New(params)
	t := Transaction{
		Resource:    resource.Resource{ID: c.String("id")},
		Amount:      c.Int64("amount"),
		Description: c.String("description"),
		ExternalID:  c.String("externalId"),
		ReceiverID:  c.String("receiverId"),
		SenderID:    c.String("senderId"),
		Tags:        c.Strings("tags"),
		Fee:         c.Int64("fee"),
		Source:      c.String("source"),
		Balance:     c.Int64("balance"),
		Created:     c.DateTime("created"),
	}
	if err := c.Finish(); err != nil {
		return Transaction{}, err
	}
	if err := checks.Struct(t); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

// Filter restringe Query e Page.
type Filter struct {
	Limit       int        `url:"-"`
	After       *time.Time `url:"after,omitempty" layout:"2006-01-02"`
	Before      *time.Time `url:"before,omitempty" layout:"2006-01-02"`
	Tags        []string   `url:"tags,comma,omitempty"`
	ExternalIDs []string   `url:"externalIds,comma,omitempty"`
	IDs         []string   `url:"ids,comma,omitempty"`
}

// Create transfere saldo entre contas Stark Bank.
func Create(ctx context.Context, c *rest.Client, items []Transaction) ([]Transaction, error) {
	return rest.Post(ctx, c, transactions, items)
}

// Get busca uma transação pelo id.
func Get(ctx context.Context, c *rest.Client, id string) (Transaction, error) {
	return rest.GetID[Transaction](ctx, c, transactions, id)
}

// Query percorre o extrato sob demanda.
func Query(c *rest.Client, f Filter) *rest.Iterator[Transaction] {
	return rest.Query[Transaction](c, transactions, f.Limit, f)
}

// Page busca uma página do extrato a partir de cursor.
func Page(ctx context.Context, c *rest.Client, cursor string, f Filter) ([]Transaction, string, error) {
	return rest.GetPage[Transaction](ctx, c, transactions, f.Limit, cursor, f)
}
