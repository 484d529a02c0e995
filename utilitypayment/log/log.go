// Package log consulta o histórico de eventos dos pagamentos de contas de
// consumo. Cada mudança de estado de um UtilityPayment gera um Log.
package log

import (
	"context"
	"time"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/resource"
	"github.com/raywall/starkbank-go/rest"
	"github.com/raywall/starkbank-go/utilitypayment"
)

var logs = rest.Resource{Name: "UtilityPaymentLog"}

// Log registra um evento (Type: "created", "paid", "canceled", ...) com o
// pagamento no estado em que ficou após o evento.
type Log struct {
	resource.Resource
	Type    string                        `json:"type,omitempty"`
	Errors  []string                      `json:"errors,omitempty"`
	Payment utilitypayment.UtilityPayment `json:"payment" validate:"-"`
	Created *time.Time                    `json:"created,omitempty"`
}

// New monta um Log. "payment" aceita um UtilityPayment, um ponteiro para ele
// ou um objeto com os parâmetros do pagamento.
func New(params checks.Params) (Log, error) {
	c := checks.New(params)
	l := Log{
		Resource: resource.Resource{ID: c.String("id")},
		Type:     c.String("type"),
		Errors:   c.Strings("errors"),
		Created:  c.DateTime("created"),
	}

	var nested map[string]any
	switch p := params["payment"].(type) {
	case utilitypayment.UtilityPayment:
		c.Pop("payment")
		l.Payment = p
	case *utilitypayment.UtilityPayment:
		c.Pop("payment")
		if p != nil {
			l.Payment = *p
		}
	default:
		nested = c.Map("payment")
	}
	if err := c.Finish(); err != nil {
		return Log{}, err
	}
	if err := checks.Struct(l); err != nil {
		return Log{}, err
	}
	if nested != nil {
		payment, err := utilitypayment.New(nested)
		if err != nil {
			return Log{}, err
		}
		l.Payment = payment
	}
	return l, nil
}

// Filter restringe Query e Page.
type Filter struct {
	Limit      int        `url:"-"`
	After      *time.Time `url:"after,omitempty" layout:"2006-01-02"`
	Before     *time.Time `url:"before,omitempty" layout:"2006-01-02"`
	Types      []string   `url:"types,comma,omitempty"`
	PaymentIDs []string   `url:"paymentIds,comma,omitempty"`
}

// Get busca um log pelo id.
func Get(ctx context.Context, c *rest.Client, id string) (Log, error) {
	return rest.GetID[Log](ctx, c, logs, id)
}

// Query percorre os logs sob demanda, do mais recente para o mais antigo.
func Query(c *rest.Client, f Filter) *rest.Iterator[Log] {
	return rest.Query[Log](c, logs, f.Limit, f)
}

// Page busca uma página de logs a partir de cursor.
func Page(ctx context.Context, c *rest.Client, cursor string, f Filter) ([]Log, string, error) {
	return rest.GetPage[Log](ctx, c, logs, f.Limit, cursor, f)
}
