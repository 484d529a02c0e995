package main

import (
	"context"
	"iter"
	"sort"

	"github.com/raywall/starkbank-go/boletoholmes"
	"github.com/raywall/starkbank-go/brcodepayment"
	"github.com/raywall/starkbank-go/deposit"
	"github.com/raywall/starkbank-go/dictkey"
	"github.com/raywall/starkbank-go/rest"
	"github.com/raywall/starkbank-go/transaction"
	"github.com/raywall/starkbank-go/transfer"
	"github.com/raywall/starkbank-go/utilitypayment"
	paymentlog "github.com/raywall/starkbank-go/utilitypayment/log"
	"github.com/raywall/starkbank-go/webhook"
	"github.com/raywall/starkbank-go/workspace"
)

type getFunc func(ctx context.Context, c *rest.Client, id string) (any, error)
type listFunc func(ctx context.Context, c *rest.Client, limit int) iter.Seq2[any, error]
type pdfFunc func(ctx context.Context, c *rest.Client, id string) ([]byte, error)

// commands descreve o que a CLI sabe fazer com um recurso. pdf é nil quando
// o recurso não tem comprovante.
type commands struct {
	get  getFunc
	list listFunc
	pdf  pdfFunc
}

func getOf[T any](get func(context.Context, *rest.Client, string) (T, error)) getFunc {
	return func(ctx context.Context, c *rest.Client, id string) (any, error) {
		return get(ctx, c, id)
	}
}

func listOf[T any](query func(c *rest.Client, limit int) *rest.Iterator[T]) listFunc {
	return func(ctx context.Context, c *rest.Client, limit int) iter.Seq2[any, error] {
		return func(yield func(any, error) bool) {
			for item, err := range query(c, limit).All(ctx) {
				if !yield(item, err) {
					return
				}
			}
		}
	}
}

var registry = map[string]commands{
	"transfer": {
		get: getOf(transfer.Get),
		list: listOf(func(c *rest.Client, limit int) *rest.Iterator[transfer.Transfer] {
			return transfer.Query(c, transfer.Filter{Limit: limit})
		}),
		pdf: transfer.PDF,
	},
	"deposit": {
		get: getOf(deposit.Get),
		list: listOf(func(c *rest.Client, limit int) *rest.Iterator[deposit.Deposit] {
			return deposit.Query(c, deposit.Filter{Limit: limit})
		}),
	},
	"webhook": {
		get: getOf(webhook.Get),
		list: listOf(func(c *rest.Client, limit int) *rest.Iterator[webhook.Webhook] {
			return webhook.Query(c, webhook.Filter{Limit: limit})
		}),
	},
	"workspace": {
		get: getOf(workspace.Get),
		list: listOf(func(c *rest.Client, limit int) *rest.Iterator[workspace.Workspace] {
			return workspace.Query(c, workspace.Filter{Limit: limit})
		}),
	},
	"dict-key": {
		get: getOf(dictkey.Get),
		list: listOf(func(c *rest.Client, limit int) *rest.Iterator[dictkey.DictKey] {
			return dictkey.Query(c, dictkey.Filter{Limit: limit})
		}),
	},
	"boleto-holmes": {
		get: getOf(boletoholmes.Get),
		list: listOf(func(c *rest.Client, limit int) *rest.Iterator[boletoholmes.BoletoHolmes] {
			return boletoholmes.Query(c, boletoholmes.Filter{Limit: limit})
		}),
	},
	"brcode-payment": {
		get: getOf(brcodepayment.Get),
		list: listOf(func(c *rest.Client, limit int) *rest.Iterator[brcodepayment.BrcodePayment] {
			return brcodepayment.Query(c, brcodepayment.Filter{Limit: limit})
		}),
		pdf: brcodepayment.PDF,
	},
	"transaction": {
		get: getOf(transaction.Get),
		list: listOf(func(c *rest.Client, limit int) *rest.Iterator[transaction.Transaction] {
			return transaction.Query(c, transaction.Filter{Limit: limit})
		}),
	},
	"utility-payment": {
		get: getOf(utilitypayment.Get),
		list: listOf(func(c *rest.Client, limit int) *rest.Iterator[utilitypayment.UtilityPayment] {
			return utilitypayment.Query(c, utilitypayment.Filter{Limit: limit})
		}),
		pdf: utilitypayment.PDF,
	},
	"utility-payment-log": {
		get: getOf(paymentlog.Get),
		list: listOf(func(c *rest.Client, limit int) *rest.Iterator[paymentlog.Log] {
			return paymentlog.Query(c, paymentlog.Filter{Limit: limit})
		}),
	},
}

func resourceNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
