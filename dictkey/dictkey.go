// Package dictkey consulta chaves Pix no DICT (Diretório de Identificadores
// de Contas Transacionais).
package dictkey

import (
	"context"
	"time"

	"github.com/raywall/starkbank-go/checks"
	"github.com/raywall/starkbank-go/resource"
	"github.com/raywall/starkbank-go/rest"
)

var dictKeys = rest.Resource{Name: "DictKey"}

// DictKey descreve a conta associada a uma chave Pix. O id é a própria chave
// (email, telefone, CPF/CNPJ ou EVP).
type DictKey struct {
	resource.Resource
	Type           string     `json:"type,omitempty"`
	Name           string     `json:"name,omitempty"`
	TaxID          string     `json:"taxId,omitempty"`
	OwnerType      string     `json:"ownerType,omitempty"`
	Ispb           string     `json:"ispb,omitempty"`
	BranchCode     string     `json:"branchCode,omitempty"`
	AccountNumber  string     `json:"accountNumber,omitempty"`
	AccountType    string     `json:"accountType,omitempty"`
	AccountCreated *time.Time `json:"accountCreated,omitempty"`
	Status         string     `json:"status,omitempty"`
	Owned          *time.Time `json:"owned,omitempty"`
	Created        *time.Time `json:"created,omitempty"`
}

// New monta uma DictKey a partir de parâmetros nomeados.
func New(params checks.Params) (DictKey, error) {
	c := checks.New(params)
	k := DictKey{
		Resource:       resource.Resource{ID: c.String("id")},
		Type:           c.String("type"),
		Name:           c.String("name"),
		TaxID:          c.String("taxId"),
		OwnerType:      c.String("ownerType"),
		Ispb:           c.String("ispb"),
		BranchCode:     c.String("branchCode"),
		AccountNumber:  c.String("accountNumber"),
		AccountType:    c.String("accountType"),
		AccountCreated: c.DateTime("accountCreated"),
		Status:         c.String("status"),
		Owned:          c.DateTime("owned"),
		Created:        c.DateTime("created"),
	}
	if err := c.Finish(); err != nil {
		return DictKey{}, err
	}
	if err := checks.Struct(k); err != nil {
		return DictKey{}, err
	}
	return k, nil
}

// Filter restringe Query e Page. Type aceita "cpf", "cnpj", "phone", "email" ou "evp".
type Filter struct {
	Limit  int        `url:"-"`
	Type   string     `url:"type,omitempty"`
	After  *time.Time `url:"after,omitempty" layout:"2006-01-02"`
	Before *time.Time `url:"before,omitempty" layout:"2006-01-02"`
	IDs    []string   `url:"ids,comma,omitempty"`
	Status string     `url:"status,omitempty"`
}

// Get busca os dados da conta dona da chave Pix informada.
func Get(ctx context.Context, c *rest.Client, id string) (DictKey, error) {
	return rest.GetID[DictKey](ctx, c, dictKeys, id)
}

// Query lista as chaves Pix da própria conta.
func Query(c *rest.Client, f Filter) *rest.Iterator[DictKey] {
	return rest.Query[DictKey](c, dictKeys, f.Limit, f)
}

// Page busca uma página de chaves Pix da conta a partir de cursor.
func Page(ctx context.Context, c *rest.Client, cursor string, f Filter) ([]DictKey, string, error) {
	return rest.GetPage[DictKey](ctx, c, dictKeys, f.Limit, cursor, f)
}
