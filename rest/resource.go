package rest

import (
	"strings"
	"unicode"
)

// Resource descreve um recurso da API pelo nome em CamelCase
// (ex: "Transfer", "UtilityPaymentLog"). Endpoint e chaves JSON derivam dele.
type Resource struct {
	Name string
}

// Endpoint devolve o caminho do recurso: kebab-case com "-log" virando "/log".
//
//	BrcodePayment     -> brcode-payment
//	UtilityPaymentLog -> utility-payment/log
func (r Resource) Endpoint() string {
	return strings.ReplaceAll(kebab(r.Name), "-log", "/log")
}

// Singular é a chave JSON de um objeto: o último segmento do nome.
func (r Resource) Singular() string {
	parts := strings.Split(kebab(r.Name), "-")
	return parts[len(parts)-1]
}

// Plural é a chave JSON de uma lista.
func (r Resource) Plural() string {
	base := r.Singular()
	switch {
	case strings.HasSuffix(base, "s"):
		return base
	case strings.HasSuffix(base, "ey"):
		return base + "s"
	case strings.HasSuffix(base, "y"):
		return strings.TrimSuffix(base, "y") + "ies"
	}
	return base + "s"
}

// ResourceFromEndpoint faz o caminho inverso de Endpoint
// ("utility-payment/log" -> "UtilityPaymentLog").
func ResourceFromEndpoint(endpoint string) Resource {
	var b strings.Builder
	upper := true
	for _, r := range endpoint {
		if r == '-' || r == '/' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return Resource{Name: b.String()}
}

func kebab(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
