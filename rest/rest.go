package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/google/go-querystring/query"
	"github.com/raywall/starkbank-go/checks"
)

// Post cria os itens em lote: envia {plural: [...]} e devolve os objetos
// criados na mesma ordem. O lote inteiro é aceito ou rejeitado.
func Post[T any](ctx context.Context, c *Client, res Resource, items []T) ([]T, error) {
	for _, item := range items {
		if err := checks.Struct(item); err != nil {
			return nil, err
		}
	}

	payload := map[string][]T{res.Plural(): items}
	body, err := c.fetch(ctx, request{
		method:   http.MethodPost,
		resource: res,
		path:     res.Endpoint(),
		payload:  payload,
	})
	if err != nil {
		return nil, err
	}
	return decodeList[T](body, res.Plural())
}

// PostSingle cria um único objeto enviando-o diretamente no corpo.
func PostSingle[T any](ctx context.Context, c *Client, res Resource, item T) (T, error) {
	var zero T
	if err := checks.Struct(item); err != nil {
		return zero, err
	}

	body, err := c.fetch(ctx, request{
		method:   http.MethodPost,
		resource: res,
		path:     res.Endpoint(),
		payload:  item,
	})
	if err != nil {
		return zero, err
	}
	return decodeOne[T](body, res.Singular())
}

// GetID busca um objeto pelo id.
func GetID[T any](ctx context.Context, c *Client, res Resource, id string) (T, error) {
	body, err := c.fetch(ctx, request{
		method:   http.MethodGet,
		resource: res,
		path:     res.Endpoint() + "/" + url.PathEscape(id),
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeOne[T](body, res.Singular())
}

// GetContent busca um sub-recurso binário (ex: "pdf") e devolve os bytes sem alteração.
func GetContent(ctx context.Context, c *Client, res Resource, id, sub string) ([]byte, error) {
	return c.fetch(ctx, request{
		method:   http.MethodGet,
		resource: res,
		path:     res.Endpoint() + "/" + url.PathEscape(id) + "/" + sub,
	})
}

// PatchID aplica patch ao objeto e devolve o estado resultante.
func PatchID[T any](ctx context.Context, c *Client, res Resource, id string, patch any) (T, error) {
	body, err := c.fetch(ctx, request{
		method:   http.MethodPatch,
		resource: res,
		path:     res.Endpoint() + "/" + url.PathEscape(id),
		payload:  patch,
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeOne[T](body, res.Singular())
}

// DeleteID remove (ou cancela) o objeto e devolve seu último estado.
func DeleteID[T any](ctx context.Context, c *Client, res Resource, id string) (T, error) {
	body, err := c.fetch(ctx, request{
		method:   http.MethodDelete,
		resource: res,
		path:     res.Endpoint() + "/" + url.PathEscape(id),
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeOne[T](body, res.Singular())
}

// GetPage busca uma única página. limit 0 deixa o tamanho a cargo da API;
// valores acima de 100 são reduzidos. O cursor devolvido é vazio na última página.
func GetPage[T any](ctx context.Context, c *Client, res Resource, limit int, cursor string, filter any) ([]T, string, error) {
	values, err := encodeFilter(filter)
	if err != nil {
		return nil, "", err
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(min(limit, maxPageSize)))
	}
	if cursor != "" {
		values.Set("cursor", cursor)
	}

	body, err := c.fetch(ctx, request{
		method:   http.MethodGet,
		resource: res,
		path:     res.Endpoint(),
		query:    values,
	})
	if err != nil {
		return nil, "", err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, "", fmt.Errorf("resposta inválida de %s: %w", res.Endpoint(), err)
	}

	var items []T
	if raw, ok := envelope[res.Plural()]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, "", fmt.Errorf("erro ao decodificar %s: %w", res.Plural(), err)
		}
	}

	// null mantém next vazio
	var next string
	if raw, ok := envelope["cursor"]; ok {
		if err := json.Unmarshal(raw, &next); err != nil {
			return nil, "", fmt.Errorf("cursor inválido em %s: %w", res.Endpoint(), err)
		}
	}

	c.orDefault().recorder.ObservePage(res.Endpoint(), len(items))
	return items, next, nil
}

// Query devolve um iterador sobre todos os objetos que atendem ao filtro.
// Nenhuma requisição é feita até a primeira chamada de Next. limit 0 = sem limite.
func Query[T any](c *Client, res Resource, limit int, filter any) *Iterator[T] {
	return &Iterator[T]{
		client:   c,
		resource: res,
		limit:    limit,
		filter:   filter,
	}
}

// encodeFilter aceita structs com tags `url` ou valores prontos
// (url.Values / map[string][]string).
func encodeFilter(filter any) (url.Values, error) {
	switch f := filter.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		return cloneValues(f), nil
	case map[string][]string:
		return cloneValues(f), nil
	}
	values, err := query.Values(filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao codificar filtro: %w", err)
	}
	return values, nil
}

// cloneValues copia src para um mapa novo, nunca nil, que GetPage pode alterar.
func cloneValues(src map[string][]string) url.Values {
	values := make(url.Values, len(src))
	for k, v := range src {
		values[k] = slices.Clone(v)
	}
	return values
}

func decodeOne[T any](body []byte, key string) (T, error) {
	var zero T
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return zero, fmt.Errorf("erro ao decodificar %s: %w", key, err)
	}
	raw, ok := envelope[key]
	if !ok {
		return zero, fmt.Errorf("resposta sem a chave %q", key)
	}
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return zero, fmt.Errorf("erro ao decodificar %s: %w", key, err)
	}
	return item, nil
}

func decodeList[T any](body []byte, key string) ([]T, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar %s: %w", key, err)
	}
	var items []T
	if raw, ok := envelope[key]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("erro ao decodificar %s: %w", key, err)
		}
	}
	return items, nil
}
