package rest

import (
	"context"
	"iter"
)

// Iterator percorre uma listagem paginada sob demanda: a próxima página só é
// buscada quando a anterior foi consumida. Não é seguro para uso concorrente.
type Iterator[T any] struct {
	client   *Client
	resource Resource
	limit    int
	filter   any

	page    []T
	pos     int
	cursor  string
	started bool
	yielded int
	item    T
	err     error
}

// Next avança para o próximo item. Devolve false ao fim da listagem ou em caso
// de erro; consulte Err para diferenciar.
func (it *Iterator[T]) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}
	if it.limit > 0 && it.yielded >= it.limit {
		return false
	}

	// páginas vazias com cursor são puladas
	for it.pos >= len(it.page) {
		if it.started && it.cursor == "" {
			return false
		}

		pageLimit := 0
		if it.limit > 0 {
			pageLimit = it.limit - it.yielded
		}

		items, cursor, err := GetPage[T](ctx, it.client, it.resource, pageLimit, it.cursor, it.filter)
		if err != nil {
			it.err = err
			return false
		}
		it.started = true
		it.page = items
		it.pos = 0
		it.cursor = cursor
	}

	it.item = it.page[it.pos]
	it.pos++
	it.yielded++
	return true
}

// Item devolve o item corrente. Válido apenas após Next devolver true.
func (it *Iterator[T]) Item() T {
	return it.item
}

// Err devolve o erro que interrompeu a iteração, se houver.
func (it *Iterator[T]) Err() error {
	return it.err
}

// All adapta o iterador para range-over-func. Um erro é entregue como último
// par da sequência.
//
//	for t, err := range it.All(ctx) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(t.ID)
//	}
func (it *Iterator[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for it.Next(ctx) {
			if !yield(it.Item(), nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// Collect consome o iterador inteiro em um slice.
func Collect[T any](ctx context.Context, it *Iterator[T]) ([]T, error) {
	var items []T
	for it.Next(ctx) {
		items = append(items, it.Item())
	}
	return items, it.Err()
}
