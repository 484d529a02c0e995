package checks

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/raywall/starkbank-go/errs"
)

// Params é o saco de parâmetros nomeados usado pelos construtores.
type Params map[string]any

// Checker consome um Params campo a campo, acumulando erros de tipo.
type Checker struct {
	params Params
	errors []error
}

// New cria um Checker sobre uma cópia de params; o mapa do chamador não é alterado.
func New(params Params) *Checker {
	copied := make(Params, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return &Checker{params: copied}
}

// Pop devolve o valor de name e o remove do saco. Valores nil contam como ausentes.
func (c *Checker) Pop(name string) (any, bool) {
	value, ok := c.params[name]
	delete(c.params, name)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// Value é um atalho para Pop que ignora o indicador de presença.
func (c *Checker) Value(name string) any {
	value, _ := c.Pop(name)
	return value
}

func (c *Checker) fail(name, format string, args ...any) {
	c.errors = append(c.errors, &errs.ValidationError{Field: name, Message: fmt.Sprintf(format, args...)})
}

// String consome um campo textual.
func (c *Checker) String(name string) string {
	value, ok := c.Pop(name)
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case *string:
		if v != nil {
			return *v
		}
		return ""
	}
	c.fail(name, "expected string, got %T", value)
	return ""
}

// Int64 consome um campo inteiro (valores monetários são sempre em centavos).
func (c *Checker) Int64(name string) int64 {
	value, ok := c.Pop(name)
	if !ok {
		return 0
	}
	n, err := toInt64(value)
	if err != nil {
		c.fail(name, "%v", err)
		return 0
	}
	return n
}

// Strings consome uma lista de strings ([]string ou []any vindo de JSON).
func (c *Checker) Strings(name string) []string {
	value, ok := c.Pop(name)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, isString := item.(string)
			if !isString {
				c.fail(name, "item %d: expected string, got %T", i, item)
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	c.fail(name, "expected list of strings, got %T", value)
	return nil
}

// Map consome um objeto aninhado.
func (c *Checker) Map(name string) map[string]any {
	value, ok := c.Pop(name)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case map[string]any:
		return v
	case Params:
		return v
	}
	c.fail(name, "expected object, got %T", value)
	return nil
}

// DateTime consome um campo de data/hora, normalizado para UTC.
func (c *Checker) DateTime(name string) *time.Time {
	value, ok := c.Pop(name)
	if !ok {
		return nil
	}
	t, err := ParseDateTime(value)
	if err != nil {
		c.fail(name, "%v", err)
		return nil
	}
	return &t
}

// Date consome um campo de data, truncado para meia-noite UTC.
func (c *Checker) Date(name string) *time.Time {
	value, ok := c.Pop(name)
	if !ok {
		return nil
	}
	t, err := ParseDate(value)
	if err != nil {
		c.fail(name, "%v", err)
		return nil
	}
	return &t
}

// Finish encerra a checagem. Retorna o primeiro erro de tipo registrado ou,
// se sobraram chaves no saco, um ValidationError listando-as em ordem.
func (c *Checker) Finish() error {
	if len(c.errors) > 0 {
		return c.errors[0]
	}
	if len(c.params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.params))
	for k := range c.params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &errs.ValidationError{
		Field:   keys[0],
		Message: "unknown parameters: " + strings.Join(keys, ", "),
	}
}

func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", v)
		}
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("expected integer, got %v", v)
		}
		return int64(v), nil
	case json.Number:
		return v.Int64()
	}
	return 0, fmt.Errorf("expected integer, got %T", value)
}
