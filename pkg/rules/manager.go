package rules

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Manager compila expressões CEL sobre objetos da API. O objeto avaliado
// fica disponível na variável "item", com as chaves do JSON da API
// (ex: item.amount > 1000 && item.status == 'success').
type Manager struct {
	env *cel.Env
}

// NewManager inicializa o ambiente CEL.
func NewManager() (*Manager, error) {
	env, err := cel.NewEnv(
		cel.Variable("item", cel.DynType),
	)
	if err != nil {
		return nil, fmt.Errorf("erro fatal CEL init: %w", err)
	}
	return &Manager{env: env}, nil
}

// Program é uma expressão compilada, reutilizável entre itens.
type Program struct {
	expr string
	prg  cel.Program
}

// Compile compila expr. Expressão vazia devolve um Program nil, que aprova
// todos os itens em Match.
func (m *Manager) Compile(expr string) (*Program, error) {
	if expr == "" {
		return nil, nil
	}
	ast, issues := m.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("erro compilação CEL '%s': %w", expr, issues.Err())
	}
	prg, err := m.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar programa CEL: %w", err)
	}
	return &Program{expr: expr, prg: prg}, nil
}

// Eval avalia a expressão sobre item e devolve o valor nativo.
func (p *Program) Eval(item any) (any, error) {
	activation, err := Activation(item)
	if err != nil {
		return nil, err
	}
	out, _, err := p.prg.Eval(activation)
	if err != nil {
		return nil, fmt.Errorf("erro execução CEL '%s': %w", p.expr, err)
	}
	return out.Value(), nil
}

// Match avalia a expressão como condição.
func (p *Program) Match(item any) (bool, error) {
	if p == nil {
		return true, nil
	}
	out, err := p.Eval(item)
	if err != nil {
		return false, err
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("resultado de '%s' não é booleano: %T", p.expr, out)
	}
	return ok, nil
}

// Activation converte item (struct de recurso ou mapa) nas variáveis CEL.
// Números inteiros viram int64 para que item.amount > 100 compare sem casts.
func Activation(item any) (map[string]any, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar item: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("erro ao decodificar item: %w", err)
	}
	return map[string]any{"item": normalize(value)}, nil
}

func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for k, inner := range v {
			v[k] = normalize(inner)
		}
		return v
	case []any:
		for i, inner := range v {
			v[i] = normalize(inner)
		}
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		f, _ := v.Float64()
		return f
	}
	return value
}
