package rules

// Selection combina o filtro (where) e a projeção (select) usados na listagem.
// Qualquer um dos dois pode ser nil.
type Selection struct {
	Where  *Program
	Select *Program
}

// NewSelection compila as duas expressões; strings vazias desligam cada etapa.
func (m *Manager) NewSelection(where, sel string) (*Selection, error) {
	w, err := m.Compile(where)
	if err != nil {
		return nil, err
	}
	s, err := m.Compile(sel)
	if err != nil {
		return nil, err
	}
	return &Selection{Where: w, Select: s}, nil
}

// Apply devolve o valor a exibir para item e se ele passou no filtro.
// Sem projeção, o próprio item é devolvido.
func (s *Selection) Apply(item any) (any, bool, error) {
	ok, err := s.Where.Match(item)
	if err != nil || !ok {
		return nil, false, err
	}
	if s.Select == nil {
		return item, true, nil
	}
	value, err := s.Select.Eval(item)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}
