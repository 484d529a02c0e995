package emulator

import (
	"maps"
	"strconv"
	"sync"
	"time"
)

// Object é a representação genérica de um recurso no emulador.
type Object = map[string]any

// firstID é o primeiro id atribuído; ids da API são numéricos com 16 dígitos.
const firstID = 5_000_000_000_000_000

type collection struct {
	order []string
	items map[string]Object
}

// Store guarda os objetos de todos os endpoints em memória.
// Seguro para uso concorrente.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection
	seq         int64
	now         func() time.Time
}

// NewStore cria um Store vazio.
func NewStore() *Store {
	return &Store{
		collections: make(map[string]*collection),
		now:         time.Now,
	}
}

func (s *Store) collection(endpoint string) *collection {
	c, ok := s.collections[endpoint]
	if !ok {
		c = &collection{items: make(map[string]Object)}
		s.collections[endpoint] = c
	}
	return c
}

func (s *Store) nextID() string {
	s.seq++
	return strconv.FormatInt(firstID+s.seq, 10)
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

func (s *Store) put(endpoint string, obj Object) Object {
	obj = maps.Clone(obj)
	if obj == nil {
		obj = Object{}
	}
	if id, _ := obj["id"].(string); id == "" {
		obj["id"] = s.nextID()
	}

	c := s.collection(endpoint)
	id := obj["id"].(string)
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = obj
	return maps.Clone(obj)
}

// Insert grava um objeto criado via API: atribui id, status "created" e
// os carimbos created/updated quando ausentes.
func (s *Store) Insert(endpoint string, obj Object) Object {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj = maps.Clone(obj)
	if obj == nil {
		obj = Object{}
	}
	now := s.timestamp()
	if _, ok := obj["status"]; !ok {
		obj["status"] = "created"
	}
	if _, ok := obj["created"]; !ok {
		obj["created"] = now
	}
	if _, ok := obj["updated"]; !ok {
		obj["updated"] = now
	}
	return s.put(endpoint, obj)
}

// Seed grava objetos como estão, atribuindo apenas o id quando ausente.
func (s *Store) Seed(endpoint string, objs ...Object) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, obj := range objs {
		s.put(endpoint, obj)
	}
}

// Load grava seeds agrupadas por endpoint.
func (s *Store) Load(seeds map[string][]Object) {
	for endpoint, objs := range seeds {
		s.Seed(endpoint, objs...)
	}
}

// Append grava um objeto sem defaults além do id e do carimbo created.
func (s *Store) Append(endpoint string, obj Object) Object {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj = maps.Clone(obj)
	if obj == nil {
		obj = Object{}
	}
	if _, ok := obj["created"]; !ok {
		obj["created"] = s.timestamp()
	}
	return s.put(endpoint, obj)
}

// Get devolve uma cópia do objeto id em endpoint.
func (s *Store) Get(endpoint, id string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[endpoint]
	if !ok {
		return nil, false
	}
	obj, ok := c.items[id]
	return maps.Clone(obj), ok
}

// List devolve uma cópia dos objetos do endpoint na ordem de inserção.
func (s *Store) List(endpoint string) []Object {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[endpoint]
	if !ok {
		return nil
	}
	out := make([]Object, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, maps.Clone(c.items[id]))
	}
	return out
}

// Patch mescla os campos informados no objeto e atualiza o carimbo updated.
func (s *Store) Patch(endpoint, id string, patch Object) (Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[endpoint]
	if !ok {
		return nil, false
	}
	obj, ok := c.items[id]
	if !ok {
		return nil, false
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		obj[k] = v
	}
	obj["updated"] = s.timestamp()
	return maps.Clone(obj), true
}

// Delete remove o objeto e o devolve.
func (s *Store) Delete(endpoint, id string) (Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[endpoint]
	if !ok {
		return nil, false
	}
	obj, ok := c.items[id]
	if !ok {
		return nil, false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return obj, true
}
