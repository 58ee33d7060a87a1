// Package inventory keeps named Varastos in an in-memory Store, keyed by sequentially allocated ids.
package inventory

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/jt0/varasto/gomerr"
	"github.com/jt0/varasto/id"
	"github.com/jt0/varasto/varasto"
)

// Store is safe for concurrent use. Nothing outside the Store holds a reference to a stored Varasto; callers only
// ever see Inventory snapshots.
type Store struct {
	mu      sync.RWMutex
	ids     id.Sequence
	entries map[id.Uint]*entry
}

func NewStore() *Store {
	return &Store{entries: make(map[id.Uint]*entry)}
}

// Create validates the name and capacity and, only if both are acceptable, stores a new Varasto under the next id.
func (s *Store) Create(name string, capacity, initial float64) (Inventory, gomerr.Gomerr) {
	name, ge := validName(name)
	if ge != nil {
		return Inventory{}, ge
	}

	v, ge := varasto.New(capacity, initial)
	if ge != nil {
		return Inventory{}, ge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := &entry{name: name, varasto: v}
	inventoryId := s.ids.Next()
	s.entries[inventoryId] = e

	return e.snapshot(inventoryId), nil
}

func (s *Store) Get(inventoryId id.Uint) (Inventory, gomerr.Gomerr) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ge := s.entry(inventoryId)
	if ge != nil {
		return Inventory{}, ge
	}

	return e.snapshot(inventoryId), nil
}

// List returns every stored inventory ordered by id.
func (s *Store) List() []Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inventories := make([]Inventory, 0, len(s.entries))
	for inventoryId, e := range s.entries {
		inventories = append(inventories, e.snapshot(inventoryId))
	}
	sort.Slice(inventories, func(i, j int) bool {
		return inventories[i].Id < inventories[j].Id
	})

	return inventories
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

func (s *Store) Rename(inventoryId id.Uint, name string) (Inventory, gomerr.Gomerr) {
	name, ge := validName(name)
	if ge != nil {
		return Inventory{}, ge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ge := s.entry(inventoryId)
	if ge != nil {
		return Inventory{}, ge
	}
	e.name = name

	return e.snapshot(inventoryId), nil
}

// Add puts amount into the identified inventory and reports how much of it actually fit.
func (s *Store) Add(inventoryId id.Uint, amount float64) (float64, Inventory, gomerr.Gomerr) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ge := s.entry(inventoryId)
	if ge != nil {
		return 0, Inventory{}, ge
	}

	room := e.varasto.Room()
	if ge = e.varasto.Add(amount); ge != nil {
		return 0, Inventory{}, ge
	}

	return math.Min(amount, room), e.snapshot(inventoryId), nil
}

// Remove takes up to amount out of the identified inventory and reports how much was actually taken.
func (s *Store) Remove(inventoryId id.Uint, amount float64) (float64, Inventory, gomerr.Gomerr) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ge := s.entry(inventoryId)
	if ge != nil {
		return 0, Inventory{}, ge
	}

	removed, ge := e.varasto.Remove(amount)
	if ge != nil {
		return 0, Inventory{}, ge
	}

	return removed, e.snapshot(inventoryId), nil
}

// Delete removes the identified inventory and returns its final state. The id is not reused.
func (s *Store) Delete(inventoryId id.Uint) (Inventory, gomerr.Gomerr) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ge := s.entry(inventoryId)
	if ge != nil {
		return Inventory{}, ge
	}
	delete(s.entries, inventoryId)

	return e.snapshot(inventoryId), nil
}

// entry must be called with s.mu held.
func (s *Store) entry(inventoryId id.Uint) (*entry, gomerr.Gomerr) {
	e, ok := s.entries[inventoryId]
	if !ok {
		return nil, gomerr.NotFound(typeName, inventoryId.String())
	}
	return e, nil
}

func validName(name string) (string, gomerr.Gomerr) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", gomerr.Missing("name", typeName)
	}
	return name, nil
}
