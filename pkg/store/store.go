// Package store owns the in-memory collection of activities for the
// lifetime of the process.
package store

import (
	"sync"

	"tableflip.dev/routine/pkg/activity"
)

// Store defines the contract for the authoritative activity collection.
// Reads hand out copies; the only way to change what is stored is through
// Add, Remove and Update.
type Store interface {
	Add(a activity.Activity) error
	Remove(id string) bool
	Update(id string, f activity.Fields) (activity.Activity, error)
	Get(id string) (activity.Activity, bool)
	All() []activity.Activity
	Len() int
}

// Memory is a Store kept in insertion order.
type Memory struct {
	mu    sync.RWMutex
	items []activity.Activity
	index map[string]int
}

var _ Store = (*Memory)(nil)

// NewMemory creates a store holding seed, in order.
func NewMemory(seed ...activity.Activity) (*Memory, error) {
	m := &Memory{
		items: make([]activity.Activity, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	for _, a := range seed {
		if err := m.Add(a); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add appends a. It fails with a *DuplicateIDError when the id is taken.
func (m *Memory) Add(a activity.Activity) error {
	if a.ID == "" {
		return ErrEmptyID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.index[a.ID]; ok {
		return &DuplicateIDError{ID: a.ID}
	}
	m.index[a.ID] = len(m.items)
	m.items = append(m.items, a)
	return nil
}

// Remove deletes the activity with id and reports whether it was present.
// Removing an absent id is not an error.
func (m *Memory) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.index[id]
	if !ok {
		return false
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	delete(m.index, id)
	for j := i; j < len(m.items); j++ {
		m.index[m.items[j].ID] = j
	}
	return true
}

// Update replaces the mutable fields of the activity with id, keeping its
// position. It fails with a *NotFoundError when id is absent.
func (m *Memory) Update(id string, f activity.Fields) (activity.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.index[id]
	if !ok {
		return activity.Activity{}, &NotFoundError{ID: id}
	}
	m.items[i].Apply(f)
	return m.items[i], nil
}

func (m *Memory) Get(id string) (activity.Activity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[id]
	if !ok {
		return activity.Activity{}, false
	}
	return m.items[i], true
}

// All returns a snapshot in insertion order.
func (m *Memory) All() []activity.Activity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]activity.Activity, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
