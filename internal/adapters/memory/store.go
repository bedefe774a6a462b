// Package memory provides an in-memory ports.TreeStore, used by tests and
// as a scratch workspace for embedding callers.
package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/arborlab/arbor/pkg/ports"
	"github.com/arborlab/arbor/pkg/tree"
)

type entry struct {
	doc     []byte
	modTime time.Time
}

// Store implements ports.TreeStore in memory. Safe for concurrent use.
// Documents are kept serialized so callers can never mutate stored state
// through a shared pointer.
type Store struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

// NewStore creates a new empty in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

// Save stores the document under name and advances its modification time.
func (s *Store) Save(ctx context.Context, name string, doc *tree.TreeModel) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = entry{doc: raw, modTime: s.now()}
	return nil
}

// Load retrieves the document stored under name.
func (s *Store) Load(ctx context.Context, name string) (*tree.TreeModel, error) {
	s.mu.RLock()
	e, ok := s.data[name]
	s.mu.RUnlock()
	if !ok {
		return nil, ports.ErrTreeNotFound
	}
	var doc tree.TreeModel
	if err := json.Unmarshal(e.doc, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes the document stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns all stored document names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.data))
	for n := range s.data {
		names = append(names, n)
	}
	return names, nil
}

// ModTime returns the document's last save time.
func (s *Store) ModTime(ctx context.Context, name string) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[name]
	if !ok {
		return time.Time{}, ports.ErrTreeNotFound
	}
	return e.modTime, nil
}

// Touch bumps the stored modification time without changing content.
// Tests use it to simulate an external edit.
func (s *Store) Touch(name string, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.data[name]; ok {
		e.modTime = t
		s.data[name] = e
	}
}
