package langpref

import (
	"context"
	"sync"
)

// Store persists the language chosen by a subject, typically a user ID.
type Store interface {
	// Get returns the stored language. Returns ErrNotFound if none is stored.
	Get(ctx context.Context, subject string) (string, error)

	// Set stores lang for subject, replacing any previous choice.
	Set(ctx context.Context, subject, lang string) error

	// Delete removes the stored choice. Deleting a missing entry is not an error.
	Delete(ctx context.Context, subject string) error
}

// MemoryStore is an in-process Store safe for concurrent use.
type MemoryStore struct {
	items map[string]string
	mu    sync.RWMutex
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, subject string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lang, ok := m.items[subject]
	if !ok {
		return "", ErrNotFound
	}
	return lang, nil
}

func (m *MemoryStore) Set(_ context.Context, subject, lang string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[subject] = lang
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, subject string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, subject)
	return nil
}

var _ Store = (*MemoryStore)(nil)
