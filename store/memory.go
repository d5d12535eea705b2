package store

import (
	"context"
	"sync"
)

// Memory is an in-memory Store for tests and embedding hosts that manage
// document bytes themselves.
//
// Memory is safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	docs     map[string]string
	versions map[string]int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		docs:     make(map[string]string),
		versions: make(map[string]int64),
	}
}

// Ensure Memory implements Store.
var _ Store = (*Memory)(nil)

// Put seeds a document, creating or replacing it.
func (m *Memory) Put(name, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs[name] = text
	m.versions[name]++
}

// Read returns the full document text.
func (m *Memory) Read(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", NewPathError("read", name, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	text, ok := m.docs[name]
	if !ok {
		return "", NewPathError("read", name, ErrNotFound)
	}
	return text, nil
}

// Overwrite replaces the full document text, creating it if absent.
func (m *Memory) Overwrite(ctx context.Context, name string, text string) error {
	if err := ctx.Err(); err != nil {
		return NewPathError("overwrite", name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs[name] = text
	m.versions[name]++
	return nil
}

// Delete removes a document.
func (m *Memory) Delete(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs, name)
	delete(m.versions, name)
}

// Version returns how many times the document has been written, 0 if it
// does not exist.
func (m *Memory) Version(name string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.versions[name]
}

// Len returns the number of stored documents.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.docs)
}
