package storage

import (
	"context"
	"sync"
)

// Provider opens one SQLiteStorage on first use and hands the same instance
// to every later caller. Concurrent first calls open, migrate and seed once.
type Provider struct {
	store *SQLiteStorage
	path  string
	mu    sync.Mutex
}

// NewProvider returns a provider for the database at path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Get returns the shared storage, opening it if needed. A failed open is
// not cached, so a later call may retry.
func (p *Provider) Get(ctx context.Context) (*SQLiteStorage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store != nil {
		return p.store, nil
	}

	store, err := Open(ctx, p.path)
	if err != nil {
		return nil, err
	}
	if _, err := store.ListCategories(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	p.store = store
	return store, nil
}

// Close closes the shared storage if it was opened.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store == nil {
		return nil
	}
	err := p.store.Close()
	p.store = nil
	return err
}
