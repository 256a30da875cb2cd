package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rizqly/rizqly/internal/localcache"
)

// Manager hands out one Store per owner, sharing the remote client and
// the cache. Stores are created lazily and loaded once on first use.
type Manager struct {
	remote RemoteStore
	cache  localcache.BlobStore
	log    zerolog.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager creates a Manager. remote may be nil when the remote store
// is not configured, in which case every store runs local-only.
func NewManager(remote RemoteStore, cache localcache.BlobStore, log zerolog.Logger) *Manager {
	return &Manager{
		remote: remote,
		cache:  cache,
		log:    log,
		stores: make(map[string]*Store),
	}
}

// For returns the store for ownerID, creating and loading it on first
// use. An empty ownerID yields the unauthenticated Empty store.
func (m *Manager) For(ctx context.Context, ownerID string) *Store {
	m.mu.Lock()
	st, ok := m.stores[ownerID]
	if !ok {
		st = New(ownerID, m.remote, m.cache, m.log)
		m.stores[ownerID] = st
	}
	m.mu.Unlock()

	if !ok {
		st.Load(ctx)
	}
	return st
}
