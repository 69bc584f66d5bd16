package federation

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/topoclimb/topoclimb-gateway/registry"
	"github.com/topoclimb/topoclimb-gateway/topoclimb"
)

// Factory caches one API client per endpoint. The base URL is the only field
// that invalidates a cached client: renaming an endpoint keeps its client,
// changing its URL rebuilds it. All clients share one HTTP transport.
type Factory struct {
	http *http.Client

	mu      sync.RWMutex
	clients map[uuid.UUID]*cachedClient
}

type cachedClient struct {
	baseURL string // URL at the time of caching, compared on every lookup
	client  *topoclimb.Client
}

func NewFactory(httpClient *http.Client) *Factory {
	return &Factory{
		http:    httpClient,
		clients: make(map[uuid.UUID]*cachedClient),
	}
}

// Client returns the cached client for the endpoint, rebuilding it when the
// endpoint's base URL no longer matches the cached one.
func (f *Factory) Client(ep registry.Endpoint) *topoclimb.Client {
	f.mu.RLock()
	cached, ok := f.clients[ep.ID]
	f.mu.RUnlock()
	if ok && cached.baseURL == ep.BaseURL {
		return cached.client
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	// Re-check: another goroutine may have rebuilt it meanwhile.
	if cached, ok := f.clients[ep.ID]; ok && cached.baseURL == ep.BaseURL {
		return cached.client
	}
	client := topoclimb.New(ep.BaseURL, f.http)
	f.clients[ep.ID] = &cachedClient{baseURL: ep.BaseURL, client: client}
	return client
}

// Remove drops the cached client for one endpoint id.
func (f *Factory) Remove(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.clients, id)
}

// Clear drops all cached clients.
func (f *Factory) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clients = make(map[uuid.UUID]*cachedClient)
}
