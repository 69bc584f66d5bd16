package federation_test

import (
	"context"
	"sync"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/topoclimb/topoclimb-gateway/registry"
)

func TestFederation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Federation Suite")
}

// memStore is an in-memory registry store for federation specs; persistence
// itself is covered by the registry suite.
type memStore struct {
	mu        sync.Mutex
	endpoints []registry.Endpoint
}

func (s *memStore) Load(context.Context) ([]registry.Endpoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]registry.Endpoint, len(s.endpoints))
	copy(out, s.endpoints)
	return out, nil
}

func (s *memStore) Save(_ context.Context, endpoints []registry.Endpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endpoints = make([]registry.Endpoint, len(endpoints))
	copy(s.endpoints, endpoints)
	return nil
}
