package federation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/topoclimb/topoclimb-gateway/registry"
	"github.com/topoclimb/topoclimb-gateway/topoclimb"
)

// Engine executes fetch operations against the registry's backends and tracks
// a per-backend outcome status so absorbed broadcast failures stay observable.
type Engine struct {
	registry *registry.Registry
	factory  *Factory

	mu       sync.RWMutex
	statuses map[uuid.UUID]*backendOutcome
}

type backendOutcome struct {
	name                string
	lastFetch           time.Time
	lastError           string
	consecutiveFailures int
}

// BackendStatus is a snapshot of one backend's recent fetch outcomes.
type BackendStatus struct {
	BackendID           uuid.UUID `json:"backend_id"`
	Name                string    `json:"name"`
	LastFetch           time.Time `json:"last_fetch"`
	LastError           string    `json:"last_error,omitempty"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
}

func NewEngine(reg *registry.Registry, factory *Factory) *Engine {
	return &Engine{
		registry: reg,
		factory:  factory,
		statuses: make(map[uuid.UUID]*backendOutcome),
	}
}

// Registry exposes the engine's registry to API handlers.
func (e *Engine) Registry() *registry.Registry { return e.registry }

// Factory exposes the engine's client factory.
func (e *Engine) Factory() *Factory { return e.factory }

// Statuses returns a snapshot of per-backend fetch outcomes in no particular
// order.
func (e *Engine) Statuses() []BackendStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]BackendStatus, 0, len(e.statuses))
	for id, s := range e.statuses {
		out = append(out, BackendStatus{
			BackendID:           id,
			Name:                s.name,
			LastFetch:           s.lastFetch,
			LastError:           s.lastError,
			ConsecutiveFailures: s.consecutiveFailures,
		})
	}
	return out
}

func (e *Engine) recordOutcome(ep registry.Endpoint, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.statuses[ep.ID]
	if !ok {
		s = &backendOutcome{}
		e.statuses[ep.ID] = s
	}
	s.name = ep.Name
	s.lastFetch = time.Now()
	if err != nil {
		s.consecutiveFailures++
		s.lastError = err.Error()
		return
	}
	s.consecutiveFailures = 0
	s.lastError = ""
}

// clientFor returns an authenticated client view for the endpoint.
func (e *Engine) clientFor(ep registry.Endpoint) *topoclimb.Client {
	return e.factory.Client(ep).WithToken(ep.AuthToken)
}

// Broadcast runs fetch against every enabled backend concurrently and merges
// the tagged results in registry order. The enabled set is read once at call
// start, so a registry mutation during the fan-out cannot change the task set.
//
// A failing backend contributes an empty result instead of failing the call:
// one offline backend must not hide the data of the others. The failure is
// logged and recorded in the engine's statuses, never retried here.
func Broadcast[T any](ctx context.Context, e *Engine, fetch func(context.Context, *topoclimb.Client) ([]T, error)) ([]Federated[T], error) {
	backends := e.registry.ListEnabled()
	if len(backends) == 0 {
		return nil, ErrNoBackends
	}

	perBackend := make([][]Federated[T], len(backends))
	var wg sync.WaitGroup
	for i, ep := range backends {
		wg.Add(1)
		go func(i int, ep registry.Endpoint) {
			defer wg.Done()

			items, err := fetch(ctx, e.clientFor(ep))
			e.recordOutcome(ep, err)
			if err != nil {
				slog.Warn("federation: backend fetch failed during broadcast",
					"backend", ep.Name, "id", ep.ID, "error", err)
				return
			}

			origin := provenanceOf(ep)
			tagged := make([]Federated[T], len(items))
			for j, item := range items {
				tagged[j] = Federated[T]{Origin: origin, Item: item}
			}
			perBackend[i] = tagged
		}(i, ep)
	}
	wg.Wait()

	merged := make([]Federated[T], 0)
	for _, items := range perBackend {
		merged = append(merged, items...)
	}
	return merged, nil
}

// One runs fetch against exactly one named backend. Unlike Broadcast, a fetch
// failure is returned verbatim: the caller asked for this backend and needs
// to see why it failed.
func One[T any](ctx context.Context, e *Engine, backendID uuid.UUID, fetch func(context.Context, *topoclimb.Client) (T, error)) (Federated[T], error) {
	var zero Federated[T]

	ep, ok := e.registry.Get(backendID)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrBackendNotFound, backendID)
	}

	item, err := fetch(ctx, e.clientFor(ep))
	e.recordOutcome(ep, err)
	if err != nil {
		return zero, err
	}
	return Federated[T]{Origin: provenanceOf(ep), Item: item}, nil
}

func provenanceOf(ep registry.Endpoint) Provenance {
	return Provenance{
		OriginID:   ep.ID,
		OriginName: ep.Name,
		OriginURL:  ep.BaseURL,
	}
}
