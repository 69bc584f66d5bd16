// Package registry is the single source of truth for configured TopoClimb
// backend endpoints. It keeps the endpoint set as an in-memory snapshot,
// persists every mutation as a whole set through a Store before the snapshot
// is swapped, and notifies subscribers after each successful change.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for registry mutations. Callers match with errors.Is.
var (
	// ErrInvalidURL marks a base URL that is not absolute http(s) or does not
	// end with a slash.
	ErrInvalidURL = errors.New("registry: invalid base URL")
	// ErrDuplicateURL marks a base URL already used by a different endpoint.
	ErrDuplicateURL = errors.New("registry: base URL already configured")
	// ErrLastEndpoint guards against deleting the only remaining endpoint.
	ErrLastEndpoint = errors.New("registry: cannot delete the last endpoint")
	// ErrNoEnabledEndpoint guards against disabling the only enabled endpoint.
	ErrNoEnabledEndpoint = errors.New("registry: cannot disable the last enabled endpoint")
	// ErrNotFound marks an unknown endpoint id.
	ErrNotFound = errors.New("registry: endpoint not found")
)

// UserSnapshot is the authenticated user on a backend, captured at login.
type UserSnapshot struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Endpoint is one configured backend instance. Snapshots handed out by the
// registry are value copies; mutations go through registry operations only.
type Endpoint struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	BaseURL   string        `json:"base_url"`
	Enabled   bool          `json:"enabled"`
	Default   bool          `json:"default"`
	AuthToken string        `json:"-"`
	User      *UserSnapshot `json:"user,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Authenticated reports whether the endpoint carries a login token.
func (e Endpoint) Authenticated() bool { return e.AuthToken != "" }

// Store is the durable persistence port. Load and Save operate on the whole
// endpoint set and must be atomic with respect to each other.
type Store interface {
	Load(ctx context.Context) ([]Endpoint, error)
	Save(ctx context.Context, endpoints []Endpoint) error
}

// Registry owns the configured endpoint set.
type Registry struct {
	store Store

	mu        sync.RWMutex
	endpoints []Endpoint
	subs      map[int]chan []Endpoint
	nextSub   int
}

// Open loads the stored endpoint set. On first run, when nothing is stored,
// the registry seeds itself with a single enabled endpoint (seedName at
// seedURL) and persists it immediately.
func Open(ctx context.Context, store Store, seedName, seedURL string) (*Registry, error) {
	endpoints, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("registry: loading endpoints: %w", err)
	}

	r := &Registry{
		store:     store,
		endpoints: endpoints,
		subs:      make(map[int]chan []Endpoint),
	}

	if len(endpoints) == 0 {
		now := time.Now()
		seed := Endpoint{
			ID:        uuid.New(),
			Name:      seedName,
			BaseURL:   seedURL,
			Enabled:   true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := validateBaseURL(seed.BaseURL); err != nil {
			return nil, err
		}
		if err := store.Save(ctx, []Endpoint{seed}); err != nil {
			return nil, fmt.Errorf("registry: seeding default endpoint: %w", err)
		}
		r.endpoints = []Endpoint{seed}
	}

	return r, nil
}

// validateBaseURL enforces the endpoint URL format: absolute http(s), ending
// with a path separator so resource paths can be appended verbatim.
func validateBaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: blank", ErrInvalidURL)
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return fmt.Errorf("%w: %q must start with http:// or https://", ErrInvalidURL, raw)
	}
	if !strings.HasSuffix(raw, "/") {
		return fmt.Errorf("%w: %q must end with a slash", ErrInvalidURL, raw)
	}
	return nil
}

// Add validates and appends a new endpoint, persists the set, and returns the
// stored endpoint. The id is generated when absent. When the new endpoint is
// flagged default, the flag is cleared on all others.
func (r *Registry) Add(ctx context.Context, ep Endpoint) (Endpoint, error) {
	if err := validateBaseURL(ep.BaseURL); err != nil {
		return Endpoint{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.endpoints {
		if existing.BaseURL == ep.BaseURL {
			return Endpoint{}, fmt.Errorf("%w: %s", ErrDuplicateURL, ep.BaseURL)
		}
	}

	if ep.ID == uuid.Nil {
		ep.ID = uuid.New()
	}
	now := time.Now()
	ep.CreatedAt = now
	ep.UpdatedAt = now

	next := cloneSet(r.endpoints)
	if ep.Default {
		for i := range next {
			next[i].Default = false
		}
	}
	next = append(next, ep)

	if err := r.commit(ctx, next); err != nil {
		return Endpoint{}, err
	}
	return ep, nil
}

// Update replaces the endpoint with a matching id, refreshing its update
// timestamp. The creation timestamp is preserved. Fails when another endpoint
// already uses the new base URL.
func (r *Registry) Update(ctx context.Context, ep Endpoint) (Endpoint, error) {
	if err := validateBaseURL(ep.BaseURL); err != nil {
		return Endpoint{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, existing := range r.endpoints {
		if existing.ID == ep.ID {
			idx = i
			continue
		}
		if existing.BaseURL == ep.BaseURL {
			return Endpoint{}, fmt.Errorf("%w: %s", ErrDuplicateURL, ep.BaseURL)
		}
	}
	if idx < 0 {
		return Endpoint{}, fmt.Errorf("%w: %s", ErrNotFound, ep.ID)
	}

	ep.CreatedAt = r.endpoints[idx].CreatedAt
	ep.UpdatedAt = time.Now()

	next := cloneSet(r.endpoints)
	if ep.Default {
		for i := range next {
			next[i].Default = false
		}
	}
	next[idx] = ep

	if err := r.commit(ctx, next); err != nil {
		return Endpoint{}, err
	}
	return ep, nil
}

// Delete removes an endpoint. Removing the only remaining endpoint is
// rejected so the registry never ends up empty.
func (r *Registry) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if len(r.endpoints) == 1 {
		return ErrLastEndpoint
	}

	next := cloneSet(r.endpoints)
	next = append(next[:idx], next[idx+1:]...)

	return r.commit(ctx, next)
}

// SetEnabled toggles an endpoint. Disabling the only enabled endpoint is
// rejected so broadcast queries always have at least one target.
func (r *Registry) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) (Endpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return Endpoint{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if !enabled && r.endpoints[idx].Enabled {
		enabledCount := 0
		for _, ep := range r.endpoints {
			if ep.Enabled {
				enabledCount++
			}
		}
		if enabledCount == 1 {
			return Endpoint{}, ErrNoEnabledEndpoint
		}
	}

	next := cloneSet(r.endpoints)
	next[idx].Enabled = enabled
	next[idx].UpdatedAt = time.Now()

	if err := r.commit(ctx, next); err != nil {
		return Endpoint{}, err
	}
	return next[idx], nil
}

// SetDefault marks exactly one endpoint as default, clearing the flag on all
// others.
func (r *Registry) SetDefault(ctx context.Context, id uuid.UUID) (Endpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return Endpoint{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := cloneSet(r.endpoints)
	for i := range next {
		next[i].Default = i == idx
	}
	next[idx].UpdatedAt = time.Now()

	if err := r.commit(ctx, next); err != nil {
		return Endpoint{}, err
	}
	return next[idx], nil
}

// Authenticate attaches login credentials to an endpoint. When no endpoint is
// currently default, the freshly authenticated one becomes default.
func (r *Registry) Authenticate(ctx context.Context, id uuid.UUID, token string, user *UserSnapshot) (Endpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return Endpoint{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := cloneSet(r.endpoints)
	next[idx].AuthToken = token
	if user != nil {
		u := *user
		next[idx].User = &u
	} else {
		next[idx].User = nil
	}
	hasDefault := false
	for _, ep := range next {
		if ep.Default {
			hasDefault = true
			break
		}
	}
	if !hasDefault {
		next[idx].Default = true
	}
	next[idx].UpdatedAt = time.Now()

	if err := r.commit(ctx, next); err != nil {
		return Endpoint{}, err
	}
	return next[idx], nil
}

// Logout clears the endpoint's credentials and its default flag.
func (r *Registry) Logout(ctx context.Context, id uuid.UUID) (Endpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return Endpoint{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := cloneSet(r.endpoints)
	next[idx].AuthToken = ""
	next[idx].User = nil
	next[idx].Default = false
	next[idx].UpdatedAt = time.Now()

	if err := r.commit(ctx, next); err != nil {
		return Endpoint{}, err
	}
	return next[idx], nil
}

// List returns all endpoints in stored order.
func (r *Registry) List() []Endpoint {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSet(r.endpoints)
}

// ListEnabled returns all enabled endpoints in stored order. Federation calls
// read this once at call start as their atomic backend snapshot.
func (r *Registry) ListEnabled() []Endpoint {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var enabled []Endpoint
	for _, ep := range r.endpoints {
		if ep.Enabled {
			enabled = append(enabled, ep)
		}
	}
	return enabled
}

// Get returns the endpoint with the given id.
func (r *Registry) Get(id uuid.UUID) (Endpoint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx := r.indexOf(id); idx >= 0 {
		return r.endpoints[idx], true
	}
	return Endpoint{}, false
}

// GetDefault returns the endpoint flagged default, else the first
// authenticated endpoint in stored order, else nothing.
func (r *Registry) GetDefault() (Endpoint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ep := range r.endpoints {
		if ep.Default {
			return ep, true
		}
	}
	for _, ep := range r.endpoints {
		if ep.Authenticated() {
			return ep, true
		}
	}
	return Endpoint{}, false
}

// Subscribe returns a channel receiving the full endpoint set after every
// successful mutation, plus a cancel function. Slow subscribers lose
// intermediate snapshots, never the most recent one.
func (r *Registry) Subscribe() (<-chan []Endpoint, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSub
	r.nextSub++
	ch := make(chan []Endpoint, 1)
	r.subs[id] = ch

	cancel := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.subs[id]; ok {
			delete(r.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// commit persists the next set, then swaps the in-memory snapshot and
// publishes it. Persist-then-publish: when Save fails, memory is untouched so
// it can never drift ahead of disk. Callers hold r.mu.
func (r *Registry) commit(ctx context.Context, next []Endpoint) error {
	if err := r.store.Save(ctx, next); err != nil {
		return fmt.Errorf("registry: persisting endpoints: %w", err)
	}
	r.endpoints = next

	for _, ch := range r.subs {
		snap := cloneSet(next)
		select {
		case ch <- snap:
		default:
			// Replace a stale pending snapshot with the latest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
	return nil
}

// indexOf returns the position of id in the current set. Callers hold r.mu.
func (r *Registry) indexOf(id uuid.UUID) int {
	for i, ep := range r.endpoints {
		if ep.ID == id {
			return i
		}
	}
	return -1
}

func cloneSet(endpoints []Endpoint) []Endpoint {
	out := make([]Endpoint, len(endpoints))
	copy(out, endpoints)
	return out
}
