package handler

import (
	"encoding/json"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// newBroadcastCache creates a TTL cache for merged broadcast results keyed by
// request path and query. A fan-out hits every enabled backend, but catalogue
// data changes slowly; a short TTL absorbs request bursts without serving
// stale data for long. Expired entries are evicted automatically.
func newBroadcastCache(ttl time.Duration) *ttlcache.Cache[string, json.RawMessage] {
	cache := ttlcache.New[string, json.RawMessage](
		ttlcache.WithTTL[string, json.RawMessage](ttl),
		ttlcache.WithDisableTouchOnHit[string, json.RawMessage](),
	)
	go cache.Start() // starts the automatic expired-item eviction loop
	return cache
}
