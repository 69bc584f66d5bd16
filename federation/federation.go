// Package federation aggregates results from every enabled TopoClimb backend
// into one provenance-tagged result set. Broadcast queries tolerate individual
// backend failures; identity queries surface them.
package federation

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
)

var (
	// ErrNoBackends means a broadcast query found zero enabled backends.
	ErrNoBackends = errors.New("federation: no enabled backends")
	// ErrBackendNotFound means an identity query named an unknown backend id.
	ErrBackendNotFound = errors.New("federation: backend not found")
)

// Provenance records which backend a resource instance came from.
// Immutable once attached.
type Provenance struct {
	OriginID   uuid.UUID `json:"origin_id"`
	OriginName string    `json:"origin_name"`
	OriginURL  string    `json:"origin_url"`
}

// GlobalID builds the globally unique identity of a resource: the same local
// id fetched from two backends is two distinct entities.
func (p Provenance) GlobalID(localID int64) string {
	return p.OriginID.String() + ":" + strconv.FormatInt(localID, 10)
}

// Federated pairs a fetched resource with its origin.
type Federated[T any] struct {
	Origin Provenance `json:"origin"`
	Item   T          `json:"item"`
}
