package audio

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultTTL is how long a synthesized clip stays retrievable.
	DefaultTTL = 5 * time.Minute

	// maxBlobs bounds process memory; synthesis volume is low.
	maxBlobs = 256
)

// Store holds synthesized audio blobs under random ids until they expire.
// Expiry is handled by the TTL-evicting LRU; a fetch racing an eviction may
// see a miss for a blob that was about to expire anyway, which is fine.
type Store struct {
	blobs *expirable.LRU[string, []byte]
}

// NewStore creates a blob store with the given TTL (DefaultTTL if zero).
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		blobs: expirable.NewLRU[string, []byte](maxBlobs, nil, ttl),
	}
}

// Put stores audio bytes and returns the blob id.
func (s *Store) Put(data []byte) string {
	id := uuid.NewString()
	s.blobs.Add(id, data)
	return id
}

// Get returns the blob bytes, or false if unknown or expired.
func (s *Store) Get(id string) ([]byte, bool) {
	return s.blobs.Get(id)
}
