// Package cache persists one content snapshot per language so the site can
// start with the last known content when the backend is unreachable.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rpupo63/portfolio-backend/models"
)

// SnapshotCache stores the latest snapshot of each language.
type SnapshotCache interface {
	// Read returns ErrCacheMiss when nothing usable is stored.
	Read(ctx context.Context, lang models.Language) (*models.SnapshotPatch, error)
	Write(ctx context.Context, lang models.Language, snapshot models.Snapshot) error
}

// Error represents an error type for cache operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrCacheMiss indicates that no snapshot, or only a corrupt one, exists.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)

func decode(data []byte) (*models.SnapshotPatch, error) {
	var patch models.SnapshotPatch
	if err := json.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("%w: corrupt snapshot: %v", ErrCacheMiss, err)
	}
	return &patch, nil
}

func encode(snapshot models.Snapshot) ([]byte, error) {
	return json.Marshal(snapshot)
}
