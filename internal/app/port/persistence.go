package port

import "context"

// StatePersister stores named opaque blobs across process restarts. Only the
// persistence subset of the application state goes through it; NFT and
// collection data is a rebuildable cache and is never written.
type StatePersister interface {
	// SaveBlob writes the blob under the given key, replacing any previous value.
	SaveBlob(ctx context.Context, key string, blob []byte) error

	// LoadBlob reads the blob stored under key. A missing key returns
	// (nil, nil), not an error.
	LoadBlob(ctx context.Context, key string) ([]byte, error)

	// Close releases the underlying storage handle.
	Close() error
}
