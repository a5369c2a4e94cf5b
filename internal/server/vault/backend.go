package vault

import (
	"context"
	"time"
)

// Object describes one stored file under an entity prefix.
type Object struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Backend is the storage the vault writes to. Keys are slash-separated
// "{entity}/{name}" paths.
type Backend interface {
	// Put publishes data under key atomically: readers see nothing or all of it.
	Put(ctx context.Context, key string, data []byte) error
	// Get returns common.ErrorNotFound for absent keys.
	Get(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
	// List returns the objects directly under prefix. An absent prefix is empty.
	List(ctx context.Context, prefix string) ([]Object, error)
	// AppendLine adds one line to the object at key, creating it if needed.
	AppendLine(ctx context.Context, key, line string) error
}

// Presigner is implemented by backends that can hand out direct download
// links.
type Presigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
