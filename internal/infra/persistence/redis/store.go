// Package redis persists registry snapshots as a Redis hash with one field
// per bucket.
package redis

import (
	"context"
	"fmt"

	"carehome/internal/infra/persistence/bucket"
	"carehome/pkg/domain"

	"github.com/go-redis/redis/v8"
)

var _ domain.SnapshotStore = (*Store)(nil)

// DefaultKey is the hash holding the snapshot when no key is configured.
const DefaultKey = "carehome:snapshot"

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// Store reads and writes the snapshot hash.
type Store struct {
	client *redis.Client
	key    string
}

// NewStore connects to Redis and verifies the connection.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewWithClient(client, opts.Key), nil
}

// NewWithClient wraps an existing client. An empty key selects DefaultKey.
func NewWithClient(client *redis.Client, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{client: client, key: key}
}

// SaveSnapshot replaces the hash in a MULTI/EXEC block.
func (s *Store) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	payloads, err := bucket.Encode(snap)
	if err != nil {
		return err
	}
	values := make([]any, 0, 2*len(payloads))
	for _, p := range payloads {
		values = append(values, p.Name, p.Data)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		pipe.HSet(ctx, s.key, values...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("write snapshot hash: %w", err)
	}
	return nil
}

// LoadSnapshot reads the hash back. A missing key yields domain.ErrNoSnapshot.
func (s *Store) LoadSnapshot(ctx context.Context) (domain.Snapshot, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		if err == redis.Nil {
			return domain.Snapshot{}, domain.ErrNoSnapshot
		}
		return domain.Snapshot{}, fmt.Errorf("read snapshot hash: %w", err)
	}
	payloads := make(map[string][]byte, len(fields))
	for name, value := range fields {
		payloads[name] = []byte(value)
	}
	return bucket.Decode(payloads)
}

// Close closes the underlying client.
func (s *Store) Close() error { return s.client.Close() }
