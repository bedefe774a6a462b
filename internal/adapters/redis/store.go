// Package redis provides a Redis-backed ports.TreeStore, used by editor
// backends that keep tree documents in a shared cache instead of on local
// disk.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/arborlab/arbor/pkg/ports"
	"github.com/arborlab/arbor/pkg/tree"
)

// Store implements ports.TreeStore on Redis.
//
// Each document lives in a hash holding the serialized tree and its
// modification time, plus a ZSET index for listing.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for stored documents.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for documents.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "arbor:tree:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the document and stamps its modification time.
func (s *Store) Save(ctx context.Context, name string, doc *tree.TreeModel) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}

	now := time.Now()
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, s.key(name), "doc", data, "mtime", now.UnixNano())
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key(name), s.ttl)
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  float64(now.Unix()),
		Member: name,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the document stored under name.
func (s *Store) Load(ctx context.Context, name string) (*tree.TreeModel, error) {
	val, err := s.client.HGet(ctx, s.key(name), "doc").Result()
	if err != nil {
		if err == backend.Nil {
			return nil, ports.ErrTreeNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var doc tree.TreeModel
	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tree: %w", err)
	}
	return &doc, nil
}

// Delete removes the document.
func (s *Store) Delete(ctx context.Context, name string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(name))
	pipe.ZRem(ctx, s.indexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns stored document names from the index.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list trees: %w", err)
	}
	return names, nil
}

// ModTime returns the document's last save time.
func (s *Store) ModTime(ctx context.Context, name string) (time.Time, error) {
	val, err := s.client.HGet(ctx, s.key(name), "mtime").Result()
	if err != nil {
		if err == backend.Nil {
			return time.Time{}, ports.ErrTreeNotFound
		}
		return time.Time{}, fmt.Errorf("failed to get mtime from redis: %w", err)
	}
	nanos, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt mtime for %q: %w", name, err)
	}
	return time.Unix(0, nanos), nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
