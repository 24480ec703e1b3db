// File: utils/kvstore.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Named collections used by the wizard flows.
const (
	KVManagedServices = "managed-services"
	KVBookingLinks    = "booking-links"
)

// KVStore persists JSON-serializable blobs under named collections.
// Each collection maps to a Redis hash; writes are last-write-wins and
// there is no transactional guarantee across collections.
type KVStore struct {
	client *redis.Client
}

func NewKVStore(client *redis.Client) *KVStore {
	return &KVStore{client: client}
}

// Put serializes value and stores it under collection/key.
func (s *KVStore) Put(ctx context.Context, collection, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore: failed to marshal %s/%s: %w", collection, key, err)
	}
	if err := s.client.HSet(ctx, collection, key, data).Err(); err != nil {
		return fmt.Errorf("kvstore: failed to write %s/%s: %w", collection, key, err)
	}
	return nil
}

// Get loads collection/key into out. Returns redis.Nil if the key is absent.
func (s *KVStore) Get(ctx context.Context, collection, key string, out any) error {
	data, err := s.client.HGet(ctx, collection, key).Result()
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("kvstore: failed to decode %s/%s: %w", collection, key, err)
	}
	return nil
}

// List returns every raw entry in a collection, keyed by id.
func (s *KVStore) List(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	entries, err := s.client.HGetAll(ctx, collection).Result()
	if err != nil {
		return nil, fmt.Errorf("kvstore: failed to list %s: %w", collection, err)
	}
	out := make(map[string]json.RawMessage, len(entries))
	for k, v := range entries {
		out[k] = json.RawMessage(v)
	}
	return out, nil
}

// Delete removes collection/key. Deleting an absent key is not an error.
func (s *KVStore) Delete(ctx context.Context, collection, key string) error {
	return s.client.HDel(ctx, collection, key).Err()
}
