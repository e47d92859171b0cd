package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisDocuments keeps a whole profile document under a single key.
type RedisDocuments[P any] struct {
	client redis.Cmdable
	key    string
}

func NewRedisDocuments[P any](client redis.Cmdable, kind string) *RedisDocuments[P] {
	return &RedisDocuments[P]{client: client, key: "profiles:" + kind}
}

func (r *RedisDocuments[P]) Load(ctx context.Context) (map[string]P, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return map[string]P{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", r.key, err)
	}

	docs := make(map[string]P)
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.key, err)
	}
	return docs, nil
}

func (r *RedisDocuments[P]) Save(ctx context.Context, docs map[string]P) error {
	data, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.key, err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", r.key, err)
	}
	return nil
}
