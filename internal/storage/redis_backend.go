package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sandeepkv93/vaultos/internal/model"
)

// RedisBackend stores the document as a JSON string under "collection/document".
type RedisBackend struct {
	client redis.Cmdable
	key    string
}

func NewRedisBackend(client redis.Cmdable, collection, document string) *RedisBackend {
	return &RedisBackend{client: client, key: DocumentKey(collection, document)}
}

func NewRedisClient(addr string, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func DocumentKey(collection, document string) string {
	return fmt.Sprintf("%s/%s", collection, document)
}

func (b *RedisBackend) Name() string { return "remote:redis" }

func (b *RedisBackend) Key() string { return b.key }

func (b *RedisBackend) Load(ctx context.Context) (model.AppState, error) {
	raw, err := b.client.Get(ctx, b.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.AppState{}, ErrNotFound
		}
		return model.AppState{}, fmt.Errorf("redis get %s: %w", b.key, err)
	}
	return decodeState(raw)
}

func (b *RedisBackend) Save(ctx context.Context, state model.AppState) error {
	payload, err := encodeState(state)
	if err != nil {
		return err
	}
	if err := b.client.Set(ctx, b.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", b.key, err)
	}
	return nil
}
