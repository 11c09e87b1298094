package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"storefront/internal/model"
)

// RedisStore keeps the document as one string value. Connectivity errors
// are returned to the caller rather than treated as a miss.
type RedisStore struct {
	client *redis.Client
	key    string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to Redis and verifies the connection with PING.
func NewRedisStore(ctx context.Context, addr, password string, db int, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "ping redis %s", addr)
	}
	return &RedisStore{client: client, key: key}, nil
}

func (s *RedisStore) Read(ctx context.Context) (*model.Document, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return model.NewDocument(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", s.key)
	}
	return decode(data)
}

func (s *RedisStore) Write(ctx context.Context, doc *model.Document) error {
	data, err := encode(doc)
	if err != nil {
		return err
	}
	return errors.Wrapf(s.client.Set(ctx, s.key, data, 0).Err(), "redis set %s", s.key)
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
