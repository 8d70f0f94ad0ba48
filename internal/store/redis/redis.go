package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"squote/internal/store"
)

const DefaultPrefix = "squote:"

type Store struct {
	client *goredis.Client
	prefix string
}

var _ store.KV = (*Store)(nil)

func New(addr string, password string, db int, prefix string) *Store {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &Store{client: client, prefix: prefix}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores the collection without expiry.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}
