package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 3 * time.Second

// RedisStore keeps the session in Redis under a caller-chosen key, with a
// TTL matching the token lifetime. Useful when several terminals of the
// same shop share one logical session.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, key string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, key: "session:" + key, ttl: ttl}
}

func (s *RedisStore) GetToken() (string, error) {
	state, err := s.load()
	if err != nil {
		return "", err
	}
	return state.Token, nil
}

func (s *RedisStore) SetToken(token string) error {
	state, err := s.load()
	if err != nil {
		return err
	}
	state.Token = token
	return s.save(state)
}

func (s *RedisStore) GetUser() (*User, error) {
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return state.User, nil
}

func (s *RedisStore) SetUser(user *User) error {
	state, err := s.load()
	if err != nil {
		return err
	}
	state.User = user
	return s.save(state)
}

func (s *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return s.client.Del(ctx, s.key).Err()
}

func (s *RedisStore) load() (fileState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	var state fileState
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return state, nil
		}
		return state, err
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return fileState{}, nil
	}
	return state, nil
}

func (s *RedisStore) save(state fileState) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, data, s.ttl).Err()
}

var _ Store = (*RedisStore)(nil)
