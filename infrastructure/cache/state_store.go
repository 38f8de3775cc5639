package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"video-field/infrastructure/configuration"
)

// NewRedisClient builds a client from configuration. Returns an error when
// the server is unreachable so the caller can fall back to the in-memory
// store.
func NewRedisClient(ctx context.Context) (*redis.Client, error) {
	cfg := configuration.C.RedisClient
	db := 0
	if cfg.DatabaseName != "" {
		if n, err := strconv.Atoi(cfg.DatabaseName); err == nil {
			db = n
		}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

const statePrefix = "oauth:state:"

// RedisStateStore keeps OAuth state nonces in redis with a TTL, surviving
// restarts and working across replicas.
type RedisStateStore struct{ client *redis.Client }

func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{client: client}
}

func (s *RedisStateStore) Put(ctx context.Context, state string, ttl time.Duration) error {
	if err := s.client.Set(ctx, statePrefix+state, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store oauth state: %w", err)
	}
	return nil
}

func (s *RedisStateStore) Consume(ctx context.Context, state string) (bool, error) {
	res, err := s.client.GetDel(ctx, statePrefix+state).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to consume oauth state: %w", err)
	}
	return res != "", nil
}

// MemoryStateStore is the single-instance fallback when redis is not
// configured. States are lost on restart, which only forces the user to
// restart the authorize flow.
type MemoryStateStore struct {
	mu     sync.Mutex
	states map[string]time.Time
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: map[string]time.Time{}}
}

func (s *MemoryStateStore) Put(_ context.Context, state string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state] = time.Now().Add(ttl)
	// Drop anything already expired while we hold the lock
	now := time.Now()
	for k, deadline := range s.states {
		if now.After(deadline) {
			delete(s.states, k)
		}
	}
	return nil
}

func (s *MemoryStateStore) Consume(_ context.Context, state string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deadline, ok := s.states[state]
	if !ok {
		return false, nil
	}
	delete(s.states, state)
	if time.Now().After(deadline) {
		return false, nil
	}
	return true, nil
}
