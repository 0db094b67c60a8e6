package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kapu/celestia-ai-go/internal/domain"
	"github.com/kapu/celestia-ai-go/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "celestia:session:"

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

// RedisStore keeps view state in Redis so several instances can share visitors.
// It stores UI state only; readings are never looked up by birth details.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(ctx context.Context, cfg RedisConfig, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return NewRedisStoreFromClient(client, cfg.TTL, logger), nil
}

// NewRedisStoreFromClient wraps an existing client without pinging it.
func NewRedisStoreFromClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func Key(id string) string {
	return keyPrefix + id
}

func (s *RedisStore) Load(ctx context.Context, id string) (*domain.ViewState, error) {
	key := Key(id)
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return domain.NewViewState(), nil
	}
	if err != nil {
		s.logger.Error("Session get failed", zap.String("key", key), zap.Error(err))
		return nil, errors.NewCacheError("get failed", "get", key, err)
	}

	var state domain.ViewState
	if err := json.Unmarshal([]byte(value), &state); err != nil {
		s.logger.Error("Session unmarshal failed", zap.String("key", key), zap.Error(err))
		return nil, errors.NewCacheError("unmarshal failed", "get", key, err)
	}
	if !state.Status.Valid() {
		return domain.NewViewState(), nil
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, state *domain.ViewState) error {
	if state == nil {
		return nil
	}

	key := Key(id)
	jsonData, err := json.Marshal(state)
	if err != nil {
		return errors.NewCacheError("marshal failed", "set", key, err)
	}

	if err := s.client.Set(ctx, key, jsonData, s.ttl).Err(); err != nil {
		s.logger.Error("Session set failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("set failed", "set", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	key := Key(id)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Error("Session delete failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("delete failed", "del", key, err)
	}
	return nil
}

func (s *RedisStore) IsConnected(ctx context.Context) bool {
	return s.client.Ping(ctx).Err() == nil
}

func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		s.logger.Error("Failed to close Redis connection", zap.Error(err))
		return err
	}
	s.logger.Info("Redis disconnected")
	return nil
}
