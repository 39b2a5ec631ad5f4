package store

import (
	"context"
	"errors"
	"time"

	applog "github.com/darkkaiser/whatsnew/pkg/log"
	"github.com/redis/go-redis/v9"
)

const (
	redisDialTimeout  = 5 * time.Second
	redisReadTimeout  = 3 * time.Second
	redisWriteTimeout = 3 * time.Second
)

// RedisStore Redis 서버에 값을 저장하는 저장소입니다.
// KeyPrefix가 지정되면 모든 키 앞에 붙여 다른 애플리케이션의 키와 구분합니다.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore Redis 서버에 연결하고 PING으로 연결 상태를 확인합니다.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  redisDialTimeout,
		ReadTimeout:  redisReadTimeout,
		WriteTimeout: redisWriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, NewErrOpenFailed(err, BackendRedis)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"backend":    BackendRedis,
		"addr":       cfg.Addr,
		"db":         cfg.DB,
		"key_prefix": cfg.KeyPrefix,
	}).Debug("Redis 저장소 연결 완료")

	return newRedisStoreWithClient(client, cfg.KeyPrefix), nil
}

func newRedisStoreWithClient(client *redis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisStore) key(key string) string {
	return s.keyPrefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkAccess(ctx, key); err != nil {
		return "", false, err
	}

	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, NewErrReadFailed(err, key)
	}

	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := checkAccess(ctx, key); err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return NewErrWriteFailed(err, key)
	}

	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := checkAccess(ctx, key); err != nil {
		return err
	}

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return NewErrRemoveFailed(err, key)
	}

	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
