package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backendFactories 모든 구현체에 대해 동일한 계약 테스트를 수행하기 위한 생성 함수 목록입니다.
func backendFactories() map[Backend]func(t *testing.T) Store {
	return map[Backend]func(t *testing.T) Store{
		BackendMemory: func(t *testing.T) Store {
			return NewMemoryStore()
		},
		BackendFile: func(t *testing.T) Store {
			s, err := NewFileStore(t.TempDir())
			require.NoError(t, err)
			return s
		},
		BackendBadger: func(t *testing.T) Store {
			s, err := NewBadgerStore(t.TempDir())
			require.NoError(t, err)
			return s
		},
		BackendRedis: func(t *testing.T) Store {
			mr := miniredis.RunT(t)
			return newRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test:")
		},
		BackendSQLite: func(t *testing.T) Store {
			s, err := NewSQLiteStore(context.Background(), t.TempDir()+"/kv.db")
			require.NoError(t, err)
			return s
		},
	}
}

func TestStoreContract(t *testing.T) {
	for backend, newStore := range backendFactories() {
		t.Run(string(backend), func(t *testing.T) {
			t.Run("없는 키 조회", func(t *testing.T) {
				s := newStore(t)
				defer s.Close()

				value, found, err := s.Get(context.Background(), "EasydictVersionInfoKey-9.9.9")
				require.NoError(t, err)
				assert.False(t, found)
				assert.Empty(t, value)
			})

			t.Run("저장 후 조회", func(t *testing.T) {
				s := newStore(t)
				defer s.Close()
				ctx := context.Background()

				const value = `{"version":"1.1.0","releaseMarkdown":"## 새 기능\n- 한국어"}`
				require.NoError(t, s.Set(ctx, "EasydictVersionInfoKey-1.1.0", value))

				got, found, err := s.Get(ctx, "EasydictVersionInfoKey-1.1.0")
				require.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, value, got)
			})

			t.Run("덮어쓰기", func(t *testing.T) {
				s := newStore(t)
				defer s.Close()
				ctx := context.Background()

				require.NoError(t, s.Set(ctx, "key", "first"))
				require.NoError(t, s.Set(ctx, "key", "second"))

				got, found, err := s.Get(ctx, "key")
				require.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, "second", got)
			})

			t.Run("빈 값 저장", func(t *testing.T) {
				s := newStore(t)
				defer s.Close()
				ctx := context.Background()

				require.NoError(t, s.Set(ctx, "key", ""))

				got, found, err := s.Get(ctx, "key")
				require.NoError(t, err)
				assert.True(t, found)
				assert.Empty(t, got)
			})

			t.Run("삭제", func(t *testing.T) {
				s := newStore(t)
				defer s.Close()
				ctx := context.Background()

				require.NoError(t, s.Set(ctx, "key", "value"))
				require.NoError(t, s.Remove(ctx, "key"))

				_, found, err := s.Get(ctx, "key")
				require.NoError(t, err)
				assert.False(t, found)
			})

			t.Run("없는 키 삭제", func(t *testing.T) {
				s := newStore(t)
				defer s.Close()

				assert.NoError(t, s.Remove(context.Background(), "missing"))
			})

			t.Run("키 간 독립성", func(t *testing.T) {
				s := newStore(t)
				defer s.Close()
				ctx := context.Background()

				require.NoError(t, s.Set(ctx, "EasydictVersionInfoKey-1.1.0", "old"))
				require.NoError(t, s.Set(ctx, "EasydictVersionInfoKey-1.2.0", "new"))
				require.NoError(t, s.Remove(ctx, "EasydictVersionInfoKey-1.1.0"))

				got, found, err := s.Get(ctx, "EasydictVersionInfoKey-1.2.0")
				require.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, "new", got)
			})

			t.Run("빈 키 거부", func(t *testing.T) {
				s := newStore(t)
				defer s.Close()
				ctx := context.Background()

				_, _, err := s.Get(ctx, "")
				assert.ErrorIs(t, err, ErrEmptyKey)
				assert.ErrorIs(t, s.Set(ctx, "", "v"), ErrEmptyKey)
				assert.ErrorIs(t, s.Remove(ctx, ""), ErrEmptyKey)
			})

			t.Run("취소된 컨텍스트", func(t *testing.T) {
				s := newStore(t)
				defer s.Close()

				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				_, _, err := s.Get(ctx, "key")
				assert.True(t, errors.Is(err, context.Canceled))
				assert.True(t, errors.Is(s.Set(ctx, "key", "v"), context.Canceled))
			})

			t.Run("동시 쓰기", func(t *testing.T) {
				s := newStore(t)
				defer s.Close()
				ctx := context.Background()

				var wg sync.WaitGroup
				for i := range 10 {
					wg.Add(1)
					go func(i int) {
						defer wg.Done()
						assert.NoError(t, s.Set(ctx, "shared", fmt.Sprintf("value-%d", i)))
					}(i)
				}
				wg.Wait()

				got, found, err := s.Get(ctx, "shared")
				require.NoError(t, err)
				assert.True(t, found)
				assert.Regexp(t, `^value-\d$`, got)
			})
		})
	}
}
