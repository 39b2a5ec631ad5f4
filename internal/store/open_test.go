package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  Config
		want Store
	}{
		{"memory", Config{Backend: BackendMemory}, (*MemoryStore)(nil)},
		{"file", Config{Backend: BackendFile, Dir: filepath.Join(dir, "file")}, (*FileStore)(nil)},
		{"기본값은 file", Config{Dir: filepath.Join(dir, "default")}, (*FileStore)(nil)},
		{"badger", Config{Backend: BackendBadger, Path: filepath.Join(dir, "badger")}, (*BadgerStore)(nil)},
		{"redis", Config{Backend: BackendRedis, Redis: RedisConfig{Addr: mr.Addr()}}, (*RedisStore)(nil)},
		{"sqlite", Config{Backend: BackendSQLite, Path: filepath.Join(dir, "sqlite", "kv.db")}, (*SQLiteStore)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(context.Background(), tt.cfg)
			require.NoError(t, err)
			defer s.Close()

			assert.IsType(t, tt.want, s)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	s, err := Open(context.Background(), Config{Backend: "etcd"})

	require.Error(t, err)
	assert.Nil(t, s)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	assert.Contains(t, err.Error(), "etcd")
}
