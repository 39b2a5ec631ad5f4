package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
	"github.com/darkkaiser/whatsnew/internal/pkg/version"
	"github.com/darkkaiser/whatsnew/internal/releasenote/record"
	"github.com/darkkaiser/whatsnew/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestNewDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newDefaultConfig()

	assert.False(t, cfg.Debug)
	assert.Equal(t, DefaultLogDir, cfg.Log.Dir)
	assert.Equal(t, record.DefaultNamespace, cfg.Release.Namespace)
	assert.Equal(t, version.DefaultRepository(), cfg.Release.Repository())
	assert.Equal(t, string(store.BackendFile), cfg.Storage.Backend)
	assert.NoError(t, cfg.validate())
}

func TestLoadWithFile_EmptyObjectUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadWithFile(writeConfigFile(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, newDefaultConfig(), *cfg)
}

func TestLoadWithFile_OverridesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadWithFile(writeConfigFile(t, `{
		"debug": true,
		"log": { "max_age": 7 },
		"release": {
			"owner": "example",
			"repo": "tool",
			"timeout": "3s",
			"rate_limit_interval": "250ms",
			"max_body_bytes": -1
		},
		"storage": {
			"backend": "redis",
			"redis": { "addr": "localhost:6379", "db": 2, "key_prefix": "wn:" }
		}
	}`))
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 7, cfg.Log.MaxAge)
	assert.Equal(t, DefaultLogDir, cfg.Log.Dir, "파일에 없는 값은 기본값이 유지되어야 합니다")

	assert.Equal(t, "example", cfg.Release.Owner)
	assert.Equal(t, version.DefaultWebHost, cfg.Release.WebHost)
	assert.Equal(t, 3*time.Second, cfg.Release.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Release.RateLimitInterval)

	fc := cfg.Release.FetcherConfig(cfg.Debug)
	assert.Equal(t, int64(-1), fc.MaxBytes)
	assert.False(t, fc.DisableLogging)

	sc := cfg.Storage.StoreConfig()
	assert.Equal(t, store.BackendRedis, sc.Backend)
	assert.Equal(t, store.RedisConfig{Addr: "localhost:6379", DB: 2, KeyPrefix: "wn:"}, sc.Redis)
}

func TestLoadWithFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		wantType    apperrors.ErrorType
		errContains string
	}{
		{
			name:        "Malformed JSON",
			content:     `{ "debug": `,
			wantType:    apperrors.InvalidInput,
			errContains: "설정 파일 로드 중 오류",
		},
		{
			name:        "Unknown Key",
			content:     `{ "unknown_section": {} }`,
			wantType:    apperrors.InvalidInput,
			errContains: "구조체로 변환",
		},
		{
			name:        "Unknown Backend",
			content:     `{ "storage": { "backend": "etcd" } }`,
			wantType:    apperrors.InvalidInput,
			errContains: "etcd",
		},
		{
			name:        "File Backend Without Dir",
			content:     `{ "storage": { "backend": "file", "dir": "" } }`,
			wantType:    apperrors.InvalidInput,
			errContains: "required_if",
		},
		{
			name:        "SQLite Backend Without Path",
			content:     `{ "storage": { "backend": "sqlite" } }`,
			wantType:    apperrors.InvalidInput,
			errContains: "path",
		},
		{
			name:        "Redis Backend Without Addr",
			content:     `{ "storage": { "backend": "redis" } }`,
			wantType:    apperrors.InvalidInput,
			errContains: "redis.addr",
		},
		{
			name:        "Negative Timeout",
			content:     `{ "release": { "timeout": "-1s" } }`,
			wantType:    apperrors.InvalidInput,
			errContains: "timeout",
		},
		{
			name:        "Invalid API Host",
			content:     `{ "release": { "api_host": "not a url" } }`,
			wantType:    apperrors.InvalidInput,
			errContains: "api_host",
		},
		{
			name:        "Empty Namespace",
			content:     `{ "release": { "namespace": "" } }`,
			wantType:    apperrors.InvalidInput,
			errContains: "namespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadWithFile(writeConfigFile(t, tt.content))

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, apperrors.Is(err, tt.wantType))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadWithFile_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := LoadWithFile(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, apperrors.Is(err, apperrors.System))
	assert.Contains(t, err.Error(), "설정 파일을 찾을 수 없습니다")
}

func TestLoad_UsesDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFilename), []byte(`{"debug": true}`), 0644))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
}

func TestNormalizeEnvKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"WHATSNEW_DEBUG", "debug"},
		{"WHATSNEW_RELEASE__TOKEN", "release.token"},
		{"WHATSNEW_RELEASE__MAX_REDIRECTS", "release.max_redirects"},
		{"WHATSNEW_STORAGE__REDIS__PASSWORD", "storage.redis.password"},
		{"WHATSNEW_Mixed_Case__Key", "mixed_case.key"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeEnvKey(tt.input), "Input: %s", tt.input)
	}
}

func TestLoadWithFile_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"release": { "token": "from-file", "max_redirects": 3 },
		"storage": { "backend": "redis", "redis": { "addr": "localhost:6379", "password": "from-file" } }
	}`)

	t.Setenv("WHATSNEW_RELEASE__TOKEN", "ghp_from_env")
	t.Setenv("WHATSNEW_STORAGE__REDIS__PASSWORD", "secret")
	t.Setenv("WHATSNEW_STORAGE__REDIS__DB", "4")
	t.Setenv("WHATSNEW_DEBUG", "true")

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "ghp_from_env", cfg.Release.Token)
	assert.Equal(t, 3, cfg.Release.MaxRedirects, "환경 변수가 없는 값은 파일 값을 유지해야 합니다")
	assert.Equal(t, 3, cfg.Release.FetcherConfig(cfg.Debug).MaxRedirects)
	assert.Equal(t, "secret", cfg.Storage.Redis.Password)
	assert.Equal(t, 4, cfg.Storage.Redis.DB)
}

func TestLoadWithFile_UnknownEnvKey(t *testing.T) {
	t.Setenv("WHATSNEW_RELEASE__UNKNOWN_OPTION", "x")

	cfg, err := LoadWithFile(writeConfigFile(t, `{}`))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
}

func TestLoadWithFile_NegativeMaxRedirects(t *testing.T) {
	t.Parallel()

	_, err := LoadWithFile(writeConfigFile(t, `{ "release": { "max_redirects": -1 } }`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_redirects")
}
