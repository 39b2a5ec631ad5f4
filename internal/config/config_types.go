package config

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
	"github.com/darkkaiser/whatsnew/internal/pkg/version"
	"github.com/darkkaiser/whatsnew/internal/releasenote/fetcher"
	"github.com/darkkaiser/whatsnew/internal/store"
)

// LogConfig 로그 파일 출력 설정
type LogConfig struct {
	Dir    string `json:"dir" validate:"required"`
	MaxAge int    `json:"max_age" validate:"min=0"`
}

func (c *LogConfig) validate() error {
	return validateStruct(c, "로그(log)")
}

// ReleaseConfig 릴리즈 노트 조회 대상 저장소와 HTTP 요청 정책
type ReleaseConfig struct {
	// Namespace 버전 레코드 저장 키의 접두사
	Namespace string `json:"namespace" validate:"required"`

	WebHost string `json:"web_host" validate:"required,http_url"`
	APIHost string `json:"api_host" validate:"required,http_url"`
	Owner   string `json:"owner" validate:"required"`
	Repo    string `json:"repo" validate:"required"`

	// Token API 호출 한도를 늘리기 위한 선택적 인증 토큰
	Token string `json:"token"`

	Timeout           time.Duration `json:"timeout" validate:"min=0s"`
	MaxBodyBytes      int64         `json:"max_body_bytes" validate:"min=-1"`
	RateLimitInterval time.Duration `json:"rate_limit_interval" validate:"min=0s"`
	UserAgent         string        `json:"user_agent"`
	ProxyURL          string        `json:"proxy_url" validate:"omitempty,url"`

	// MaxRedirects 따라갈 리다이렉트의 최대 횟수 (0: 기본값)
	MaxRedirects int `json:"max_redirects" validate:"min=0"`
}

func (c *ReleaseConfig) validate() error {
	return validateStruct(c, "릴리즈(release)")
}

// Repository 설정된 값으로 릴리즈 저장소 위치를 생성합니다.
func (c *ReleaseConfig) Repository() version.Repository {
	return version.Repository{
		WebHost: c.WebHost,
		APIHost: c.APIHost,
		Owner:   c.Owner,
		Name:    c.Repo,
	}
}

// FetcherConfig HTTP Fetcher 체인 구성을 위한 설정으로 변환합니다.
func (c *ReleaseConfig) FetcherConfig(debug bool) fetcher.Config {
	return fetcher.Config{
		Timeout:           c.Timeout,
		MaxBytes:          c.MaxBodyBytes,
		UserAgent:         c.UserAgent,
		RateLimitInterval: c.RateLimitInterval,
		ProxyURL:          c.ProxyURL,
		MaxRedirects:      c.MaxRedirects,
		DisableLogging:    !debug,
	}
}

// StorageConfig 버전 레코드 저장소 설정
type StorageConfig struct {
	Backend string      `json:"backend" validate:"oneof=memory file badger redis sqlite"`
	Dir     string      `json:"dir" validate:"required_if=Backend file"`
	Path    string      `json:"path"`
	Redis   RedisConfig `json:"redis"`
}

// RedisConfig redis 백엔드 접속 정보
type RedisConfig struct {
	Addr      string `json:"addr" validate:"omitempty,hostname_port"`
	Password  string `json:"password"`
	DB        int    `json:"db" validate:"min=0"`
	KeyPrefix string `json:"key_prefix"`
}

func (c *StorageConfig) validate() error {
	if err := validateStruct(c, "저장소(storage)"); err != nil {
		return err
	}

	switch store.Backend(c.Backend) {
	case store.BackendBadger, store.BackendSQLite:
		if c.Path == "" {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("'%s' 저장소는 경로(path) 설정이 필요합니다", c.Backend))
		}
	case store.BackendRedis:
		if c.Redis.Addr == "" {
			return apperrors.New(apperrors.InvalidInput, "'redis' 저장소는 접속 주소(redis.addr) 설정이 필요합니다")
		}
	}

	return nil
}

// StoreConfig 저장소 생성을 위한 설정으로 변환합니다.
func (c *StorageConfig) StoreConfig() store.Config {
	return store.Config{
		Backend: store.Backend(c.Backend),
		Dir:     c.Dir,
		Path:    c.Path,
		Redis: store.RedisConfig{
			Addr:      c.Redis.Addr,
			Password:  c.Redis.Password,
			DB:        c.Redis.DB,
			KeyPrefix: c.Redis.KeyPrefix,
		},
	}
}
