// Package store 버전 레코드를 보관하는 키-값 저장소와 그 구현체들을 제공합니다.
//
// 모든 구현체는 동일한 계약을 따릅니다.
//   - Get: 키가 없으면 found=false를 반환하며 에러로 취급하지 않습니다.
//   - Set: 기존 값을 무조건 덮어씁니다.
//   - Remove: 키가 없어도 에러 없이 반환합니다.
//
// 저장소 장애(디스크, 네트워크, 데이터베이스)는 apperrors.System 타입으로 반환됩니다.
package store

import (
	"context"
	"io"
)

// component 저장소 로깅용 컴포넌트 이름
const component = "store"

// Store 문자열 키로 문자열 값을 저장하고 조회하는 저장소입니다.
type Store interface {
	// Get 키에 저장된 값을 반환합니다. 키가 없으면 found는 false입니다.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set 키에 값을 저장합니다. 기존 값이 있으면 덮어씁니다.
	Set(ctx context.Context, key, value string) error

	// Remove 키를 삭제합니다. 키가 없으면 아무 작업도 하지 않습니다.
	Remove(ctx context.Context, key string) error

	io.Closer
}

// Backend 저장소 구현체의 종류입니다.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendBadger Backend = "badger"
	BackendRedis  Backend = "redis"
	BackendSQLite Backend = "sqlite"
)

// Config 저장소 생성에 필요한 설정입니다.
type Config struct {
	Backend Backend

	// Dir file 백엔드가 레코드 파일을 저장할 디렉토리입니다.
	Dir string

	// Path badger 백엔드의 데이터 디렉토리 또는 sqlite 백엔드의 데이터베이스 파일 경로입니다.
	Path string

	Redis RedisConfig
}

// RedisConfig redis 백엔드의 접속 정보입니다.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}
