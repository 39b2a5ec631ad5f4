package store

import (
	"context"

	applog "github.com/darkkaiser/whatsnew/pkg/log"
)

// Open 설정에 지정된 종류의 저장소를 생성합니다.
func Open(ctx context.Context, cfg Config) (Store, error) {
	var (
		s   Store
		err error
	)

	switch cfg.Backend {
	case BackendMemory:
		s = NewMemoryStore()
	case BackendFile, "":
		s, err = NewFileStore(cfg.Dir)
	case BackendBadger:
		s, err = NewBadgerStore(cfg.Path)
	case BackendRedis:
		s, err = NewRedisStore(ctx, cfg.Redis)
	case BackendSQLite:
		s, err = NewSQLiteStore(ctx, cfg.Path)
	default:
		return nil, NewErrUnknownBackend(cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"backend": cfg.Backend,
	}).Debug("저장소 초기화 완료")

	return s, nil
}
