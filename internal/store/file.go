package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/darkkaiser/whatsnew/pkg/concurrency"
	applog "github.com/darkkaiser/whatsnew/pkg/log"
	"github.com/google/renameio/v2"
)

// defaultDataDirectory file 백엔드의 기본 저장 디렉토리입니다.
const defaultDataDirectory = "data"

// staleTempFilePattern 원자적 쓰기 도중 중단되어 남은 임시 파일의 이름 패턴입니다.
// 임시 파일은 대상 파일명 앞에 "."이 붙고 뒤에 난수가 붙은 형태로 생성됩니다.
const staleTempFilePattern = ".wn-*.json?*"

// staleTempFileAge 이보다 오래된 임시 파일만 정리 대상입니다.
const staleTempFileAge = time.Hour

// FileStore 키마다 하나의 파일에 값을 저장하는 저장소입니다.
//
// [파일 구조]
//   - wn-{kebab-key}-{hash}.json: 저장된 값
//   - .wn-{kebab-key}-{hash}.json{난수}: 쓰기 중인 임시 파일
type FileStore struct {
	baseDir string

	// locks 같은 파일에 대한 읽기와 쓰기를 직렬화합니다. 키는 소문자로 정규화된 파일 경로입니다.
	locks *concurrency.KeyedMutex[string]
}

var _ Store = (*FileStore)(nil)

// NewFileStore 파일 시스템 기반 저장소를 생성합니다.
//
// dir이 비어 있으면 "data" 디렉토리를 사용하며, 상대 경로는 절대 경로로 변환됩니다.
// 생성 시점에 디렉토리를 만들고, 이전 실행에서 남은 임시 파일을 백그라운드에서 정리합니다.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = defaultDataDirectory
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewErrPathResolutionFailed(err)
	}

	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, NewErrDirectoryAccessFailed(err, absDir)
	}

	s := &FileStore{
		baseDir: absDir,
		locks:   concurrency.NewKeyedMutex[string](),
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"base_dir": s.baseDir,
					"panic":    r,
				}).Error("임시 파일 정리 중단: 백그라운드 작업 패닉 발생")
			}
		}()

		s.cleanupStaleTempFiles(time.Now().Add(-staleTempFileAge))
	}()

	return s, nil
}

// Dir 값이 저장되는 디렉토리의 절대 경로를 반환합니다.
func (s *FileStore) Dir() string {
	return s.baseDir
}

// cleanupStaleTempFiles threshold 이전에 수정된 임시 파일을 삭제합니다.
// 최근 파일은 다른 프로세스가 쓰는 중일 수 있으므로 건드리지 않습니다.
func (s *FileStore) cleanupStaleTempFiles(threshold time.Time) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   s.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")

		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if matched, _ := filepath.Match(staleTempFilePattern, name); !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(s.baseDir, name)
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("임시 파일 삭제 실패")
		} else {
			applog.WithComponentAndFields(component, applog.Fields{
				"file": fullPath,
			}).Info("임시 파일 삭제 완료: 이전 실행 잔존 파일 정리")
		}
	}
}

func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkAccess(ctx, key); err != nil {
		return "", false, err
	}

	path, err := s.resolveSafePath(key)
	if err != nil {
		return "", false, err
	}

	var (
		data  []byte
		found bool
	)
	err = s.locks.WithLock(strings.ToLower(path), func() error {
		var readErr error
		data, readErr = os.ReadFile(path)
		if readErr != nil {
			if errors.Is(readErr, fs.ErrNotExist) {
				return nil
			}
			return NewErrReadFailed(readErr, key)
		}

		found = true
		return nil
	})
	if err != nil {
		return "", false, err
	}

	return string(data), found, nil
}

// Set 값을 원자적으로 저장합니다.
// 같은 디렉토리의 임시 파일에 쓰고 동기화한 뒤 rename으로 교체하므로, 중단되어도 기존 값이나 새 값 중 하나만 남습니다.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := checkAccess(ctx, key); err != nil {
		return err
	}

	path, err := s.resolveSafePath(key)
	if err != nil {
		return err
	}

	return s.locks.WithLock(strings.ToLower(path), func() error {
		if err := renameio.WriteFile(path, []byte(value), 0o644, renameio.WithTempDir(s.baseDir)); err != nil {
			return NewErrWriteFailed(err, key)
		}
		return nil
	})
}

func (s *FileStore) Remove(ctx context.Context, key string) error {
	if err := checkAccess(ctx, key); err != nil {
		return err
	}

	path, err := s.resolveSafePath(key)
	if err != nil {
		return err
	}

	return s.locks.WithLock(strings.ToLower(path), func() error {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return NewErrRemoveFailed(err, key)
		}
		return nil
	})
}

// Close 파일 저장소는 보유한 리소스가 없으므로 아무 작업도 하지 않습니다.
func (s *FileStore) Close() error {
	return nil
}

// resolveSafePath 키에 대응하는 파일 경로를 생성하고, 그 경로가 저장 디렉토리를 벗어나지 않는지 검증합니다.
func (s *FileStore) resolveSafePath(key string) (string, error) {
	filename := generateFilename(key)
	cleanPath := filepath.Clean(filepath.Join(s.baseDir, filename))

	// 단순 접두사 비교는 형제 디렉토리(/data vs /data2)를 구분하지 못하므로 상대 경로로 검증합니다.
	rel, err := filepath.Rel(s.baseDir, cleanPath)
	if err != nil {
		return "", NewErrPathResolutionFailed(err)
	}

	if rel == "." || strings.HasPrefix(rel, "..") || strings.ContainsRune(rel, filepath.Separator) {
		applog.WithComponentAndFields(component, applog.Fields{
			"key":      key,
			"filename": filename,
			"base_dir": s.baseDir,
			"rel_path": rel,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}
