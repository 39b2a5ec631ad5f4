package store

import (
	"context"
	"errors"

	applog "github.com/darkkaiser/whatsnew/pkg/log"
	"github.com/dgraph-io/badger/v4"
)

// defaultBadgerDirectory badger 백엔드의 기본 데이터 디렉토리입니다.
const defaultBadgerDirectory = "data/badger"

// BadgerStore 내장 키-값 데이터베이스(Badger)를 사용하는 저장소입니다.
type BadgerStore struct {
	db *badger.DB
}

var _ Store = (*BadgerStore)(nil)

// NewBadgerStore path 디렉토리에 Badger 데이터베이스를 열거나 생성합니다.
// Badger의 내부 로그는 WARNING 이상만 애플리케이션 로거로 전달됩니다.
func NewBadgerStore(path string) (*BadgerStore, error) {
	if path == "" {
		path = defaultBadgerDirectory
	}

	// *logrus.Entry는 badger.Logger(Errorf/Warningf/Infof/Debugf)를 그대로 만족합니다.
	logger := applog.WithComponentAndFields(component, applog.Fields{
		"backend": BackendBadger,
		"path":    path,
	})

	opts := badger.DefaultOptions(path).
		WithLogger(logger).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, NewErrOpenFailed(err, BackendBadger)
	}

	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkAccess(ctx, key); err != nil {
		return "", false, err
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, NewErrReadFailed(err, key)
	}

	return string(value), true, nil
}

func (s *BadgerStore) Set(ctx context.Context, key, value string) error {
	if err := checkAccess(ctx, key); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return NewErrWriteFailed(err, key)
	}

	return nil
}

func (s *BadgerStore) Remove(ctx context.Context, key string) error {
	if err := checkAccess(ctx, key); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return NewErrRemoveFailed(err, key)
	}

	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
