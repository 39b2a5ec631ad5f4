package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// defaultSQLitePath sqlite 백엔드의 기본 데이터베이스 파일 경로입니다.
const defaultSQLitePath = "data/whatsnew.db"

const sqliteBusyTimeout = 5 * time.Second

const (
	sqliteCreateTable = `CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

	sqliteSelect = `SELECT value FROM kv WHERE key = ?`

	sqliteUpsert = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	sqliteDelete = `DELETE FROM kv WHERE key = ?`
)

// SQLiteStore SQLite 데이터베이스의 kv 테이블에 값을 저장하는 저장소입니다.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore path의 데이터베이스를 열고 kv 테이블을 준비합니다.
// 모든 연결에 WAL 저널 모드와 busy_timeout이 적용됩니다.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		path = defaultSQLitePath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, NewErrDirectoryAccessFailed(err, filepath.Dir(path))
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=synchronous(NORMAL)",
		path, sqliteBusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, NewErrOpenFailed(err, BackendSQLite)
	}

	// 단일 프로세스의 순차적인 접근만 있으므로 쓰기 경합을 피하도록 연결을 하나로 제한합니다.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, NewErrOpenFailed(err, BackendSQLite)
	}

	if _, err := db.ExecContext(ctx, sqliteCreateTable); err != nil {
		_ = db.Close()
		return nil, NewErrOpenFailed(err, BackendSQLite)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkAccess(ctx, key); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.QueryRowContext(ctx, sqliteSelect, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, NewErrReadFailed(err, key)
	}

	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	if err := checkAccess(ctx, key); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, sqliteUpsert, key, value, time.Now().Unix()); err != nil {
		return NewErrWriteFailed(err, key)
	}

	return nil
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if err := checkAccess(ctx, key); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, sqliteDelete, key); err != nil {
		return NewErrRemoveFailed(err, key)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
