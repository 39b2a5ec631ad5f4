package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer 로그 파일 리소스의 해제를 한곳에서 관리합니다.
// hook을 먼저 닫아 닫힌 파일로의 쓰기를 막고, 일부 파일 닫기가 실패해도 나머지를 모두 닫습니다.
type closer struct {
	closers []io.Closer
	hook    *hook

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
