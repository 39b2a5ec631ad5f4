package fetcher

import (
	"errors"
	"io"
	"net/http"
)

const (
	// defaultMaxBytes 응답 본문의 기본 최대 크기(2MB)입니다.
	defaultMaxBytes = 2 * 1024 * 1024

	// NoLimit 응답 본문 크기 제한을 적용하지 않습니다.
	NoLimit = -1
)

// maxBytesReader http.MaxBytesReader의 에러를 도메인 에러로 변환합니다.
type maxBytesReader struct {
	rc io.ReadCloser

	limit int64
}

func (r *maxBytesReader) Read(p []byte) (n int, err error) {
	n, err = r.rc.Read(p)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return n, NewErrResponseBodyTooLarge(r.limit)
		}
	}

	return n, err
}

func (r *maxBytesReader) Close() error {
	return r.rc.Close()
}

// MaxBytesFetcher 응답 본문의 크기를 제한하는 미들웨어입니다.
// Content-Length가 제한을 넘으면 본문을 읽기 전에 실패하고, 그렇지 않으면 읽는 도중 제한을 검사합니다.
type MaxBytesFetcher struct {
	delegate Fetcher

	limit int64
}

var _ Fetcher = (*MaxBytesFetcher)(nil)

// NewMaxBytesFetcher limit이 NoLimit이면 delegate를 그대로 반환하고, 0 이하이면 기본값을 사용합니다.
func NewMaxBytesFetcher(delegate Fetcher, limit int64) Fetcher {
	if limit == NoLimit {
		return delegate
	}
	if limit <= 0 {
		limit = defaultMaxBytes
	}

	return &MaxBytesFetcher{
		delegate: delegate,
		limit:    limit,
	}
}

func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		return nil, err
	}

	if resp.ContentLength > f.limit {
		drainAndCloseBody(resp.Body)

		return nil, NewErrResponseBodyTooLargeByContentLength(resp.ContentLength, f.limit)
	}

	resp.Body = &maxBytesReader{
		rc:    http.MaxBytesReader(nil, resp.Body, f.limit),
		limit: f.limit,
	}

	return resp, nil
}
