package fetcher

import (
	"fmt"

	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
)

// FetchError 릴리즈 정보 조회 실패를 나타냅니다.
// 네트워크 장애, 비정상 상태 코드, 해석할 수 없는 응답이 모두 이 타입으로 반환되며, 실제 원인은 Cause에 담깁니다.
type FetchError struct {
	// URL 민감 정보가 마스킹된 요청 URL입니다.
	URL string

	Cause error
}

func (e *FetchError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("릴리즈 정보 조회 실패 (URL: %s)", e.URL)
	}
	return fmt.Sprintf("릴리즈 정보 조회 실패 (URL: %s): %v", e.URL, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ErrInvalidReleasePayload 응답 본문이 릴리즈 객체(JSON Object)가 아닐 때 반환하는 에러입니다.
var ErrInvalidReleasePayload = apperrors.New(apperrors.ParsingFailed, "릴리즈 응답이 올바른 JSON 객체가 아닙니다")

// NewErrInvalidRequest HTTP 요청 객체 생성에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrInvalidRequest(err error, url string) error {
	return apperrors.Wrapf(err, apperrors.Internal, "HTTP 요청 생성 실패 (URL: %s)", url)
}

// NewErrInvalidProxyURL 프록시 주소를 해석할 수 없을 때 반환하는 에러를 생성합니다.
func NewErrInvalidProxyURL(err error, proxyURL string) error {
	return apperrors.Wrapf(err, apperrors.InvalidInput, "프록시 주소가 올바르지 않습니다 (%s)", redactRawURL(proxyURL))
}

// NewErrTooManyRedirects 리다이렉트 횟수가 제한을 넘었을 때 반환하는 에러를 생성합니다.
func NewErrTooManyRedirects(max int) error {
	return apperrors.Newf(apperrors.ExecutionFailed, "리다이렉트 횟수가 제한(%d회)을 초과했습니다", max)
}

// NewErrRequestFailed 네트워크 장애 등으로 요청이 완료되지 못했을 때 반환하는 에러를 생성합니다.
func NewErrRequestFailed(err error, url string) error {
	return apperrors.Wrapf(err, apperrors.Unavailable, "HTTP 요청 중 네트워크 에러가 발생했습니다 (URL: %s)", url)
}

// NewErrRateLimitWait 요청 허용 시점을 기다리는 중 Context가 취소되었을 때 반환하는 에러를 생성합니다.
func NewErrRateLimitWait(err error) error {
	return apperrors.Wrap(err, apperrors.Unavailable, "요청 빈도 제한 대기 중 요청이 취소되었습니다")
}

// NewErrResponseBodyTooLarge 응답 본문을 읽는 도중 크기 제한을 넘었을 때 반환하는 에러를 생성합니다.
func NewErrResponseBodyTooLarge(limit int64) error {
	return apperrors.Newf(apperrors.ExecutionFailed, "응답 본문이 허용 크기(%d바이트)를 초과했습니다", limit)
}

// NewErrResponseBodyTooLargeByContentLength Content-Length가 크기 제한을 넘었을 때 반환하는 에러를 생성합니다.
func NewErrResponseBodyTooLargeByContentLength(contentLength, limit int64) error {
	return apperrors.Newf(apperrors.ExecutionFailed, "응답 본문 크기(%d바이트)가 허용 크기(%d바이트)를 초과했습니다", contentLength, limit)
}

// NewErrReadBodyFailed 응답 본문을 읽는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrReadBodyFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Unavailable, "응답 본문 읽기 실패")
}

// NewErrInvalidJSON 응답 본문이 올바른 JSON이 아닐 때 반환하는 에러를 생성합니다.
func NewErrInvalidJSON(snippet string) error {
	return apperrors.Newf(apperrors.ParsingFailed, "응답 본문이 올바른 JSON이 아닙니다: %q", snippet)
}

func newErrHTTPStatus(errType apperrors.ErrorType, status, url string) error {
	return apperrors.Newf(errType, "HTTP 요청이 실패했습니다 (상태 코드: %s, URL: %s)", status, url)
}
