package fetcher

import (
	"io"
	"net/http"
	"slices"

	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
)

// maxBodySnippetBytes HTTPStatusError에 담는 응답 본문의 최대 길이입니다.
const maxBodySnippetBytes = 1024

// StatusCodeFetcher 허용되지 않은 상태 코드의 응답을 HTTPStatusError로 변환하는 미들웨어입니다.
// 허용 목록이 비어 있으면 200 OK만 허용합니다.
type StatusCodeFetcher struct {
	delegate Fetcher

	allowedStatusCodes []int
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

func NewStatusCodeFetcher(delegate Fetcher, allowedStatusCodes ...int) *StatusCodeFetcher {
	return &StatusCodeFetcher{
		delegate:           delegate,
		allowedStatusCodes: allowedStatusCodes,
	}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		return nil, err
	}

	if statusErr := CheckResponseStatus(resp, f.allowedStatusCodes...); statusErr != nil {
		drainAndCloseBody(resp.Body)

		return nil, statusErr
	}

	return resp, nil
}

// CheckResponseStatus 응답의 상태 코드를 검증합니다. 검증에 실패하면 본문의 앞부분을 읽어 HTTPStatusError에 담습니다.
//
// 상태 코드별 에러 타입:
//   - 404: NotFound (해당 버전의 릴리즈가 없음)
//   - 408, 429, 5xx: Unavailable
//   - 그 외: ExecutionFailed
func CheckResponseStatus(resp *http.Response, allowedStatusCodes ...int) error {
	if len(allowedStatusCodes) == 0 {
		if resp.StatusCode == http.StatusOK {
			return nil
		}
	} else if slices.Contains(allowedStatusCodes, resp.StatusCode) {
		return nil
	}

	errType := apperrors.ExecutionFailed
	switch {
	case resp.StatusCode == http.StatusNotFound:
		errType = apperrors.NotFound
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode == http.StatusRequestTimeout, resp.StatusCode >= 500:
		errType = apperrors.Unavailable
	}

	var urlStr string
	if resp.Request != nil {
		urlStr = redactURL(resp.Request.URL)
	}

	var bodySnippet string
	if resp.Body != nil {
		if b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetBytes)); err == nil {
			bodySnippet = string(b)
		}
	}

	return &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		URL:         urlStr,
		Header:      redactHeaders(resp.Header),
		BodySnippet: bodySnippet,
		Cause:       newErrHTTPStatus(errType, resp.Status, urlStr),
	}
}
