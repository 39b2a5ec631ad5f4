package fetcher

import (
	"fmt"
	"net/http"
)

// HTTPStatusError 허용되지 않은 HTTP 상태 코드를 받았을 때의 상세 정보입니다.
// Cause에는 상태 코드에 따라 분류된 AppError가 담깁니다.
type HTTPStatusError struct {
	StatusCode int
	Status     string

	// URL 민감 정보가 마스킹된 요청 URL입니다.
	URL string

	// Header 민감 정보가 마스킹된 응답 헤더입니다.
	Header http.Header

	// BodySnippet 디버깅을 위한 응답 본문의 앞부분입니다.
	BodySnippet string

	Cause error
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += fmt.Sprintf(" URL: %s", e.URL)
	}
	if e.BodySnippet != "" {
		msg += fmt.Sprintf(", Body: %s", e.BodySnippet)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}
