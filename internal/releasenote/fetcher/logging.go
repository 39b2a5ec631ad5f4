package fetcher

import (
	"net/http"
	"time"

	applog "github.com/darkkaiser/whatsnew/pkg/log"
)

// LoggingFetcher 요청 메서드, 마스킹된 URL, 상태 코드, 소요 시간을 기록하는 미들웨어입니다.
type LoggingFetcher struct {
	delegate Fetcher
}

var _ Fetcher = (*LoggingFetcher)(nil)

func NewLoggingFetcher(delegate Fetcher) *LoggingFetcher {
	return &LoggingFetcher{
		delegate: delegate,
	}
}

func (f *LoggingFetcher) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := f.delegate.Do(req)

	fields := applog.Fields{
		"method":   req.Method,
		"url":      redactURL(req.URL),
		"duration": time.Since(start).String(),
	}
	if resp != nil {
		fields["status"] = resp.Status
		fields["status_code"] = resp.StatusCode
	}

	if err != nil {
		fields["error"] = err.Error()

		// 릴리즈 조회 실패는 캐시로 대체되므로 경고 수준으로 기록합니다.
		applog.WithComponentAndFields(component, fields).
			WithContext(req.Context()).
			Warn("HTTP 요청 실패")

		return resp, err
	}

	applog.WithComponentAndFields(component, fields).
		WithContext(req.Context()).
		Debug("HTTP 요청 성공")

	return resp, nil
}
